package imports

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultPackage is the package name used for compilation units without a
// package declaration, and for imports that have no qualifier.
const DefaultPackage = "default"

// Import is a single import declaration as read from a source file.
type Import struct {
	Name     string // Qualified dotted name, without any trailing ".*"
	Static   bool   // Declared with "import static"
	Wildcard bool   // Declared with a trailing ".*"
}

// String formats the import the way it is written in source.
func (i Import) String() string {
	var b strings.Builder
	if i.Static {
		b.WriteString("static ")
	}
	b.WriteString(i.Name)
	if i.Wildcard {
		b.WriteString(".*")
	}
	return b.String()
}

// Resolve returns the package that imp depends on.
func Resolve(imp Import) string {
	pkg := qualifier(imp.Name)
	if imp.Static {
		pkg = leadingLowercase(pkg)
	}
	return pkg
}

// qualifier returns every segment of name except the last,
// or DefaultPackage when name has a single segment.
func qualifier(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return DefaultPackage
	}
	return name[:i]
}

// leadingLowercase keeps segments while they start with a lowercase letter.
func leadingLowercase(name string) string {
	var kept []string
	for _, part := range strings.Split(name, ".") {
		r, _ := utf8.DecodeRuneInString(part)
		if part == "" || !unicode.IsLower(r) {
			break
		}
		kept = append(kept, part)
	}
	return strings.Join(kept, ".")
}
