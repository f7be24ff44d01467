// Package java extracts package and import declarations from Java source
// using the tree-sitter Java grammar.
//
// Only the top level of the compilation unit is inspected: the package
// declaration and the import declarations, in source order. A file whose
// syntax tree contains an error or missing node is rejected as a whole, so a broken
// file never contributes half of its imports.
package java

import (
	"context"
	"strings"
	"sync"

	tsjava "github.com/alexaandru/go-sitter-forest/java"
	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"github.com/dvholsteijn/couplingviz/pkg/errors"
	"github.com/dvholsteijn/couplingviz/pkg/imports"
	"github.com/dvholsteijn/couplingviz/pkg/source"
)

// Extension is the file extension of Java compilation units.
const Extension = ".java"

const (
	nodeProgram     = "program"
	nodePackageDecl = "package_declaration"
	nodeImportDecl  = "import_declaration"
	nodeIdentifier  = "identifier"
	nodeScopedIdent = "scoped_identifier"
	nodeAsterisk    = "asterisk"
	nodeError       = "ERROR"
	tokenStatic     = "static"
)

var (
	languageOnce sync.Once
	language     *sitter.Language
)

func javaLanguage() *sitter.Language {
	languageOnce.Do(func() {
		language = sitter.NewLanguage(tsjava.GetLanguage())
	})
	return language
}

// Parser parses Java compilation units. It is safe for concurrent use;
// tree-sitter parsers are pooled per Parser.
type Parser struct {
	pool sync.Pool
}

var _ source.Parser = (*Parser)(nil)

// NewParser creates a Java parser.
func NewParser() *Parser {
	lang := javaLanguage()
	return &Parser{
		pool: sync.Pool{
			New: func() any {
				p := sitter.NewParser()
				p.SetLanguage(lang)
				return p
			},
		},
	}
}

// Parse extracts the package declaration and imports from src.
func (p *Parser) Parse(ctx context.Context, path string, src []byte) (*source.File, error) {
	tsParser, ok := p.pool.Get().(*sitter.Parser)
	if !ok {
		return nil, errors.New(errors.ErrCodeInternal, "parser pool returned unexpected type")
	}
	defer p.pool.Put(tsParser)

	tree, err := tsParser.ParseString(ctx, nil, src)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeParseFailed, err, "parse %s", path)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.IsNull() || root.Type() != nodeProgram {
		return nil, errors.New(errors.ErrCodeParseFailed, "parse %s: no compilation unit", path)
	}
	if root.HasError() {
		return nil, syntaxError(path, root, src)
	}

	file := &source.File{Path: path}
	for i := range root.NamedChildCount() {
		child := root.NamedChild(i)
		switch child.Type() {
		case nodePackageDecl:
			if name, ok := declaredName(child, src); ok && !file.HasPackage {
				file.Package = name
				file.HasPackage = true
			}
		case nodeImportDecl:
			if imp, ok := importOf(child, src); ok {
				file.Imports = append(file.Imports, imp)
			}
		}
	}
	return file, nil
}

// declaredName returns the dotted name of a package or import declaration.
func declaredName(decl sitter.Node, src []byte) (string, bool) {
	for i := range decl.NamedChildCount() {
		child := decl.NamedChild(i)
		switch child.Type() {
		case nodeIdentifier, nodeScopedIdent:
			return qualifiedName(child, src), true
		}
	}
	return "", false
}

// qualifiedName joins the identifier leaves of a name with dots. Comments
// and whitespace between the segments are not part of the name.
func qualifiedName(n sitter.Node, src []byte) string {
	if n.Type() == nodeIdentifier {
		return n.Content(src)
	}
	var parts []string
	for i := range n.NamedChildCount() {
		child := n.NamedChild(i)
		switch child.Type() {
		case nodeIdentifier, nodeScopedIdent:
			parts = append(parts, qualifiedName(child, src))
		}
	}
	return strings.Join(parts, ".")
}

func importOf(decl sitter.Node, src []byte) (imports.Import, bool) {
	name, ok := declaredName(decl, src)
	if !ok {
		return imports.Import{}, false
	}
	imp := imports.Import{Name: name}
	for i := range decl.ChildCount() {
		switch decl.Child(i).Type() {
		case tokenStatic:
			imp.Static = true
		case nodeAsterisk:
			imp.Wildcard = true
		}
	}
	return imp, true
}

// syntaxError describes the first error or missing node under root.
func syntaxError(path string, root sitter.Node, src []byte) error {
	bad, found := findError(root)
	if !found {
		return errors.New(errors.ErrCodeParseFailed, "parse %s: syntax error", path)
	}
	line, col := position(src, int(bad.StartByte()))
	if bad.IsMissing() {
		return errors.New(errors.ErrCodeParseFailed, "parse %s: missing %q at %d:%d", path, bad.Type(), line, col)
	}
	return errors.New(errors.ErrCodeParseFailed, "parse %s: syntax error at %d:%d", path, line, col)
}

// findError returns the first node, in document order, that tree-sitter
// marked as an error or inserted as missing during recovery.
func findError(n sitter.Node) (sitter.Node, bool) {
	if n.Type() == nodeError || n.IsError() || n.IsMissing() {
		return n, true
	}
	for i := range n.ChildCount() {
		if bad, found := findError(n.Child(i)); found {
			return bad, true
		}
	}
	return n, false
}

// position converts a byte offset into a 1-based line and column.
func position(src []byte, offset int) (line, col int) {
	if offset > len(src) {
		offset = len(src)
	}
	line = 1 + strings.Count(string(src[:offset]), "\n")
	col = offset + 1
	if nl := strings.LastIndexByte(string(src[:offset]), '\n'); nl >= 0 {
		col = offset - nl
	}
	return line, col
}
