package imports

import "strings"

// Exclusions is an ordered list of package-name prefixes. It is built once
// at startup and never modified afterwards.
type Exclusions []string

// ParseExclusions splits a comma-separated list of prefixes. Entries are not
// trimmed or deduplicated. Empty entries are dropped because the empty
// prefix would exclude every package.
func ParseExclusions(s string) Exclusions {
	return NewExclusions(strings.Split(s, ",")...)
}

// NewExclusions builds an exclusion list from prefixes, dropping empty ones.
func NewExclusions(prefixes ...string) Exclusions {
	var out Exclusions
	for _, p := range prefixes {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Excludes reports whether pkg starts with any of the prefixes.
func (e Exclusions) Excludes(pkg string) bool {
	for _, prefix := range e {
		if strings.HasPrefix(pkg, prefix) {
			return true
		}
	}
	return false
}

// String joins the prefixes back into their comma-separated form.
func (e Exclusions) String() string { return strings.Join(e, ",") }
