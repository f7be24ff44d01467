// Package dot renders a package dependency graph as Graphviz DOT text.
//
// # Usage
//
//	text := dot.ToDOT(g)
//	fmt.Fprint(os.Stdout, text)
//
// # Format
//
// Every package gets one node statement whose label is the dotted package
// name. Node identifiers replace dots with underscores and are always
// quoted, so the empty package name the static-import heuristic can produce
// still yields a valid identifier. Parallel edges are kept: a package that
// imports three types from another package gets three edge statements.
//
// [Check] parses the text with [github.com/goccy/go-graphviz] to verify it
// before it is handed to external tools.
package dot
