// Package source defines what the graph builder needs from a source tree:
// a list of files ([Walk]) and, per file, the declared package and its
// imports ([Parser]).
//
// Language support lives in subpackages; the java subpackage parses Java
// with tree-sitter.
package source

import (
	"context"

	"github.com/dvholsteijn/couplingviz/pkg/imports"
)

// File holds the facts extracted from one compilation unit.
type File struct {
	Path       string           // Path as passed to the parser
	Package    string           // Declared package, empty if none
	HasPackage bool             // Whether a package declaration was present
	Imports    []imports.Import // Import declarations in source order
}

// PackageName returns the declared package, or [imports.DefaultPackage]
// when the file has no package declaration.
func (f *File) PackageName() string {
	if !f.HasPackage || f.Package == "" {
		return imports.DefaultPackage
	}
	return f.Package
}

// Parser extracts package and import facts from file contents.
// Malformed source is reported as an error for that file only.
// Implementations must be safe for concurrent use.
type Parser interface {
	Parse(ctx context.Context, path string, src []byte) (*File, error)
}

// ParserFunc adapts a function to the [Parser] interface.
type ParserFunc func(ctx context.Context, path string, src []byte) (*File, error)

// Parse calls f.
func (f ParserFunc) Parse(ctx context.Context, path string, src []byte) (*File, error) {
	return f(ctx, path, src)
}
