// Package scan builds the package dependency graph of a source tree.
//
// # Overview
//
// A [Builder] walks the tree for source files, parses each file for its
// package declaration and imports, resolves every import to a package with
// [imports.Resolve], drops packages matched by the exclusion list, and
// records one edge per remaining import:
//
//	b := &scan.Builder{
//	    Parser:     java.NewParser(),
//	    Exclusions: imports.ParseExclusions("java,javax"),
//	}
//	res, err := b.Build(ctx, "src/main/java")
//
// # Failures
//
// A file that cannot be read or parsed is skipped and reported in
// [Result.Failures]; the scan carries on with the remaining files. An import
// of the file's own package is not an error either: the edge is skipped and
// counted in [Result.SelfLoops].
//
// # Concurrency
//
// Files are read and parsed by up to [Builder.Workers] goroutines. Workers
// never touch the graph. Once every file is parsed, a single goroutine
// applies the results in file order, so two scans of the same tree insert
// vertices and edges in the same order.
package scan
