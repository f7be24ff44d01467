// Package pkg provides the libraries behind couplingviz, a tool that shows
// how the packages of a Java code base depend on each other.
//
// # Overview
//
// The typical data flow:
//
//	Java source tree
//	         ↓
//	    [source] + [source/java] (find files, read package and imports)
//	         ↓
//	    [imports] (resolve each import to a package, apply exclusions)
//	         ↓
//	    [scan] → [depgraph] (package multigraph)
//	         ↓
//	    [render/dot] and [render/circular] (DOT text, interactive SVG)
//
// [pipeline] runs the whole flow and [io] exports the graph as JSON.
// Supporting packages: [errors] (coded errors), [config] (TOML settings),
// [observability] (scan and render hooks) and [buildinfo].
//
// # Quick Start
//
//	b := &scan.Builder{
//	    Parser:     java.NewParser(),
//	    Exclusions: imports.ParseExclusions("java,javax"),
//	}
//	res, err := b.Build(ctx, "src/main/java")
//	if err != nil {
//	    return err
//	}
//	fmt.Print(dot.ToDOT(res.Graph))
//	svg := circular.Render(res.Graph, circular.Options{Title: "My project"})
//
// [source]: github.com/dvholsteijn/couplingviz/pkg/source
// [source/java]: github.com/dvholsteijn/couplingviz/pkg/source/java
// [imports]: github.com/dvholsteijn/couplingviz/pkg/imports
// [scan]: github.com/dvholsteijn/couplingviz/pkg/scan
// [depgraph]: github.com/dvholsteijn/couplingviz/pkg/depgraph
// [render/dot]: github.com/dvholsteijn/couplingviz/pkg/render/dot
// [render/circular]: github.com/dvholsteijn/couplingviz/pkg/render/circular
// [pipeline]: github.com/dvholsteijn/couplingviz/pkg/pipeline
// [io]: github.com/dvholsteijn/couplingviz/pkg/io
// [errors]: github.com/dvholsteijn/couplingviz/pkg/errors
// [config]: github.com/dvholsteijn/couplingviz/pkg/config
// [observability]: github.com/dvholsteijn/couplingviz/pkg/observability
// [buildinfo]: github.com/dvholsteijn/couplingviz/pkg/buildinfo
package pkg
