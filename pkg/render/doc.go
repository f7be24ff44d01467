// Package render holds the renderers for package dependency graphs.
//
// # Overview
//
// Each renderer consumes a finished [depgraph.Graph] and produces one
// artifact. Renderers never modify the graph, so they can run in any order.
//
//   - [dot]: Graphviz DOT text, written to the console
//   - [circular]: self-contained interactive SVG with packages on a circle
//
// [depgraph.Graph]: github.com/dvholsteijn/couplingviz/pkg/depgraph.Graph
// [dot]: github.com/dvholsteijn/couplingviz/pkg/render/dot
// [circular]: github.com/dvholsteijn/couplingviz/pkg/render/circular
package render
