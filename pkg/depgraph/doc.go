// Package depgraph provides the package-level dependency multigraph.
//
// # Overview
//
// Vertices are package names, kept in insertion order. Edges are directed
// (importing package → imported package) and kept as a sequence: importing
// the same package twice yields two parallel edges, and the number of
// parallel edges between an ordered pair is its multiplicity. Nothing is
// weighted; multiplicity is counted on demand with [Graph.Multiplicity] or
// aggregated with [Graph.Pairs].
//
// # Insertion Policy
//
// [Graph.AddVertex] is idempotent. [Graph.AddEdge] requires both endpoints
// to be vertices already and refuses self-loops by returning [EdgeSelfLoop]
// instead of an error, so callers can log the skip and carry on:
//
//	g := depgraph.New()
//	g.AddVertex("a")
//	g.AddVertex("b")
//	res, err := g.AddEdge("a", "b") // res == depgraph.EdgeAdded
//
// Multi-hop cycles (a → b → a) are ordinary graph data.
//
// # Concurrency
//
// A Graph has a single owner. It is populated once, then only read;
// it is not safe for concurrent mutation.
package depgraph
