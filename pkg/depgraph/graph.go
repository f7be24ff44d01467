package depgraph

import (
	"errors"
	"slices"
)

var (
	// ErrUnknownSourceNode is returned by [Graph.AddEdge] when the source
	// package has not been added as a vertex.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [Graph.AddEdge] when the target
	// package has not been added as a vertex.
	ErrUnknownTargetNode = errors.New("unknown target node")
)

// EdgeResult reports what [Graph.AddEdge] did.
type EdgeResult int

const (
	// EdgeAdded means a new (possibly parallel) edge was appended.
	EdgeAdded EdgeResult = iota
	// EdgeSelfLoop means the edge was dropped because source equals target.
	EdgeSelfLoop
)

func (r EdgeResult) String() string {
	switch r {
	case EdgeAdded:
		return "added"
	case EdgeSelfLoop:
		return "self-loop"
	default:
		return "unknown"
	}
}

// Edge is a directed dependency from one package to another.
type Edge struct {
	From string // Importing package
	To   string // Imported package
}

// Pair is an ordered pair of packages together with the number of
// parallel edges between them.
type Pair struct {
	From  string
	To    string
	Count int
}

// Graph is a directed multigraph of package names.
//
// The zero value is not usable - use New to create a Graph.
type Graph struct {
	vertices []string
	index    map[string]int
	edges    []Edge
	counts   map[Edge]int
	order    []Edge // distinct pairs in first-insertion order
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		index:  make(map[string]int),
		counts: make(map[Edge]int),
	}
}

// AddVertex adds a package if it is not present yet and reports whether it
// was added.
func (g *Graph) AddVertex(name string) bool {
	if _, ok := g.index[name]; ok {
		return false
	}
	g.index[name] = len(g.vertices)
	g.vertices = append(g.vertices, name)
	return true
}

// AddEdge appends a directed edge from → to. Parallel edges are kept.
// A self-loop is not inserted and is reported as EdgeSelfLoop.
// Returns ErrUnknownSourceNode or ErrUnknownTargetNode if an endpoint
// was never added with AddVertex.
func (g *Graph) AddEdge(from, to string) (EdgeResult, error) {
	if _, ok := g.index[from]; !ok {
		return EdgeAdded, ErrUnknownSourceNode
	}
	if _, ok := g.index[to]; !ok {
		return EdgeAdded, ErrUnknownTargetNode
	}
	if from == to {
		return EdgeSelfLoop, nil
	}

	e := Edge{From: from, To: to}
	g.edges = append(g.edges, e)
	if g.counts[e] == 0 {
		g.order = append(g.order, e)
	}
	g.counts[e]++
	return EdgeAdded, nil
}

// HasVertex reports whether the package is a vertex.
func (g *Graph) HasVertex(name string) bool {
	_, ok := g.index[name]
	return ok
}

// Vertices returns the packages in insertion order.
func (g *Graph) Vertices() []string { return slices.Clone(g.vertices) }

// Edges returns a copy of all edges in insertion order, parallel edges included.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// EdgesBetween returns the parallel edges from → to.
func (g *Graph) EdgesBetween(from, to string) []Edge {
	n := g.counts[Edge{From: from, To: to}]
	if n == 0 {
		return nil
	}
	out := make([]Edge, n)
	for i := range out {
		out[i] = Edge{From: from, To: to}
	}
	return out
}

// Multiplicity returns the number of parallel edges from → to.
func (g *Graph) Multiplicity(from, to string) int {
	return g.counts[Edge{From: from, To: to}]
}

// Pairs returns each distinct ordered pair once, in the order its first
// edge was inserted, with its multiplicity.
func (g *Graph) Pairs() []Pair {
	pairs := make([]Pair, len(g.order))
	for i, e := range g.order {
		pairs[i] = Pair{From: e.From, To: e.To, Count: g.counts[e]}
	}
	return pairs
}

// VertexCount returns the number of packages.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of edges, parallel edges included.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Index returns the position of a vertex in insertion order, or -1.
func (g *Graph) Index(name string) int {
	if i, ok := g.index[name]; ok {
		return i
	}
	return -1
}
