package circular

import (
	"math"

	"github.com/dvholsteijn/couplingviz/pkg/depgraph"
)

// Geometry of the rendered image, in SVG user units.
const (
	Canvas       = 1000
	CenterX      = 500
	CenterY      = 500
	Radius       = 400
	VertexRadius = 10
)

// Edge styling.
const (
	MaxThickness    = 6
	BaselineOpacity = 0.25
)

// Position is the placement of one package on the circle.
type Position struct {
	Package string
	X, Y    int
}

// Layout places every vertex of g on the circle, in vertex order.
func Layout(g *depgraph.Graph) []Position {
	vertices := g.Vertices()
	if len(vertices) == 0 {
		return nil
	}

	step := 2 * math.Pi / float64(len(vertices))
	positions := make([]Position, len(vertices))
	for i, v := range vertices {
		angle := float64(i) * step
		positions[i] = Position{
			Package: v,
			X:       int(CenterX + Radius*math.Cos(angle)),
			Y:       int(CenterY + Radius*math.Sin(angle)),
		}
	}
	return positions
}

// Thickness returns the stroke width for an edge drawn multiplicity times.
func Thickness(multiplicity int) int {
	return max(0, min(multiplicity, MaxThickness))
}
