// Package circular renders a package dependency graph as an interactive SVG
// with every package placed on one circle.
//
// # Layout
//
// Vertex i of n sits at angle i·2π/n on a circle of radius [Radius] centred
// in a [Canvas]×[Canvas] image, in the graph's insertion order. Coordinates
// are truncated to whole units. An empty graph yields an empty canvas.
//
// # Edges
//
// Parallel edges between the same ordered pair are drawn as one line whose
// stroke width is the pair's multiplicity capped at [MaxThickness]. Lines
// carry a tooltip naming both ends and a data-target attribute holding the
// target package.
//
// # Interaction
//
// The image embeds its own script: clicking a vertex fills it red and
// highlights in red every line pointing at it; all other lines return to
// black at [BaselineOpacity]. No external resources are referenced.
//
// # Files
//
// [WriteFile] stores the image under a name built by [FileName]:
//
//	graph_circular_layout_[<title>_]<unixMillis>.svg
//
// where the title has been passed through [SanitizeTitle].
package circular
