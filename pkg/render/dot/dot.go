package dot

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/dvholsteijn/couplingviz/pkg/depgraph"
	"github.com/dvholsteijn/couplingviz/pkg/errors"
)

// ToDOT converts g to DOT text. Nodes appear in vertex insertion order and
// edges in edge insertion order.
func ToDOT(g *depgraph.Graph) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")

	for _, v := range g.Vertices() {
		fmt.Fprintf(&buf, "  %q [ label=%q ];\n", ID(v), v)
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %q -> %q;\n", ID(e.From), ID(e.To))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// ID returns the node identifier used for package name.
func ID(name string) string {
	return strings.ReplaceAll(name, ".", "_")
}

// Check parses text with Graphviz and reports whether it is valid DOT.
func Check(ctx context.Context, text string) error {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return errors.Wrap(errors.ErrCodeRenderFailed, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(text))
	if err != nil {
		return errors.Wrap(errors.ErrCodeRenderFailed, err, "parse DOT")
	}
	if g == nil {
		return errors.New(errors.ErrCodeRenderFailed, "parse DOT: no graph")
	}
	defer g.Close()
	return nil
}
