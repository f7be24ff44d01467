package circular

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/dvholsteijn/couplingviz/pkg/depgraph"
)

const markerDefs = `<defs>
<marker id="triangle" viewBox="0 0 10 10" refX="0" refY="5" markerWidth="6" markerHeight="6" orient="auto">
<path d="M 0 0 L 10 5 L 0 10 z" fill="black" />
</marker>
</defs>
`

const highlightJS = `
function changeColor(evt) {
  var circles = document.getElementsByTagName('circle');
  for (var i = 0; i < circles.length; i++) {
    circles[i].setAttribute('fill', 'transparent');
  }
  var vertex = evt.target;
  vertex.setAttribute('fill', 'red');
  var edges = document.getElementsByTagName('line');
  for (var i = 0; i < edges.length; i++) {
    if (edges[i].getAttribute('data-target') === vertex.id) {
      edges[i].setAttribute('stroke', 'red');
      edges[i].setAttribute('opacity', '1');
    } else {
      edges[i].setAttribute('stroke', 'black');
      edges[i].setAttribute('opacity', '%s');
    }
  }
}
`

// Options configures rendering.
type Options struct {
	// Title is drawn centred at the top of the image when not empty.
	Title string
}

// Render returns the SVG document for g.
func Render(g *depgraph.Graph, opts Options) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		Canvas, Canvas, Canvas, Canvas)
	buf.WriteString(markerDefs)
	renderScript(&buf)

	if opts.Title != "" {
		fmt.Fprintf(&buf, `<text x="%d" y="30" text-anchor="middle" font-family="sans-serif" font-size="24">%s</text>`+"\n",
			CenterX, escapeXML(opts.Title))
	}

	positions := Layout(g)
	index := make(map[string]Position, len(positions))
	for _, p := range positions {
		renderVertex(&buf, p)
		index[p.Package] = p
	}

	for _, pair := range g.Pairs() {
		src, okS := index[pair.From]
		dst, okD := index[pair.To]
		if !okS || !okD {
			continue
		}
		renderEdge(&buf, src, dst, Thickness(pair.Count))
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderScript(buf *bytes.Buffer) {
	js := fmt.Sprintf(highlightJS, formatOpacity(BaselineOpacity))
	fmt.Fprintf(buf, "<script type=\"text/javascript\"><![CDATA[%s]]></script>\n", js)
}

func renderVertex(buf *bytes.Buffer, p Position) {
	name := escapeXML(p.Package)
	fmt.Fprintf(buf, `<circle id="%s" cx="%d" cy="%d" r="%d" stroke="black" fill="transparent" opacity="0.5" onclick="changeColor(evt)">`+"\n",
		name, p.X, p.Y, VertexRadius)
	fmt.Fprintf(buf, "<title>%s</title>\n", name)
	buf.WriteString("</circle>\n")
}

func renderEdge(buf *bytes.Buffer, src, dst Position, width int) {
	fmt.Fprintf(buf, `<line x1="%d" y1="%d" x2="%d" y2="%d" marker-end="url(#triangle)" stroke="black" stroke-width="%d" opacity="%s" data-target="%s">`+"\n",
		src.X, src.Y, dst.X, dst.Y, width, formatOpacity(BaselineOpacity), escapeXML(dst.Package))
	fmt.Fprintf(buf, "<title>%s</title>\n", escapeXML(src.Package+" -> "+dst.Package))
	buf.WriteString("</line>\n")
}

func formatOpacity(o float64) string {
	return fmt.Sprintf("%g", o)
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
