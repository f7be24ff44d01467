package circular

import (
	"encoding/xml"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dvholsteijn/couplingviz/pkg/depgraph"
	"github.com/dvholsteijn/couplingviz/pkg/errors"
)

func twoPackageGraph(t *testing.T) *depgraph.Graph {
	t.Helper()
	g := depgraph.New()
	g.AddVertex("a")
	g.AddVertex("b")
	for _, e := range [][2]string{{"a", "b"}, {"a", "b"}, {"b", "a"}} {
		if _, err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatal(err)
		}
	}
	return g
}

func TestLayoutTwoVertices(t *testing.T) {
	got := Layout(twoPackageGraph(t))
	want := []Position{
		{Package: "a", X: 900, Y: 500},
		{Package: "b", X: 100, Y: 500},
	}
	if len(got) != len(want) {
		t.Fatalf("Layout() returned %d positions, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Layout()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestLayoutOnCircle(t *testing.T) {
	g := depgraph.New()
	for _, v := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		g.AddVertex(v)
	}
	for _, p := range Layout(g) {
		d := math.Hypot(float64(p.X-CenterX), float64(p.Y-CenterY))
		if math.Abs(d-Radius) > 2 {
			t.Errorf("%s at (%d, %d) is %.1f from centre, want about %d", p.Package, p.X, p.Y, d, Radius)
		}
	}
}

func TestLayoutEmpty(t *testing.T) {
	if got := Layout(depgraph.New()); len(got) != 0 {
		t.Errorf("Layout(empty) = %v, want none", got)
	}
}

func TestThickness(t *testing.T) {
	tests := []struct {
		multiplicity, want int
	}{
		{1, 1},
		{2, 2},
		{6, 6},
		{7, 6},
		{100, 6},
	}
	for _, tt := range tests {
		if got := Thickness(tt.multiplicity); got != tt.want {
			t.Errorf("Thickness(%d) = %d, want %d", tt.multiplicity, got, tt.want)
		}
	}
}

func TestRenderEdges(t *testing.T) {
	svg := string(Render(twoPackageGraph(t), Options{}))

	if n := strings.Count(svg, "<line "); n != 2 {
		t.Errorf("rendered %d lines, want 2 (parallel edges merged)", n)
	}
	if n := strings.Count(svg, "<circle "); n != 2 {
		t.Errorf("rendered %d circles, want 2", n)
	}
	for _, want := range []string{
		`<line x1="900" y1="500" x2="100" y2="500" marker-end="url(#triangle)" stroke="black" stroke-width="2" opacity="0.25" data-target="b">`,
		`<line x1="100" y1="500" x2="900" y2="500" marker-end="url(#triangle)" stroke="black" stroke-width="1" opacity="0.25" data-target="a">`,
		`<title>a -&gt; b</title>`,
		`<circle id="a" cx="900" cy="500" r="10"`,
		`onclick="changeColor(evt)"`,
		`<marker id="triangle"`,
		`function changeColor(evt)`,
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("SVG missing %q", want)
		}
	}
}

func TestRenderThicknessCapped(t *testing.T) {
	g := depgraph.New()
	g.AddVertex("a")
	g.AddVertex("b")
	for range 9 {
		g.AddEdge("a", "b")
	}
	svg := string(Render(g, Options{}))
	if !strings.Contains(svg, `stroke-width="6"`) {
		t.Errorf("SVG should cap stroke width at 6:\n%s", svg)
	}
}

func TestRenderTitle(t *testing.T) {
	svg := string(Render(twoPackageGraph(t), Options{Title: "Core & <Web>"}))
	want := `<text x="500" y="30" text-anchor="middle" font-family="sans-serif" font-size="24">Core &amp; &lt;Web&gt;</text>`
	if !strings.Contains(svg, want) {
		t.Errorf("SVG missing title %q", want)
	}

	if svg := string(Render(twoPackageGraph(t), Options{})); strings.Contains(svg, "<text") {
		t.Error("SVG without title should have no text element")
	}
}

func TestRenderEmptyGraph(t *testing.T) {
	svg := string(Render(depgraph.New(), Options{Title: "empty"}))
	if strings.Contains(svg, "<circle") || strings.Contains(svg, "<line") {
		t.Errorf("empty graph rendered shapes:\n%s", svg)
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("SVG not terminated")
	}
}

func TestRenderWellFormed(t *testing.T) {
	g := depgraph.New()
	g.AddVertex(`odd"name`)
	g.AddVertex("")
	g.AddVertex("x.y")
	g.AddEdge(`odd"name`, "")
	g.AddEdge("x.y", `odd"name`)

	dec := xml.NewDecoder(strings.NewReader(string(Render(g, Options{Title: "a < b"}))))
	for {
		_, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				return
			}
			t.Fatalf("SVG is not well-formed XML: %v", err)
		}
	}
}

func TestSanitizeTitle(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"My Project", "My_Project"},
		{"Café Üser: v1", "Cafe_User_v1"},
		{"a  --  b", "a_--_b"},
		{"x: 日本 :y", "x_y"},
		{"keep__double", "keep__double"},
		{"v1.2-rc_3", "v1.2-rc_3"},
		{"a/b\\c", "a_b_c"},
		{"日本", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := SanitizeTitle(tt.in); got != tt.want {
				t.Errorf("SanitizeTitle(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFileName(t *testing.T) {
	now := time.UnixMilli(1700000000123)
	tests := []struct {
		title, want string
	}{
		{"", "graph_circular_layout_1700000000123.svg"},
		{"My Project", "graph_circular_layout_My_Project_1700000000123.svg"},
		{"日本", "graph_circular_layout_1700000000123.svg"},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			if got := FileName(tt.title, now); got != tt.want {
				t.Errorf("FileName(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	now := time.UnixMilli(42)

	path, err := WriteFile(dir, "title", []byte("<svg/>"), now)
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if want := filepath.Join(dir, "graph_circular_layout_title_42.svg"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "<svg/>" {
		t.Errorf("file content = %q", data)
	}

	_, err = WriteFile(filepath.Join(dir, "missing"), "", nil, now)
	if !errors.Is(err, errors.ErrCodeWriteFailed) {
		t.Errorf("WriteFile(missing dir) error = %v, want %s", err, errors.ErrCodeWriteFailed)
	}
}
