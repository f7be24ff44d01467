package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dvholsteijn/couplingviz/pkg/pipeline"
)

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - labels
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

var (
	StyleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	StyleDim     = lipgloss.NewStyle().Foreground(colorDim)
	StyleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	StyleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleKey         = lipgloss.NewStyle().Foreground(colorGray).Width(12)
)

const (
	iconSuccess = "✓"
	iconWarning = "!"
	iconArrow   = "→"
)

// printSummary writes the outcome of a run: graph size, skipped files and
// the written artifacts.
func printSummary(w io.Writer, res *pipeline.Result) {
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+StyleTitle.Render("Package graph"))
	printStats(w, res)

	if s := res.Scan; s != nil {
		printKeyValue(w, "files", fmt.Sprintf("%d", s.Files))
		if s.Excluded > 0 {
			printKeyValue(w, "excluded", fmt.Sprintf("%d imports", s.Excluded))
		}
		if s.SelfLoops > 0 {
			printKeyValue(w, "self-refs", fmt.Sprintf("%d imports", s.SelfLoops))
		}
		if n := len(s.Failures); n > 0 {
			fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+
				StyleWarning.Render(fmt.Sprintf("%d file(s) skipped", n)))
		}
	}

	printFile(w, res.SVGPath)
	if res.JSONPath != "" {
		printFile(w, res.JSONPath)
	}
}

// printStats prints graph statistics on a single line.
func printStats(w io.Writer, res *pipeline.Result) {
	parts := []string{
		StyleNumber.Render(fmt.Sprintf("%d", res.Stats.Vertices)) + StyleDim.Render(" packages"),
		StyleNumber.Render(fmt.Sprintf("%d", res.Stats.Edges)) + StyleDim.Render(" imports"),
	}
	if res.Graph != nil {
		parts = append(parts, StyleNumber.Render(fmt.Sprintf("%d", len(res.Graph.Pairs())))+StyleDim.Render(" links"))
	}
	fmt.Fprintln(w, "  "+strings.Join(parts, StyleDim.Render(" · ")))
}

func printKeyValue(w io.Writer, key, value string) {
	fmt.Fprintln(w, "  "+styleKey.Render(key)+" "+StyleValue.Render(value))
}

func printFile(w io.Writer, path string) {
	if path == "" {
		return
	}
	fmt.Fprintln(w, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}
