// Package pipeline runs one couplingviz analysis from source tree to
// artifacts.
//
// # Stages
//
//  1. Scan: walk the source tree and build the package graph ([scan.Builder])
//  2. DOT: write the DOT description to the runner's stdout, optionally
//     checking it with Graphviz
//  3. SVG: render the circular layout and write it to the output directory
//  4. JSON: optionally export the graph for other tools
//
// DOT and SVG consume the same finished graph; neither modifies it.
//
// # Usage
//
//	runner := pipeline.NewRunner(java.NewParser(), logger, os.Stdout)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Source:     "src/main/java",
//	    Output:     "out",
//	    Exclusions: imports.ParseExclusions("java,javax"),
//	    Title:      "My project",
//	})
//	fmt.Println(result.SVGPath)
//
// [scan.Builder]: github.com/dvholsteijn/couplingviz/pkg/scan.Builder
package pipeline

import (
	"runtime"
	"time"

	"github.com/dvholsteijn/couplingviz/pkg/depgraph"
	"github.com/dvholsteijn/couplingviz/pkg/errors"
	"github.com/dvholsteijn/couplingviz/pkg/imports"
	"github.com/dvholsteijn/couplingviz/pkg/scan"
)

// Artifact formats reported to render hooks.
const (
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatJSON = "json"
)

// Options contains the configuration of one run.
type Options struct {
	Source     string             // Root of the source tree
	Output     string             // Directory receiving the SVG
	Exclusions imports.Exclusions // Package prefixes left out of the graph
	Title      string             // Optional image title
	Extension  string             // Source-file extension; defaults to scan.DefaultExtension
	Workers    int                // Parse concurrency; defaults to runtime.NumCPU()
	CheckDOT   bool               // Verify the DOT text with Graphviz
	JSONPath   string             // Write a JSON export here when not empty

	validated bool
}

// Result contains the outputs of a run.
type Result struct {
	RunID    string
	Graph    *depgraph.Graph
	DOT      string
	SVG      []byte
	SVGPath  string
	JSONPath string
	Scan     *scan.Result
	Stats    Stats
}

// Stats contains run statistics.
type Stats struct {
	Vertices   int
	Edges      int
	ScanTime   time.Duration
	RenderTime time.Duration
}

// ValidateAndSetDefaults checks the directories and settings and fills in
// defaults. Calling it again is a no-op.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := errors.ValidateSourceRoot(o.Source); err != nil {
		return err
	}
	if err := errors.ValidateOutputDir(o.Output); err != nil {
		return err
	}

	if o.Extension == "" {
		o.Extension = scan.DefaultExtension
	}
	if err := errors.ValidateExtension(o.Extension); err != nil {
		return err
	}
	if o.Workers == 0 {
		o.Workers = runtime.NumCPU()
	}
	if o.Workers < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "workers must be at least 1, got %d", o.Workers)
	}

	o.validated = true
	return nil
}
