package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/dvholsteijn/couplingviz/pkg/depgraph"
	"github.com/dvholsteijn/couplingviz/pkg/errors"
	graphio "github.com/dvholsteijn/couplingviz/pkg/io"
	"github.com/dvholsteijn/couplingviz/pkg/observability"
	"github.com/dvholsteijn/couplingviz/pkg/render/circular"
	"github.com/dvholsteijn/couplingviz/pkg/render/dot"
	"github.com/dvholsteijn/couplingviz/pkg/scan"
	"github.com/dvholsteijn/couplingviz/pkg/source"
)

// Runner executes runs. It holds no per-run state, so one Runner can serve
// several runs with different options.
type Runner struct {
	Parser source.Parser
	Logger *log.Logger
	Stdout io.Writer        // Receives the DOT text
	Now    func() time.Time // Clock used for the SVG file name
}

// NewRunner creates a runner. A nil logger discards log output and a nil
// stdout discards the DOT text.
func NewRunner(parser source.Parser, logger *log.Logger, stdout io.Writer) *Runner {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if stdout == nil {
		stdout = io.Discard
	}
	return &Runner{
		Parser: parser,
		Logger: logger,
		Stdout: stdout,
		Now:    time.Now,
	}
}

// Execute runs scan → DOT → SVG → JSON.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{RunID: uuid.NewString()}
	logger := r.logger().With("run", result.RunID)

	// Stage 1: Scan
	scanStart := time.Now()
	builder := &scan.Builder{
		Parser:     r.Parser,
		Exclusions: opts.Exclusions,
		Extension:  opts.Extension,
		Workers:    opts.Workers,
		Logger:     logger,
	}
	scanned, err := builder.Build(ctx, opts.Source)
	if err != nil {
		return nil, err
	}
	result.Scan = scanned
	result.Graph = scanned.Graph
	result.Stats.ScanTime = time.Since(scanStart)
	result.Stats.Vertices = scanned.Graph.VertexCount()
	result.Stats.Edges = scanned.Graph.EdgeCount()

	renderStart := time.Now()

	// Stage 2: DOT
	if result.DOT, err = r.writeDOT(ctx, scanned.Graph, opts.CheckDOT); err != nil {
		return nil, err
	}

	// Stage 3: SVG
	if result.SVG, result.SVGPath, err = r.writeSVG(ctx, scanned.Graph, opts); err != nil {
		return nil, err
	}
	logger.Info("wrote svg export", "path", result.SVGPath)

	// Stage 4: JSON
	if opts.JSONPath != "" {
		if err := r.writeJSON(ctx, scanned.Graph, opts.JSONPath); err != nil {
			return nil, err
		}
		result.JSONPath = opts.JSONPath
		logger.Info("wrote json export", "path", opts.JSONPath)
	}

	result.Stats.RenderTime = time.Since(renderStart)
	logger.Debug("rendered outputs", "duration", result.Stats.RenderTime)
	return result, nil
}

func (r *Runner) writeDOT(ctx context.Context, g *depgraph.Graph, check bool) (string, error) {
	start := time.Now()
	text := dot.ToDOT(g)

	var err error
	if check {
		err = dot.Check(ctx, text)
	}
	if err == nil {
		if _, werr := fmt.Fprint(r.Stdout, text); werr != nil {
			err = errors.Wrap(errors.ErrCodeWriteFailed, werr, "write DOT")
		}
	}
	observability.Render().OnRenderComplete(ctx, FormatDOT, len(text), time.Since(start), err)
	if err != nil {
		return "", err
	}
	return text, nil
}

func (r *Runner) writeSVG(ctx context.Context, g *depgraph.Graph, opts Options) ([]byte, string, error) {
	start := time.Now()
	svg := circular.Render(g, circular.Options{Title: opts.Title})
	path, err := circular.WriteFile(opts.Output, opts.Title, svg, r.now())
	observability.Render().OnRenderComplete(ctx, FormatSVG, len(svg), time.Since(start), err)
	if err != nil {
		return nil, "", err
	}
	return svg, path, nil
}

func (r *Runner) writeJSON(ctx context.Context, g *depgraph.Graph, path string) error {
	start := time.Now()
	err := graphio.ExportJSON(g, path)
	size := 0
	if info, serr := os.Stat(path); err == nil && serr == nil {
		size = int(info.Size())
	}
	observability.Render().OnRenderComplete(ctx, FormatJSON, size, time.Since(start), err)
	return err
}

func (r *Runner) logger() *log.Logger {
	if r.Logger == nil {
		return log.NewWithOptions(io.Discard, log.Options{})
	}
	return r.Logger
}

func (r *Runner) now() time.Time {
	if r.Now == nil {
		return time.Now()
	}
	return r.Now()
}
