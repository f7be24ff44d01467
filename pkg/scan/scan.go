package scan

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/dvholsteijn/couplingviz/pkg/depgraph"
	"github.com/dvholsteijn/couplingviz/pkg/errors"
	"github.com/dvholsteijn/couplingviz/pkg/imports"
	"github.com/dvholsteijn/couplingviz/pkg/observability"
	"github.com/dvholsteijn/couplingviz/pkg/source"
)

// DefaultExtension is the source-file extension scanned when
// [Builder.Extension] is empty.
const DefaultExtension = ".java"

// Builder scans a source tree into a [depgraph.Graph].
type Builder struct {
	Parser     source.Parser      // Required
	Exclusions imports.Exclusions // Packages starting with any entry are skipped
	Extension  string             // Defaults to DefaultExtension
	Workers    int                // Parse concurrency; defaults to runtime.NumCPU()
	Logger     *log.Logger        // Defaults to log.Default()
}

// FileError records a file that was skipped.
type FileError struct {
	Path string
	Err  error
}

func (e FileError) Error() string { return fmt.Sprintf("%s: %v", e.Path, e.Err) }

func (e FileError) Unwrap() error { return e.Err }

// Result is the outcome of a scan.
type Result struct {
	Graph     *depgraph.Graph
	Files     int         // Source files found
	Failures  []FileError // Files skipped because they could not be read or parsed
	Imports   int         // Import declarations seen in parsed files
	Edges     int         // Edges inserted
	SelfLoops int         // Imports of the file's own package
	Excluded  int         // Imports dropped by the exclusion list
	Duration  time.Duration
}

type parsed struct {
	file *source.File
	err  error
}

// Build scans root and returns the populated graph. Per-file failures do
// not fail the build; only an unreadable root or a cancelled context does.
func (b *Builder) Build(ctx context.Context, root string) (*Result, error) {
	if b.Parser == nil {
		return nil, errors.New(errors.ErrCodeInternal, "scan: no parser configured")
	}
	logger := b.logger()
	start := time.Now()
	observability.Scan().OnScanStart(ctx, root)

	res := &Result{Graph: depgraph.New()}

	files, err := source.Walk(root, b.extension(), func(path string, err error) {
		res.Failures = append(res.Failures, FileError{
			Path: path,
			Err:  errors.Wrap(errors.ErrCodeReadFailed, err, "walk"),
		})
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeReadFailed, err, "walk %s", root)
	}
	res.Files = len(files)
	logger.Debug("found source files", "root", root, "files", len(files))

	results, err := b.parseAll(ctx, files)
	if err != nil {
		return nil, err
	}

	for i, r := range results {
		if r.err != nil {
			logger.Warn("skipping file", "path", files[i], "err", errors.UserMessage(r.err))
			res.Failures = append(res.Failures, FileError{Path: files[i], Err: r.err})
			continue
		}
		if err := b.apply(logger, res, r.file); err != nil {
			return nil, err
		}
	}

	res.Duration = time.Since(start)
	observability.Scan().OnScanComplete(ctx, root, res.Files, len(res.Failures), res.Duration)
	logger.Info("scanned sources",
		"files", res.Files,
		"failed", len(res.Failures),
		"packages", res.Graph.VertexCount(),
		"edges", res.Graph.EdgeCount(),
		"duration", res.Duration.Round(time.Millisecond))
	return res, nil
}

// parseAll reads and parses files concurrently. Each worker writes only its
// own slot of the returned slice.
func (b *Builder) parseAll(ctx context.Context, files []string) ([]parsed, error) {
	results := make([]parsed, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers())
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = b.parseFile(gctx, path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func (b *Builder) parseFile(ctx context.Context, path string) parsed {
	src, err := os.ReadFile(path)
	if err != nil {
		err = errors.Wrap(errors.ErrCodeReadFailed, err, "read %s", path)
		observability.Scan().OnFileParsed(ctx, path, 0, err)
		return parsed{err: err}
	}
	f, err := b.Parser.Parse(ctx, path, src)
	if err != nil {
		if !errors.Is(err, errors.ErrCodeParseFailed) {
			err = errors.Wrap(errors.ErrCodeParseFailed, err, "parse %s", path)
		}
		observability.Scan().OnFileParsed(ctx, path, 0, err)
		return parsed{err: err}
	}
	observability.Scan().OnFileParsed(ctx, path, len(f.Imports), nil)
	return parsed{file: f}
}

// apply inserts one file's package and imports into the graph.
func (b *Builder) apply(logger *log.Logger, res *Result, f *source.File) error {
	g := res.Graph
	pkg := f.PackageName()
	g.AddVertex(pkg)

	for _, imp := range f.Imports {
		res.Imports++
		target := imports.Resolve(imp)
		if b.Exclusions.Excludes(target) {
			res.Excluded++
			continue
		}

		g.AddVertex(target)
		outcome, err := g.AddEdge(pkg, target)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "add edge %s -> %s", pkg, target)
		}
		if outcome == depgraph.EdgeSelfLoop {
			res.SelfLoops++
			logger.Debug("skipping self-referencing import", "package", pkg, "import", imp.String(), "path", f.Path)
			continue
		}
		res.Edges++
		logger.Debug("adding edge", "from", pkg, "to", target)
	}
	return nil
}

func (b *Builder) logger() *log.Logger {
	if b.Logger == nil {
		return log.Default()
	}
	return b.Logger
}

func (b *Builder) extension() string {
	if b.Extension == "" {
		return DefaultExtension
	}
	return b.Extension
}

func (b *Builder) workers() int {
	if b.Workers < 1 {
		return runtime.NumCPU()
	}
	return b.Workers
}
