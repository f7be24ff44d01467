package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns the logger used by every command. Entries are written
// to w with a "15:04:05.00" timestamp; entries below level are dropped.
// The DOT text never goes through it, so stdout stays pipeable.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress measures one step of a command and reports how long it took.
// A progress is meant for the goroutine that created it.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress starts the clock for a step. Call done when the step ends.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg at info level with the time since newProgress, rounded to
// the millisecond, e.g. "analysis complete (1.234s)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey is unexported so no other package can read or overwrite values
// stored by this one.
type ctxKey int

// loggerKey stores the command logger in a context.
const loggerKey ctxKey = 0

// withLogger attaches l to ctx. The root command does this once in its
// pre-run hook so every stage of the run logs through the same logger,
// at the level chosen by --verbose or --quiet.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger stored by withLogger. Commands run
// outside the root command (as in tests) get log.Default() instead, so the
// result is never nil.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
