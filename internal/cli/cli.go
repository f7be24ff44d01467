// Package cli implements the couplingviz command-line interface.
//
// The root command scans a Java source tree, prints the package graph as DOT
// on stdout, and writes the circular-layout SVG to the output directory:
//
//	couplingviz <sourceRootPath> <outputDirectoryPath> <excludedPrefixesCommaSeparated> [<imageTitle>]
//
// # Logging
//
// Diagnostics go to stderr through charmbracelet/log. --verbose (-v) enables
// debug output, including one line per edge; --quiet (-q) keeps only
// warnings. Loggers are passed through context.Context.
//
// # Configuration
//
// --config reads a TOML file (see package config). Values from the file fill
// in positional arguments that were left out, so with a config file only the
// source root is required.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/dvholsteijn/couplingviz/pkg/buildinfo"
)

const appName = "couplingviz"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
	LogWarn  = log.WarnLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Stdout io.Writer // Receives the DOT text
	Stderr io.Writer // Receives the run summary
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Stdout: os.Stdout,
		Stderr: w,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command.
func (c *CLI) RootCommand() *cobra.Command {
	var (
		opts    analyzeOptions
		verbose bool
		quiet   bool
	)

	root := &cobra.Command{
		Use:   appName + " <sourceRootPath> <outputDirectoryPath> <excludedPrefixesCommaSeparated> [<imageTitle>]",
		Short: "Visualize package coupling in a Java source tree",
		Long: `couplingviz scans a Java source tree, builds a graph of which packages import
which, prints it as Graphviz DOT and writes an interactive SVG with every
package placed on a circle. Edge thickness grows with the number of imports.`,
		Example: `  couplingviz src/main/java out java,javax "My project"
  couplingviz --config couplingviz.toml src/main/java`,
		Version:       buildinfo.Version,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			return opts.validateArgs(args)
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case verbose:
				c.SetLogLevel(LogDebug)
			case quiet:
				c.SetLogLevel(LogWarn)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return c.runAnalyze(cmd, args, opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.Flags()
	flags.StringVar(&opts.configPath, "config", "", "TOML configuration file")
	flags.IntVar(&opts.workers, "workers", 0, "number of files parsed concurrently (default: number of CPUs)")
	flags.BoolVar(&opts.checkDOT, "check-dot", false, "verify the DOT output with Graphviz")
	flags.StringVar(&opts.jsonPath, "json", "", "also export the graph as JSON to this path")

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only log warnings and errors")
	root.MarkFlagsMutuallyExclusive("verbose", "quiet")

	return root
}
