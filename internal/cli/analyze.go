package cli

import (
	"github.com/spf13/cobra"

	"github.com/dvholsteijn/couplingviz/pkg/config"
	"github.com/dvholsteijn/couplingviz/pkg/errors"
	"github.com/dvholsteijn/couplingviz/pkg/imports"
	"github.com/dvholsteijn/couplingviz/pkg/pipeline"
	"github.com/dvholsteijn/couplingviz/pkg/source/java"
)

// Positional argument indexes.
const (
	argSource = iota
	argOutput
	argExclusions
	argTitle
	maxArgs
)

type analyzeOptions struct {
	configPath string
	workers    int
	checkDOT   bool
	jsonPath   string
}

func (o analyzeOptions) validateArgs(args []string) error {
	required := argExclusions + 1
	if o.configPath != "" {
		required = argSource + 1
	}
	if len(args) < required {
		return errors.New(errors.ErrCodeInvalidInput, "requires at least %d arg(s), only received %d", required, len(args))
	}
	if len(args) > maxArgs {
		return errors.New(errors.ErrCodeInvalidInput, "accepts at most %d arg(s), received %d", maxArgs, len(args))
	}
	return nil
}

// resolve merges positional arguments and flags over cfg. Arguments win.
func (o analyzeOptions) resolve(cmd *cobra.Command, args []string, cfg config.Config) (pipeline.Options, error) {
	opts := pipeline.Options{
		Source:     args[argSource],
		Output:     cfg.Output,
		Exclusions: imports.NewExclusions(cfg.Exclude...),
		Title:      cfg.Title,
		Extension:  cfg.Extension,
		Workers:    cfg.Workers,
		CheckDOT:   cfg.CheckDOT || o.checkDOT,
		JSONPath:   cfg.JSON,
	}
	if len(args) > argOutput {
		opts.Output = args[argOutput]
	}
	if len(args) > argExclusions {
		opts.Exclusions = imports.ParseExclusions(args[argExclusions])
	}
	if len(args) > argTitle {
		opts.Title = args[argTitle]
	}
	if cmd.Flags().Changed("workers") {
		opts.Workers = o.workers
	}
	if o.jsonPath != "" {
		opts.JSONPath = o.jsonPath
	}

	if opts.Output == "" {
		return opts, errors.New(errors.ErrCodeInvalidInput, "no output directory given")
	}
	if opts.Workers < 1 {
		return opts, errors.New(errors.ErrCodeInvalidConfig, "workers must be at least 1, got %d", opts.Workers)
	}
	return opts, nil
}

func (o analyzeOptions) loadConfig() (config.Config, error) {
	if o.configPath == "" {
		return config.Default(), nil
	}
	return config.Load(o.configPath)
}

func (c *CLI) runAnalyze(cmd *cobra.Command, args []string, o analyzeOptions) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := o.loadConfig()
	if err != nil {
		return err
	}
	opts, err := o.resolve(cmd, args, cfg)
	if err != nil {
		return err
	}

	logger.Debug("starting analysis",
		"source", opts.Source,
		"output", opts.Output,
		"exclude", opts.Exclusions.String(),
		"workers", opts.Workers)

	prog := newProgress(logger)
	runner := pipeline.NewRunner(java.NewParser(), logger, c.Stdout)
	result, err := runner.Execute(ctx, opts)
	if err != nil {
		return err
	}
	prog.done("analysis complete")

	printSummary(c.Stderr, result)
	return nil
}
