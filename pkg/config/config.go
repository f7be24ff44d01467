// Package config loads couplingviz settings from a TOML file.
//
// Every key is optional:
//
//	exclude   = ["java", "javax"]
//	output    = "out"
//	title     = "My project"
//	extension = ".java"
//	workers   = 4
//	check_dot = false
//	json      = "graph.json"
//
// Command-line arguments override values read from the file.
package config

import (
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/dvholsteijn/couplingviz/pkg/errors"
)

// Config holds the settings of one run.
type Config struct {
	Exclude   []string `toml:"exclude"`   // Package prefixes left out of the graph
	Output    string   `toml:"output"`    // Directory receiving the SVG
	Title     string   `toml:"title"`     // Image title, also used in the file name
	Extension string   `toml:"extension"` // Source-file extension to scan
	Workers   int      `toml:"workers"`   // Parse concurrency
	CheckDOT  bool     `toml:"check_dot"` // Verify the DOT text with Graphviz
	JSON      string   `toml:"json"`      // Optional JSON export path
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Extension: ".java",
		Workers:   runtime.NumCPU(),
	}
}

// Load reads path on top of [Default]. Unknown keys are rejected so that a
// misspelt setting is not silently ignored.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings that do not depend on the filesystem.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "workers must be at least 1, got %d", c.Workers)
	}
	return errors.ValidateExtension(c.Extension)
}
