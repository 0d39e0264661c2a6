package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cellspace/integrate"
)

// RunConfig is the YAML-configurable slice of the pipeline parameters.
// Zero values fall back to the documented pca defaults.
type RunConfig struct {
	Reference string  `yaml:"reference"`
	Rank      int     `yaml:"rank"`
	Seed      int64   `yaml:"seed"`
	MaxIter   int     `yaml:"max_iter"`
	Tol       float64 `yaml:"tol"`
}

// loadConfig reads a RunConfig from a YAML file. A missing path returns a
// zero config, so flags alone are always enough.
func loadConfig(path string) (RunConfig, error) {
	var cfg RunConfig
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// options converts the config into pipeline options, applying defaults for
// unset numerical policy fields.
func (c RunConfig) options() integrate.Options {
	opts := integrate.DefaultOptions(c.Reference, c.Rank)
	opts.Fit.Seed = c.Seed
	if c.MaxIter > 0 {
		opts.Fit.MaxIter = c.MaxIter
	}
	if c.Tol > 0 {
		opts.Fit.Tol = c.Tol
	}

	return opts
}

// merge overlays flag values onto the file config. changed reports whether
// a flag was set on the command line (cobra's Flags().Changed), so an
// explicit zero — e.g. --seed 0 over a config carrying seed: 9 — still
// wins over the file.
func (c RunConfig) merge(flags RunConfig, changed func(name string) bool) RunConfig {
	out := c
	if changed("reference") {
		out.Reference = flags.Reference
	}
	if changed("rank") {
		out.Rank = flags.Rank
	}
	if changed("seed") {
		out.Seed = flags.Seed
	}
	if changed("max-iter") {
		out.MaxIter = flags.MaxIter
	}
	if changed("tol") {
		out.Tol = flags.Tol
	}

	return out
}
