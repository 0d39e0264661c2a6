package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cellspace/pca"
)

// writeTempConfig drops a YAML run config into a per-test directory.
func writeTempConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

// changedSet builds a Changed-style lookup from a list of flag names.
func changedSet(names ...string) func(string) bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}

	return func(name string) bool { return set[name] }
}

// TestLoadConfig_YAML verifies a config file round-trips into RunConfig.
func TestLoadConfig_YAML(t *testing.T) {
	path := writeTempConfig(t, "reference: ctrl\nrank: 7\nseed: 11\nmax_iter: 300\ntol: 1e-6\n")

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "ctrl", cfg.Reference)
	assert.Equal(t, 7, cfg.Rank)
	assert.Equal(t, int64(11), cfg.Seed)
	assert.Equal(t, 300, cfg.MaxIter)
	assert.InDelta(t, 1e-6, cfg.Tol, 0)
}

// TestLoadConfig_MissingPathIsZero verifies flags alone are enough: an
// empty path yields a zero config without touching the filesystem.
func TestLoadConfig_MissingPathIsZero(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, RunConfig{}, cfg)
}

// TestLoadConfig_BadFile covers unreadable and unparsable configs.
func TestLoadConfig_BadFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err, "missing file must surface")

	path := writeTempConfig(t, "rank: [not a scalar\n")
	_, err = loadConfig(path)
	assert.Error(t, err, "malformed YAML must surface")
}

// TestMerge_FlagsWinWhenSet verifies flags-over-config precedence is
// driven by whether the flag was set, not by its value — an explicit
// zero still overrides the file.
func TestMerge_FlagsWinWhenSet(t *testing.T) {
	cfg := RunConfig{Reference: "ctrl", Rank: 7, Seed: 9, MaxIter: 300, Tol: 1e-6}
	flags := RunConfig{Reference: "stim", Rank: 3, Seed: 0}

	// Only reference and seed were set on the command line.
	got := cfg.merge(flags, changedSet("reference", "seed"))
	assert.Equal(t, "stim", got.Reference, "set flag overrides config")
	assert.Equal(t, int64(0), got.Seed, "explicit zero overrides config")
	assert.Equal(t, 7, got.Rank, "unset flag leaves config value")
	assert.Equal(t, 300, got.MaxIter)
	assert.InDelta(t, 1e-6, got.Tol, 0)

	// Nothing set: the config passes through untouched.
	got = cfg.merge(flags, changedSet())
	assert.Equal(t, cfg, got)
}

// TestOptions_DefaultsForUnsetPolicy verifies zero MaxIter/Tol fall back
// to the documented pca defaults while set values stick.
func TestOptions_DefaultsForUnsetPolicy(t *testing.T) {
	opts := RunConfig{Reference: "ctrl", Rank: 5, Seed: 3}.options()
	assert.Equal(t, "ctrl", opts.Reference)
	assert.Equal(t, 5, opts.Fit.Rank)
	assert.Equal(t, int64(3), opts.Fit.Seed)
	assert.Equal(t, pca.DefaultMaxIter, opts.Fit.MaxIter)
	assert.InDelta(t, pca.DefaultTol, opts.Fit.Tol, 0)

	opts = RunConfig{Reference: "ctrl", Rank: 5, MaxIter: 42, Tol: 1e-3}.options()
	assert.Equal(t, 42, opts.Fit.MaxIter)
	assert.InDelta(t, 1e-3, opts.Fit.Tol, 0)
}
