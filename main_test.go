package main

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"

	"github.com/ytget/sort-visualizer/internal/config"
)

func newContext(t *testing.T, args ...string) *cli.Context {
	set := flag.NewFlagSet("flagSet", flag.ContinueOnError)
	set.String("config", "", "")
	set.Uint64("seed", 0, "")
	set.Duration("pace", 0, "")
	set.String("log-level", "", "")
	set.Bool("debug", false, "")
	set.String("metrics", "", "")
	require.NoError(t, set.Parse(args))
	return cli.NewContext(cli.NewApp(), set, nil)
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := loadConfig(newContext(t))
		require.NoError(t, err)
		require.Equal(t, config.DefaultFile(), cfg)
		require.Empty(t, cfg.MetricsAddress())
	})

	t.Run("flags override file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("LogLevel: warn\nSeed: 3\n"), 0o644))

		cfg, err := loadConfig(newContext(t,
			"--config", path,
			"--seed", "42",
			"--pace", "15ms",
			"--metrics", "localhost:9999",
		))
		require.NoError(t, err)
		require.Equal(t, "warn", cfg.LogLevel)
		require.Equal(t, uint64(42), cfg.Seed)
		require.NotNil(t, cfg.Pace)
		require.Equal(t, 15*time.Millisecond, *cfg.Pace)
		require.Equal(t, "localhost:9999", cfg.MetricsAddress())
	})

	t.Run("negative pace", func(t *testing.T) {
		_, err := loadConfig(newContext(t, "--pace", "-1s"))
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loadConfig(newContext(t, "--config", filepath.Join(t.TempDir(), "nope.yml")))
		require.Error(t, err)
	})
}

func TestNewApp(t *testing.T) {
	ctl := newApp()
	require.Equal(t, version, ctl.Version)
	require.Len(t, ctl.Flags, 6)
}
