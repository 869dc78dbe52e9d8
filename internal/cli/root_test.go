package cli

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandTree(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"run", "watch", "init", "version"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestRootPersistentFlags(t *testing.T) {
	for _, name := range []string{"verbose", "quiet", "config", "no-color"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), "missing flag %s", name)
	}
}

func TestApplyEnvFallbacks(t *testing.T) {
	newFlags := func() *pflag.FlagSet {
		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		fs.Bool("verbose", false, "")
		fs.Bool("quiet", false, "")
		fs.Bool("no-color", false, "")
		return fs
	}

	t.Run("env sets unchanged flag", func(t *testing.T) {
		t.Setenv("CCTAIL_VERBOSE", "1")
		fs := newFlags()

		applyEnvFallbacks(fs)

		v, err := fs.GetBool("verbose")
		require.NoError(t, err)
		assert.True(t, v)
	})

	t.Run("explicit flag wins over env", func(t *testing.T) {
		t.Setenv("CCTAIL_QUIET", "1")
		fs := newFlags()
		require.NoError(t, fs.Parse([]string{"--quiet=false"}))

		applyEnvFallbacks(fs)

		v, err := fs.GetBool("quiet")
		require.NoError(t, err)
		assert.False(t, v)
	})

	t.Run("NO_COLOR is honored", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		fs := newFlags()

		applyEnvFallbacks(fs)

		v, err := fs.GetBool("no-color")
		require.NoError(t, err)
		assert.True(t, v)
	})

	t.Run("nothing set leaves defaults", func(t *testing.T) {
		fs := newFlags()
		applyEnvFallbacks(fs)

		v, err := fs.GetBool("verbose")
		require.NoError(t, err)
		assert.False(t, v)
	})
}
