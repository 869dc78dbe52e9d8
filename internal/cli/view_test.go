package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cctail/cctail/internal/config"
	"github.com/cctail/cctail/internal/stream"
)

func TestOpenInput(t *testing.T) {
	t.Run("no args reads stdin", func(t *testing.T) {
		in, source, err := openInput(nil)
		require.NoError(t, err)
		defer in.Close()
		assert.Equal(t, "stdin", source)
	})

	t.Run("dash reads stdin", func(t *testing.T) {
		in, source, err := openInput([]string{"-"})
		require.NoError(t, err)
		defer in.Close()
		assert.Equal(t, "stdin", source)
	})

	t.Run("file argument opens the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "session.jsonl")
		require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o644))

		in, source, err := openInput([]string{path})
		require.NoError(t, err)
		defer in.Close()
		assert.Equal(t, path, source)
	})

	t.Run("missing file errors", func(t *testing.T) {
		_, _, err := openInput([]string{filepath.Join(t.TempDir(), "absent.jsonl")})
		assert.Error(t, err)
	})
}

func TestSinkOptions(t *testing.T) {
	cfg := config.NewDefaults()
	cfg.Display.ShowSystem = true
	cfg.Display.PathFilter = "**/*.go"

	opts := sinkOptions(cfg)
	assert.True(t, opts.ShowSystem)
	assert.Equal(t, "**/*.go", opts.PathFilter)
}

func TestDecoderOptions(t *testing.T) {
	cfg := config.NewDefaults()
	assert.Empty(t, decoderOptions(cfg))

	cfg.Display.Dedupe = true
	assert.Len(t, decoderOptions(cfg), 1)
}

func TestDecoderOptionsApply(t *testing.T) {
	cfg := config.NewDefaults()
	cfg.Display.Dedupe = true

	// The option must be usable by the decoder constructor.
	dec := stream.NewDecoder(os.Stdin, decoderOptions(cfg)...)
	assert.NotNil(t, dec)
}
