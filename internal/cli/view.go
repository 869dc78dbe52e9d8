package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cctail/cctail/internal/config"
	"github.com/cctail/cctail/internal/logging"
	"github.com/cctail/cctail/internal/render"
	"github.com/cctail/cctail/internal/stream"
)

// loadConfig resolves the effective configuration, honoring --config.
func loadConfig() (*config.Config, error) {
	return config.Resolve(flagConfig)
}

// sinkOptions maps display configuration to render options.
func sinkOptions(cfg *config.Config) render.Options {
	return render.Options{
		Styles:     render.DefaultStyles(),
		ShowSystem: cfg.Display.ShowSystem,
		PathFilter: cfg.Display.PathFilter,
	}
}

// decoderOptions maps display configuration to decoder options.
func decoderOptions(cfg *config.Config) []stream.Option {
	if cfg.Display.Dedupe {
		return []stream.Option{stream.WithDedupe()}
	}
	return nil
}

// openInput returns a reader for the optional file argument. With no
// argument (or "-") it reads stdin.
func openInput(args []string) (io.ReadCloser, string, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(os.Stdin), "stdin", nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("opening %s: %w", args[0], err)
	}
	return f, args[0], nil
}

// runView is the root RunE: decode the input stream and render it to stdout.
func runView(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	in, source, err := openInput(args)
	if err != nil {
		return err
	}
	defer in.Close()

	logger := logging.New("view")
	logger.Debug("rendering stream", "source", source)

	dec := stream.NewDecoder(in, decoderOptions(cfg)...)
	sink := render.NewSink(os.Stdout, sinkOptions(cfg))

	for {
		rec, err := dec.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := sink.Render(rec); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}
}
