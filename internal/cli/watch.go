package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/cctail/cctail/internal/buildinfo"
	"github.com/cctail/cctail/internal/stream"
	"github.com/cctail/cctail/internal/tui"
)

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Watch a stream in a full-screen TUI",
	Long: `Render the event stream in a full-screen scrollable view. Reads from
stdin by default, or from a file given as the first argument.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	in, source, err := openInput(args)
	if err != nil {
		return err
	}
	defer in.Close()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	records := make(chan stream.Record, 256)
	dec := stream.NewDecoder(in, decoderOptions(cfg)...)
	go func() {
		// Stream closes the channel on return; the TUI treats a closed
		// channel as end of stream.
		_ = dec.Stream(ctx, records)
	}()

	return tui.Run(tui.Config{
		Source:  source,
		Version: buildinfo.Version,
		Records: records,
		Render:  sinkOptions(cfg),
	})
}
