package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cctail/cctail/internal/claude"
	"github.com/cctail/cctail/internal/logging"
	"github.com/cctail/cctail/internal/render"
	"github.com/cctail/cctail/internal/stream"
)

var (
	runFlagPrompt string
	runFlagModel  string
	runFlagTools  string
	runFlagDryRun bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the Claude CLI and render its output live",
	Long: `Spawn the Claude CLI with --output-format stream-json and render its
event stream as the session runs. The claude executable, model, and tool
allow-list come from cctail.toml and can be overridden with flags.`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVarP(&runFlagPrompt, "prompt", "p", "", "Prompt to send to the Claude CLI (required)")
	runCmd.Flags().StringVar(&runFlagModel, "model", "", "Model identifier (overrides config)")
	runCmd.Flags().StringVar(&runFlagTools, "allowed-tools", "", "Comma-separated tool allow-list (overrides config)")
	runCmd.Flags().BoolVar(&runFlagDryRun, "dry-run", false, "Print the command that would run without executing it")
	_ = runCmd.MarkFlagRequired("prompt")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	client := claude.NewClient(cfg.Claude, cfg.Display.Dedupe, logging.New("claude"))
	opts := claude.RunOpts{
		Prompt:       runFlagPrompt,
		Model:        runFlagModel,
		AllowedTools: runFlagTools,
	}

	if runFlagDryRun {
		fmt.Fprintln(os.Stderr, client.DryRunCommand(opts))
		return nil
	}

	if err := client.CheckPrerequisites(); err != nil {
		return err
	}

	records := make(chan stream.Record, 256)
	sink := render.NewSink(os.Stdout, sinkOptions(cfg))

	// Consumer goroutine: drains records until the channel is closed after
	// Run returns.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for rec := range records {
			_ = sink.Render(rec)
		}
	}()

	opts.Records = records
	result, err := client.Run(cmd.Context(), opts)
	close(records)
	<-done

	if err != nil {
		return err
	}
	if !result.Success() {
		return fmt.Errorf("claude exited with code %d: %s",
			result.ExitCode, strings.TrimSpace(result.Stderr))
	}
	return nil
}
