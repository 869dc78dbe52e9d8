// Package cli wires cctail's cobra command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/cctail/cctail/internal/logging"
)

// Global flag values accessible to all subcommands.
var (
	flagVerbose bool
	flagQuiet   bool
	flagConfig  string
	flagNoColor bool
)

// envForFlag maps persistent boolean flags to their environment fallbacks,
// checked when the flag was not set on the command line.
var envForFlag = map[string][]string{
	"verbose":  {"CCTAIL_VERBOSE"},
	"quiet":    {"CCTAIL_QUIET"},
	"no-color": {"CCTAIL_NO_COLOR", "NO_COLOR"},
}

// rootCmd is the base command. With no subcommand it renders a stream-json
// file (or stdin) to the terminal.
var rootCmd = &cobra.Command{
	Use:   "cctail [file]",
	Short: "Live viewer for Claude Code stream-json output",
	Long: `cctail decodes the newline-delimited JSON event stream emitted by the
Claude CLI (--output-format stream-json) and renders it for humans:
streamed text as it arrives, tool invocations as one-line notices, and
the final result as a status line.

Reads from stdin by default, or from a file given as the first argument.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runView,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		applyEnvFallbacks(cmd.Root().PersistentFlags())

		jsonFormat := os.Getenv("CCTAIL_LOG_FORMAT") == "json"
		logging.Setup(flagVerbose, flagQuiet, jsonFormat)

		if flagNoColor {
			lipgloss.SetColorProfile(termenv.Ascii)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable verbose (debug) output (env: CCTAIL_VERBOSE)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress all output except errors (env: CCTAIL_QUIET)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to cctail.toml config file")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output (env: CCTAIL_NO_COLOR, NO_COLOR)")
}

// applyEnvFallbacks sets boolean flags from the environment when they were
// not given explicitly on the command line.
func applyEnvFallbacks(flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			return
		}
		for _, env := range envForFlag[f.Name] {
			if os.Getenv(env) != "" {
				_ = f.Value.Set("true")
				return
			}
		}
	})
}

// NewRootCmd exposes the command tree for doc and completion generators.
func NewRootCmd() *cobra.Command {
	return rootCmd
}

// Execute runs the root command and returns the exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
