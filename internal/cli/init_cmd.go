package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/cctail/cctail/internal/config"
)

var initFlagForce bool

// initCmd implements "cctail init": an interactive form that writes a
// cctail.toml into the current directory.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a cctail.toml interactively",
	Long: `Create a cctail.toml in the current directory. Prompts for the Claude
CLI command, model, and display options. An existing file is preserved
unless --force is supplied.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initFlagForce, "force", false, "Overwrite an existing cctail.toml")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	destDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}
	path := filepath.Join(destDir, config.ConfigFileName)

	if _, statErr := os.Stat(path); statErr == nil && !initFlagForce {
		return fmt.Errorf("%s already exists in %s; use --force to overwrite", config.ConfigFileName, destDir)
	}

	cfg := newDefaultsForm()
	if err := cfg.form.Run(); err != nil {
		return fmt.Errorf("running init form: %w", err)
	}

	if err := cfg.config.Validate(); err != nil {
		return err
	}
	if err := config.WriteFile(path, cfg.config); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Wrote %s\n", path)
	fmt.Fprintln(os.Stderr, "Next: pipe a session through `cctail`, or start one with `cctail run -p \"...\"`")
	return nil
}

// initForm pairs the config being edited with the huh form bound to it.
type initForm struct {
	config *config.Config
	form   *huh.Form
}

// newDefaultsForm builds the interactive init form over a defaults config.
func newDefaultsForm() *initForm {
	cfg := config.NewDefaults()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Claude CLI command").
				Description("Executable used by `cctail run`.").
				Value(&cfg.Claude.Command),
			huh.NewInput().
				Title("Model").
				Description("Passed via --model; leave empty for the CLI default.").
				Value(&cfg.Claude.Model),
			huh.NewInput().
				Title("Allowed tools").
				Description("Comma-separated allow-list; leave empty for no restriction.").
				Value(&cfg.Claude.AllowedTools),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Show system/user events?").
				Value(&cfg.Display.ShowSystem),
			huh.NewConfirm().
				Title("Drop consecutive duplicate lines?").
				Value(&cfg.Display.Dedupe),
		),
	)

	return &initForm{config: cfg, form: form}
}
