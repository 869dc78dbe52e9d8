// Package claude spawns the Claude CLI with stream-json output and decodes
// its stdout into records as the process runs.
package claude

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/cctail/cctail/internal/config"
	"github.com/cctail/cctail/internal/stream"
)

// clientLogger is the minimal logging interface required by Client.
// It accepts a message and structured key-value pairs.
type clientLogger interface {
	Debug(msg interface{}, keyvals ...interface{})
}

// maxDryRunPromptLen is the maximum number of bytes shown inline in the
// DryRunCommand output before the prompt is truncated with "...".
const maxDryRunPromptLen = 120

// Client executes prompts via the Claude CLI and streams the decoded output.
type Client struct {
	cfg    config.ClaudeConfig
	dedupe bool
	logger clientLogger
}

// NewClient creates a Client for the given configuration. The logger may be
// nil, in which case debug messages are silently discarded. When dedupe is
// true, consecutive byte-identical stdout lines are dropped before decoding.
func NewClient(cfg config.ClaudeConfig, dedupe bool, logger clientLogger) *Client {
	if cfg.Command == "" {
		cfg.Command = "claude"
	}
	return &Client{cfg: cfg, dedupe: dedupe, logger: logger}
}

// CheckPrerequisites verifies that the Claude CLI executable can be found on
// the system PATH.
func (c *Client) CheckPrerequisites() error {
	if _, err := exec.LookPath(c.cfg.Command); err != nil {
		return fmt.Errorf("claude CLI not found (looked for %q): %w", c.cfg.Command, err)
	}
	return nil
}

// Run executes the prompt and returns the captured stderr, exit code, and
// duration. Stdout is decoded as stream-json in real time; each record is
// sent to opts.Records (when non-nil). Sends block, so a live consumer must
// drain the channel for the run to make progress. The ctx cancels the whole
// process group.
func (c *Client) Run(ctx context.Context, opts RunOpts) (*RunResult, error) {
	start := time.Now()

	cmd := c.buildCommand(ctx, opts)

	if c.logger != nil {
		c.logger.Debug("running claude",
			"command", cmd.Path,
			"args", cmd.Args,
			"work_dir", cmd.Dir,
		)
	}

	stdoutPipe, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("creating stdout pipe: %w", err)
	}
	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("creating stderr pipe: %w", err)
	}

	var stderrBuf bytes.Buffer

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if opts.Records == nil {
			_, err := io.Copy(io.Discard, stdoutPipe)
			return err
		}
		var decOpts []stream.Option
		if c.dedupe {
			decOpts = append(decOpts, stream.WithDedupe())
		}
		dec := stream.NewDecoder(stdoutPipe, decOpts...)
		for {
			rec, err := dec.Next()
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return err
			}
			select {
			case <-gctx.Done():
				return gctx.Err()
			case opts.Records <- rec:
			}
		}
	})
	g.Go(func() error {
		_, err := stderrBuf.ReadFrom(stderrPipe)
		return err
	})

	if err := cmd.Start(); err != nil {
		// Go closes the write ends of the pipes on Start failure, so the
		// readers see EOF and the group drains.
		_ = g.Wait()
		return nil, fmt.Errorf("starting %s: %w", c.cfg.Command, err)
	}

	// Drain all output before calling Wait.
	readErr := g.Wait()
	waitErr := cmd.Wait()
	duration := time.Since(start)

	exitCode := 0
	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			exitCode = exitErr.ExitCode()
		} else {
			return nil, fmt.Errorf("waiting for %s: %w", c.cfg.Command, waitErr)
		}
	}
	if readErr != nil && !errors.Is(readErr, os.ErrClosed) {
		return nil, fmt.Errorf("reading %s output: %w", c.cfg.Command, readErr)
	}

	return &RunResult{
		Stderr:   stderrBuf.String(),
		ExitCode: exitCode,
		Duration: duration,
	}, nil
}

// DryRunCommand returns the command string that would be executed without
// actually running it. Long prompts are truncated in the output.
func (c *Client) DryRunCommand(opts RunOpts) string {
	if len(opts.Prompt) > maxDryRunPromptLen {
		opts.Prompt = opts.Prompt[:maxDryRunPromptLen] + "..."
	}
	return c.cfg.Command + " " + strings.Join(c.buildArgs(opts), " ")
}

// buildCommand constructs the *exec.Cmd for the given RunOpts.
func (c *Client) buildCommand(ctx context.Context, opts RunOpts) *exec.Cmd {
	cmd := exec.CommandContext(ctx, c.cfg.Command, c.buildArgs(opts)...)

	if opts.WorkDir != "" {
		cmd.Dir = opts.WorkDir
	}
	cmd.Env = append(os.Environ(), opts.Env...)

	setProcGroup(cmd)
	return cmd
}

// buildArgs constructs the argument slice for the Claude CLI. RunOpts values
// take precedence over the configured defaults.
func (c *Client) buildArgs(opts RunOpts) []string {
	args := []string{"--print", "--verbose", "--output-format", "stream-json"}

	model := opts.Model
	if model == "" {
		model = c.cfg.Model
	}
	if model != "" {
		args = append(args, "--model", model)
	}

	allowedTools := opts.AllowedTools
	if allowedTools == "" {
		allowedTools = c.cfg.AllowedTools
	}
	if allowedTools != "" {
		args = append(args, "--allowedTools", allowedTools)
	}

	if opts.Prompt != "" {
		args = append(args, "-p", opts.Prompt)
	}

	return args
}
