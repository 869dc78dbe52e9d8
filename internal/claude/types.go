package claude

import (
	"time"

	"github.com/cctail/cctail/internal/stream"
)

// RunOpts specifies options for a single Claude CLI invocation.
type RunOpts struct {
	// Prompt is the user prompt passed to the CLI.
	Prompt string

	// Model overrides the configured model when non-empty.
	Model string

	// AllowedTools overrides the configured allow-list when non-empty.
	AllowedTools string

	// WorkDir is the working directory for the subprocess.
	WorkDir string

	// Env is appended to the inherited environment.
	Env []string

	// Records receives decoded records from the CLI's stdout in real time.
	// The channel is owned by the caller and is NOT closed by Run; the
	// caller closes it after Run returns. Nil disables decoding (stdout is
	// discarded).
	Records chan<- stream.Record
}

// RunResult captures the outcome of a Claude CLI invocation. Stdout is not
// retained; it is consumed line-by-line by the decoder as the process runs.
type RunResult struct {
	Stderr   string
	ExitCode int
	Duration time.Duration
}

// Success reports whether the CLI exited with code 0.
func (r *RunResult) Success() bool {
	return r.ExitCode == 0
}
