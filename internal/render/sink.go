// Package render writes decoded stream records to a terminal in a compact,
// human-readable form: streamed text verbatim, tool invocations as one-line
// notices, and the final result as a styled status line.
package render

import (
	"fmt"
	"io"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/cctail/cctail/internal/stream"
)

// Options configures a Sink.
type Options struct {
	// Styles controls terminal styling. The zero value is unstyled; use
	// DefaultStyles for the standard palette.
	Styles Styles

	// ShowSystem also prints a muted marker line for system and user
	// events, which are skipped by default.
	ShowSystem bool

	// PathFilter is a doublestar glob. When set, tool notices for Read,
	// Edit, and Write whose file-path summary does not match are
	// suppressed. Streamed text is never filtered.
	PathFilter string
}

// Sink renders one record at a time to an underlying writer. It is stateless
// across records apart from the writer itself.
type Sink struct {
	w    io.Writer
	opts Options
}

// NewSink creates a sink writing to w.
func NewSink(w io.Writer, opts Options) *Sink {
	return &Sink{w: w, opts: opts}
}

// Render writes one record. Streamed text is written verbatim with no
// transformation. Records that carry nothing to display are silently skipped.
func (s *Sink) Render(rec stream.Record) error {
	switch rec.Kind {
	case stream.KindStreamEvent:
		if rec.Text == "" {
			return nil
		}
		_, err := io.WriteString(s.w, rec.Text)
		return err

	case stream.KindAssistant:
		if rec.ToolName == "" || !s.pathAllowed(rec) {
			return nil
		}
		notice := s.opts.Styles.Tool.Render("⏺ " + rec.ToolName)
		if rec.ToolInputSummary != "" {
			notice += " " + s.opts.Styles.ToolArg.Render(rec.ToolInputSummary)
		}
		_, err := fmt.Fprintf(s.w, "\n%s\n", notice)
		return err

	case stream.KindResult:
		style := s.opts.Styles.Success
		marker := "✓"
		if rec.IsError {
			style = s.opts.Styles.Error
			marker = "✗"
		}
		line := marker
		if rec.Result != "" {
			line += " " + rec.Result
		}
		_, err := fmt.Fprintf(s.w, "\n%s\n", style.Render(line))
		return err

	case stream.KindSystem, stream.KindUser:
		if !s.opts.ShowSystem {
			return nil
		}
		_, err := fmt.Fprintf(s.w, "%s\n", s.opts.Styles.Muted.Render("· "+string(rec.Kind)))
		return err

	default:
		// Unknown records carry nothing to display.
		return nil
	}
}

// pathAllowed applies the PathFilter glob to file-backed tool notices.
// Tools without a file-path summary always pass.
func (s *Sink) pathAllowed(rec stream.Record) bool {
	if s.opts.PathFilter == "" {
		return true
	}
	switch rec.ToolName {
	case "Read", "Edit", "Write":
	default:
		return true
	}
	if rec.ToolInputSummary == "" {
		return true
	}
	ok, err := doublestar.Match(s.opts.PathFilter, rec.ToolInputSummary)
	if err != nil {
		// Invalid patterns are rejected at config validation; fail open here.
		return true
	}
	return ok
}
