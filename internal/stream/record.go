// Package stream decodes the newline-delimited JSON ("stream-json") event
// protocol emitted by the Claude CLI into records suitable for live display.
//
// The decoder is deliberately fail-soft: the upstream process may emit
// partial lines, non-JSON diagnostics, or drift its schema between releases,
// and none of that should halt a consuming pipeline. Anything that cannot be
// classified decodes to a record of KindUnknown with no fields populated.
package stream

// Kind classifies a decoded stream-json line by its top-level "type" tag.
type Kind string

const (
	// KindSystem is emitted once at session start with init metadata.
	KindSystem Kind = "system"
	// KindAssistant carries an assistant message (text or tool calls).
	KindAssistant Kind = "assistant"
	// KindUser carries tool results sent back to the model.
	KindUser Kind = "user"
	// KindStreamEvent carries an incremental content-block update.
	KindStreamEvent Kind = "stream_event"
	// KindResult is emitted once at session end with final status.
	KindResult Kind = "result"
	// KindUnknown covers malformed lines and unrecognized type tags.
	KindUnknown Kind = "unknown"
)

// Record is the result of parsing one stream-json line. It carries only the
// fields relevant to live rendering; which fields are populated depends on
// Kind. Optional string fields are empty when not populated. A Record holds
// independent string copies and never references the input line.
type Record struct {
	Kind Kind

	// Text is the streamed text fragment of a content-block delta.
	// Populated only for KindStreamEvent.
	Text string

	// ToolName is the name of the tool invoked by the first content block
	// of an assistant message. Populated only for KindAssistant.
	ToolName string

	// ToolInputSummary is a short display string derived from the tool's
	// input arguments. Populated only when ToolName is set and a summary
	// rule matched.
	ToolInputSummary string

	// Result is the final result string of a session.
	// Populated only for KindResult.
	Result string

	// IsError reports whether the session ended in error.
	// Meaningful only for KindResult; defaults to false.
	IsError bool
}
