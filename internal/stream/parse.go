package stream

import "encoding/json"

// ParseLine decodes one stream-json line into a Record. It never fails:
// malformed JSON, a non-object root, a missing or mistyped "type" tag, or an
// unrecognized tag all yield a Record of KindUnknown with no fields set.
//
// Navigation into the payload is defensive rather than schema-typed: every
// nesting level is type-checked manually, and each field extraction is
// all-or-nothing. Extra or mistyped fields anywhere in the source JSON are
// silently tolerated.
//
// ParseLine is pure and reentrant; it may be called concurrently on
// independent lines.
func ParseLine(line []byte) Record {
	var root any
	if err := json.Unmarshal(line, &root); err != nil {
		return Record{Kind: KindUnknown}
	}
	obj, ok := root.(map[string]any)
	if !ok {
		return Record{Kind: KindUnknown}
	}
	typ, ok := obj["type"].(string)
	if !ok {
		return Record{Kind: KindUnknown}
	}

	// Exact match only: no case folding, no trimming.
	switch typ {
	case "stream_event":
		return parseStreamEvent(obj)
	case "assistant":
		return parseAssistant(obj)
	case "user":
		return Record{Kind: KindUser}
	case "system":
		return Record{Kind: KindSystem}
	case "result":
		return parseResult(obj)
	default:
		return Record{Kind: KindUnknown}
	}
}

// parseStreamEvent extracts the text fragment of a content-block delta:
// event (object) -> type == "content_block_delta" -> delta (object) ->
// text (string). Any failed step leaves Text empty; other delta kinds are
// not handled.
func parseStreamEvent(obj map[string]any) Record {
	rec := Record{Kind: KindStreamEvent}

	event, ok := obj["event"].(map[string]any)
	if !ok {
		return rec
	}
	if typ, ok := event["type"].(string); !ok || typ != "content_block_delta" {
		return rec
	}
	delta, ok := event["delta"].(map[string]any)
	if !ok {
		return rec
	}
	if text, ok := delta["text"].(string); ok {
		rec.Text = text
	}
	return rec
}

// parseAssistant inspects only the first content block of the message. When
// that block is a tool_use, its name is extracted and, if the input is an
// object, summarized for display. Deeper content blocks are never visited.
func parseAssistant(obj map[string]any) Record {
	rec := Record{Kind: KindAssistant}

	message, ok := obj["message"].(map[string]any)
	if !ok {
		return rec
	}
	content, ok := message["content"].([]any)
	if !ok || len(content) == 0 {
		return rec
	}
	block, ok := content[0].(map[string]any)
	if !ok {
		return rec
	}
	if typ, ok := block["type"].(string); !ok || typ != "tool_use" {
		return rec
	}
	name, ok := block["name"].(string)
	if !ok {
		return rec
	}
	rec.ToolName = name

	if input, ok := block["input"].(map[string]any); ok {
		rec.ToolInputSummary = summarizeToolInput(name, input)
	}
	return rec
}

// parseResult reads the optional result string and is_error flag. No other
// fields of a result object are inspected.
func parseResult(obj map[string]any) Record {
	rec := Record{Kind: KindResult}

	if result, ok := obj["result"].(string); ok {
		rec.Result = result
	}
	if isError, ok := obj["is_error"].(bool); ok {
		rec.IsError = isError
	}
	return rec
}
