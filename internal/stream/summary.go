package stream

// maxBashSummaryBytes is the maximum number of command bytes shown in a Bash
// tool summary before truncation.
const maxBashSummaryBytes = 60

// summarizeToolInput derives a short display string from a tool's input
// arguments. Dispatch is by exact tool name; unrecognized tools produce no
// summary. When the designated field is absent or not a string, the summary
// is empty even though the tool name matched.
func summarizeToolInput(name string, input map[string]any) string {
	switch name {
	case "Read", "Edit", "Write":
		return stringField(input, "file_path")
	case "Bash":
		command := stringField(input, "command")
		if len(command) > maxBashSummaryBytes {
			// Truncation is at a raw byte offset and may split a multi-byte
			// rune. Kept for parity with the upstream display format.
			return command[:maxBashSummaryBytes] + "..."
		}
		return command
	case "Glob", "Grep":
		return stringField(input, "pattern")
	case "Task":
		return stringField(input, "description")
	default:
		return ""
	}
}

// stringField returns input[key] when it is a string, otherwise "".
func stringField(input map[string]any, key string) string {
	s, _ := input[key].(string)
	return s
}
