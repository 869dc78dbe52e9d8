package render

import "github.com/charmbracelet/lipgloss"

// Color palette shared by the plain sink and the TUI. Adaptive colors pick a
// readable variant for light and dark terminal backgrounds.
var (
	// ColorTool highlights tool invocation notices (blue).
	ColorTool = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#60A5FA"}

	// ColorSuccess marks successful session results (green).
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#16A34A", Dark: "#4ADE80"}

	// ColorError marks failed session results (red).
	ColorError = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"}

	// ColorMuted is a subdued foreground for secondary detail text.
	ColorMuted = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
)

// Styles holds the pre-built lipgloss styles used when rendering records.
type Styles struct {
	// Tool renders the tool name in a tool notice.
	Tool lipgloss.Style
	// ToolArg renders the tool input summary next to the tool name.
	ToolArg lipgloss.Style
	// Success renders a non-error result line.
	Success lipgloss.Style
	// Error renders an error result line.
	Error lipgloss.Style
	// Muted renders low-priority markers (system/user events).
	Muted lipgloss.Style
}

// DefaultStyles returns the standard style set.
func DefaultStyles() Styles {
	return Styles{
		Tool:    lipgloss.NewStyle().Bold(true).Foreground(ColorTool),
		ToolArg: lipgloss.NewStyle().Foreground(ColorMuted),
		Success: lipgloss.NewStyle().Bold(true).Foreground(ColorSuccess),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(ColorError),
		Muted:   lipgloss.NewStyle().Foreground(ColorMuted),
	}
}
