// Package config loads cctail's TOML configuration (cctail.toml).
package config

// Config is the top-level configuration structure mapping to cctail.toml.
type Config struct {
	Claude  ClaudeConfig  `toml:"claude"`
	Display DisplayConfig `toml:"display"`
}

// ClaudeConfig maps to the [claude] section. It configures how the Claude
// CLI is invoked by `cctail run`.
type ClaudeConfig struct {
	// Command is the CLI executable name (default "claude").
	Command string `toml:"command"`

	// Model is the model identifier passed via --model. Empty uses the
	// CLI's own default.
	Model string `toml:"model"`

	// AllowedTools is a comma-separated list passed via --allowedTools.
	AllowedTools string `toml:"allowed_tools"`
}

// DisplayConfig maps to the [display] section. It controls how decoded
// records are rendered.
type DisplayConfig struct {
	// ShowSystem also prints marker lines for system and user events.
	ShowSystem bool `toml:"show_system"`

	// PathFilter is a doublestar glob; tool notices for Read/Edit/Write
	// with a non-matching file path are suppressed.
	PathFilter string `toml:"path_filter"`

	// Dedupe drops lines that are byte-identical to the preceding line.
	Dedupe bool `toml:"dedupe"`
}
