package config

// NewDefaults returns a Config populated with all default values.
func NewDefaults() *Config {
	return &Config{
		Claude: ClaudeConfig{
			Command: "claude",
		},
	}
}
