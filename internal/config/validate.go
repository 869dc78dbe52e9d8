package config

import (
	"errors"
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrInvalidConfig is the sentinel wrapped by all validation failures.
var ErrInvalidConfig = errors.New("invalid configuration")

// Validate checks the configuration for values that would fail at runtime.
func (c *Config) Validate() error {
	if c.Claude.Command == "" {
		return fmt.Errorf("%w: claude.command must not be empty", ErrInvalidConfig)
	}
	if pat := c.Display.PathFilter; pat != "" && !doublestar.ValidatePattern(pat) {
		return fmt.Errorf("%w: display.path_filter %q is not a valid glob", ErrInvalidConfig, pat)
	}
	return nil
}
