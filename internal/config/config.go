package config

import (
	"fmt"
	"strings"
)

// Config holds the defaults the pathwalk CLI falls back to when the
// corresponding flags are not given.
type Config struct {
	// Style is the default path style: "unix", "windows" or
	// "auto". Auto guesses the style per input path.
	Style string `yaml:"style"`
}

// ValidationError aggregates the problems found in a configuration
// file.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s", strings.Join(e.Problems, "; "))
}

// Validate checks the configuration for values the CLI would not know
// what to do with.
func (c *Config) Validate() error {
	var problems []string
	switch c.Style {
	case "", "unix", "windows", "auto":
	default:
		problems = append(problems, fmt.Sprintf("style: unknown style %q (want unix, windows or auto)", c.Style))
	}
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
