package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validation errors.
var (
	ErrInvalidOutput = errors.New("invalid output mode")
	ErrInvalidIndent = errors.New("invalid indent")
)

var validOutputs = []string{"auto", "text", "plain", "markdown", "md"}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !isValidOutput(c.Output) {
		return fmt.Errorf("%w: %q (want one of auto, text, plain, markdown)", ErrInvalidOutput, c.Output)
	}

	// Banner lines are prefixed with the indent; anything visible would
	// break the frame alignment.
	if strings.TrimLeft(c.Indent, " \t") != "" {
		return fmt.Errorf("%w: %q may only contain spaces and tabs", ErrInvalidIndent, c.Indent)
	}
	return nil
}

func isValidOutput(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, v := range validOutputs {
		if s == v {
			return true
		}
	}
	return false
}
