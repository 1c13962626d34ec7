// Package cli provides user-facing error types.
package cli

import (
	"errors"
	"strings"
)

// PreflightError is returned when a command cannot start in the current
// environment. Hint and NextStep are optional.
type PreflightError struct {
	Message  string
	Hint     string
	NextStep string
}

func (e *PreflightError) Error() string {
	return e.Message
}

func formatError(err error) string {
	var preflight *PreflightError
	if !errors.As(err, &preflight) {
		return "Error: " + err.Error()
	}

	var b strings.Builder
	b.WriteString("Error: ")
	b.WriteString(preflight.Message)
	if preflight.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(preflight.Hint)
	}
	if preflight.NextStep != "" {
		b.WriteString("\nNext: ")
		b.WriteString(preflight.NextStep)
	}
	return b.String()
}
