package parser

import (
	"fmt"
	"strings"

	"github.com/manav03panchal/dockprompt/internal/errors"
)

// ParseError represents an input parsing error with helpful suggestions.
type ParseError struct {
	Input      string
	Field      string
	Message    string
	Examples   []string
	Suggestion string
	Sentinel   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s '%s': %s", e.Field, e.Input, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Sentinel
}

// FormatWithExamples returns the error message with example suggestions.
func (e *ParseError) FormatWithExamples() string {
	var sb strings.Builder
	sb.WriteString(e.Error())

	if len(e.Examples) > 0 {
		sb.WriteString("\n\nValid examples:\n")
		for _, ex := range e.Examples {
			sb.WriteString("  - ")
			sb.WriteString(ex)
			sb.WriteString("\n")
		}
	}

	if e.Suggestion != "" {
		sb.WriteString("\n")
		sb.WriteString(e.Suggestion)
	}

	return sb.String()
}

// TimestampExamples provides example timestamp formats.
var TimestampExamples = []string{
	"now",
	"+14d",
	"+2w",
	"in 30 days",
	"2025-06-01",
	"next monday",
}

// NewTimestampError creates a timestamp parse error with standard examples.
func NewTimestampError(input string) *ParseError {
	return &ParseError{
		Input:      input,
		Field:      "timestamp",
		Message:    "could not parse time",
		Examples:   TimestampExamples,
		Suggestion: "Use a day offset like '+14d' or a date like '2025-06-01'.",
		Sentinel:   errors.ErrInvalidTimestamp,
	}
}

// NewSettingValueError creates a settings value parse error.
func NewSettingValueError(key, input, kind string) *ParseError {
	examples := []string{"0", "7", "14"}
	if kind == "bool" {
		examples = []string{"true", "false", "on", "off"}
	}
	return &ParseError{
		Input:    input,
		Field:    key,
		Message:  "expected " + kind,
		Examples: examples,
		Sentinel: errors.ErrInvalidSetting,
	}
}

// ToUserError converts a ParseError to a UserError for consistent handling.
func (e *ParseError) ToUserError() *errors.UserError {
	suggestion := e.Suggestion
	if len(e.Examples) > 0 && suggestion == "" {
		suggestion = fmt.Sprintf("Try: %s", strings.Join(e.Examples[:min(3, len(e.Examples))], ", "))
	}

	return errors.NewUserErrorWithField(e.Field, e.Input, e.Message, suggestion, e)
}
