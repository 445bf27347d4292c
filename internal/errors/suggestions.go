package errors

import (
	"errors"
	"strings"
)

// Suggestions maps common errors to helpful suggestions.
var Suggestions = map[error]string{
	ErrUnknownPrompt:      "Use one of: popover, banner, inactive.",
	ErrUnknownSetting:     "Use 'dockprompt settings show' to list setting names.",
	ErrInvalidSetting:     "Day thresholds must be whole numbers >= 0; flags take true or false.",
	ErrInvalidTimestamp:   "Try formats like 'in 10 days', '2026-01-15', or 'yesterday'.",
	ErrNoPromptDue:        "Use 'dockprompt status' to see thresholds and shown dates.",
	ErrDatabaseLocked:     "Another dockprompt process (e.g. 'dockprompt watch') holds the database.",
	ErrCommandFailed:      "Check that xdg-utils is installed and the desktop file name is correct.",
	ErrNotificationFailed: "Check DOCKPROMPT_NOTIFY_WEBHOOK and your network connection.",
}

// GetSuggestion returns a suggestion for an error, if available.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	if ue, ok := AsUserError(err); ok && ue.Suggestion != "" {
		return ue.Suggestion
	}

	for knownErr, suggestion := range Suggestions {
		if errors.Is(err, knownErr) {
			return suggestion
		}
	}

	// Badger reports a held directory lock as a plain error string.
	if strings.Contains(err.Error(), "Cannot acquire directory lock") {
		return Suggestions[ErrDatabaseLocked]
	}

	return ""
}

// FormatError formats an error with optional suggestion.
func FormatError(err error) string {
	msg := err.Error()
	if suggestion := GetSuggestion(err); suggestion != "" {
		msg += "\n" + suggestion
	}
	return msg
}
