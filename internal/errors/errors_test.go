package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// =============================================================================
// UserError Tests
// =============================================================================

func TestNewUserError(t *testing.T) {
	err := NewUserError("invalid input", "try again")
	assert.NotNil(t, err)
	assert.Equal(t, "invalid input", err.Message)
	assert.Equal(t, "try again", err.Suggestion)
	assert.Nil(t, err.Unwrap())
}

func TestNewUserErrorWithField(t *testing.T) {
	err := NewUserErrorWithField("prompt", "toast", "unknown prompt", "use popover", ErrUnknownPrompt)
	assert.Equal(t, "prompt", err.Field)
	assert.Equal(t, "toast", err.Value)
	assert.Equal(t, "unknown prompt", err.Message)
	assert.ErrorIs(t, err, ErrUnknownPrompt)
}

func TestUserErrorError(t *testing.T) {
	t.Run("without_value", func(t *testing.T) {
		err := NewUserError("something went wrong", "")
		assert.Equal(t, "something went wrong", err.Error())
	})

	t.Run("with_value", func(t *testing.T) {
		err := NewUserErrorWithField("key", "popover-colour", "unknown setting", "", nil)
		assert.Equal(t, "unknown setting: 'popover-colour'", err.Error())
	})
}

func TestIsUserError(t *testing.T) {
	assert.True(t, IsUserError(NewUserError("x", "")))
	assert.True(t, IsUserError(fmt.Errorf("wrapped: %w", NewUserError("x", ""))))
	assert.False(t, IsUserError(NewSystemError("x", nil)))
	assert.False(t, IsUserError(errors.New("plain")))
	assert.False(t, IsUserError(nil))
}

func TestAsUserError(t *testing.T) {
	original := NewUserError("bad", "fix")
	ue, ok := AsUserError(fmt.Errorf("ctx: %w", original))
	assert.True(t, ok)
	assert.Same(t, original, ue)

	_, ok = AsUserError(errors.New("plain"))
	assert.False(t, ok)
}

// =============================================================================
// SystemError Tests
// =============================================================================

func TestSystemErrorError(t *testing.T) {
	cause := errors.New("disk full")

	assert.Equal(t, "write failed: disk full", NewSystemError("write failed", cause).Error())
	assert.Equal(t, "write failed during save: disk full",
		NewSystemErrorWithOp("save", "write failed", cause).Error())
	assert.Equal(t, "write failed", NewSystemError("write failed", nil).Error())
}

func TestSystemErrorUnwrap(t *testing.T) {
	err := NewSystemErrorWithOp("exec", "xdg-settings failed", ErrCommandFailed)
	assert.ErrorIs(t, err, ErrCommandFailed)
	assert.True(t, IsSystemError(fmt.Errorf("outer: %w", err)))
	assert.False(t, IsSystemError(NewUserError("x", "")))
}

// =============================================================================
// Wrapping Tests
// =============================================================================

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))

	err := Wrap(ErrNoPromptDue, "check")
	assert.Equal(t, "check: no prompt is due", err.Error())
	assert.True(t, Is(err, ErrNoPromptDue))
}

func TestWrapf(t *testing.T) {
	assert.Nil(t, Wrapf(nil, "context %d", 1))

	err := Wrapf(ErrInvalidTimestamp, "parse %q", "soon")
	assert.Equal(t, `parse "soon": invalid timestamp`, err.Error())
	assert.ErrorIs(t, err, ErrInvalidTimestamp)
}

// =============================================================================
// Suggestion Tests
// =============================================================================

func TestSentinelErrorsHaveSuggestions(t *testing.T) {
	for _, err := range []error{
		ErrUnknownPrompt,
		ErrUnknownSetting,
		ErrInvalidSetting,
		ErrInvalidTimestamp,
		ErrNoPromptDue,
		ErrDatabaseLocked,
		ErrCommandFailed,
		ErrNotificationFailed,
	} {
		t.Run(err.Error(), func(t *testing.T) {
			assert.NotEmpty(t, GetSuggestion(err))
		})
	}
}

func TestGetSuggestion(t *testing.T) {
	assert.Empty(t, GetSuggestion(nil))
	assert.Empty(t, GetSuggestion(errors.New("unrelated")))

	// A UserError's own suggestion wins over the sentinel's.
	ue := NewUserErrorWithField("prompt", "x", "bad", "custom hint", ErrUnknownPrompt)
	assert.Equal(t, "custom hint", GetSuggestion(ue))

	wrapped := fmt.Errorf("confirm: %w", ErrUnknownPrompt)
	assert.Equal(t, Suggestions[ErrUnknownPrompt], GetSuggestion(wrapped))

	badger := errors.New("Cannot acquire directory lock on \"/tmp/db\". Another process is using this Badger database.")
	assert.Equal(t, Suggestions[ErrDatabaseLocked], GetSuggestion(badger))
}

func TestFormatError(t *testing.T) {
	assert.Equal(t, "plain", FormatError(errors.New("plain")))
	assert.Equal(t, "bad\nfix it", FormatError(NewUserError("bad", "fix it")))
}
