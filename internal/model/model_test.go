package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Eligibility Tests
// =============================================================================

func TestEligibilityFor(t *testing.T) {
	tests := []struct {
		name      string
		isDefault bool
		inDock    bool
		want      PromptEligibility
	}{
		{"both", true, true, EligibilityNone},
		{"default_only", true, false, EligibilityAddToDock},
		{"dock_only", false, true, EligibilitySetAsDefault},
		{"neither", false, false, EligibilityDefaultBrowserAndDock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EligibilityFor(tt.isDefault, tt.inDock))
		})
	}
}

func TestEligibilityNeeds(t *testing.T) {
	assert.True(t, EligibilityAddToDock.NeedsDock())
	assert.False(t, EligibilityAddToDock.NeedsDefaultBrowser())
	assert.True(t, EligibilitySetAsDefault.NeedsDefaultBrowser())
	assert.False(t, EligibilitySetAsDefault.NeedsDock())
	assert.True(t, EligibilityDefaultBrowserAndDock.NeedsDock())
	assert.True(t, EligibilityDefaultBrowserAndDock.NeedsDefaultBrowser())
	assert.False(t, EligibilityNone.NeedsDock())
	assert.False(t, EligibilityNone.NeedsDefaultBrowser())
}

func TestEligibilityContentType(t *testing.T) {
	assert.Equal(t, "add-to-dock", string(EligibilityAddToDock))
	assert.Equal(t, "set-as-default", string(EligibilitySetAsDefault))
	assert.Equal(t, "set-as-default-and-add-to-dock", string(EligibilityDefaultBrowserAndDock))
	assert.Equal(t, "None", EligibilityNone.Label())
}

// =============================================================================
// Prompt Type Tests
// =============================================================================

func TestParsePromptType(t *testing.T) {
	tests := []struct {
		input   string
		want    PromptType
		wantErr bool
	}{
		{"popover", PromptPopover, false},
		{" Banner ", PromptBanner, false},
		{"inactive", PromptInactive, false},
		{"modal", PromptInactive, false},
		{"inactive-modal", PromptInactive, false},
		{"toast", PromptNone, true},
		{"", PromptNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePromptType(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPromptTypeLabel(t *testing.T) {
	assert.Equal(t, "Popover", PromptPopover.Label())
	assert.Equal(t, "Inactive User Modal", PromptInactive.Label())
}

func TestDismissAction(t *testing.T) {
	a := UserInput(PromptBanner, true)
	assert.True(t, a.IsUserInput())
	assert.True(t, a.ShouldHidePermanently)
	assert.Equal(t, PromptBanner, a.Prompt)

	s := StatusUpdate(PromptPopover)
	assert.False(t, s.IsUserInput())
	assert.False(t, s.ShouldHidePermanently)
}

// =============================================================================
// Stored State Tests
// =============================================================================

func TestStoredPromptStateDates(t *testing.T) {
	var s StoredPromptState
	_, ok := s.PopoverShownAt()
	assert.False(t, ok)
	assert.Empty(t, s.ShownDates())

	at := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	s.PopoverShownDate = EpochSeconds(at)
	s.InactiveModalShownDate = EpochSeconds(at.AddDate(0, 0, 2))

	got, ok := s.PopoverShownAt()
	require.True(t, ok)
	assert.Equal(t, at.Unix(), got.Unix())
	_, ok = s.BannerShownAt()
	assert.False(t, ok)
	assert.Len(t, s.ShownDates(), 2)
}

func TestUserActivityRecord(t *testing.T) {
	a := NewPromptUserActivity()
	assert.Equal(t, KeyUserActivity, a.GetKey())

	day1 := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 3)

	a.Record(day1)
	require.NotNil(t, a.LastActiveDate)
	assert.Nil(t, a.SecondLastActiveDate)

	a.Record(day2)
	assert.Equal(t, day2, *a.LastActiveDate)
	assert.Equal(t, day1, *a.SecondLastActiveDate)
}

// =============================================================================
// Settings Tests
// =============================================================================

func TestDefaultPromptSettings(t *testing.T) {
	s := DefaultPromptSettings()

	assert.True(t, s.ActiveUserPromptEnabled)
	assert.True(t, s.InactiveUserPromptEnabled)
	assert.Equal(t, 14, s.FirstPopoverDelayDays)
	assert.Equal(t, 14, s.BannerAfterPopoverDelayDays)
	assert.Equal(t, 14, s.BannerRepeatIntervalDays)
	assert.Equal(t, 28, s.InactiveModalNumberOfDaysSinceInstall)
	assert.Equal(t, 7, s.InactiveModalNumberOfInactiveDays)
	assert.NoError(t, s.Validate())
}

func TestPromptSettingsClone(t *testing.T) {
	s := DefaultPromptSettings()
	c := s.Clone()
	c.FirstPopoverDelayDays = 1
	assert.Equal(t, 14, s.FirstPopoverDelayDays)
}

func TestPromptSettingsValidate(t *testing.T) {
	s := DefaultPromptSettings()
	s.BannerRepeatIntervalDays = -1

	err := s.Validate()
	require.Error(t, err)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "banner_repeat_interval_days", ve.Field)

	s.BannerRepeatIntervalDays = 0
	assert.NoError(t, s.Validate())
}

func TestAnyPromptEnabled(t *testing.T) {
	s := DefaultPromptSettings()
	s.ActiveUserPromptEnabled = false
	assert.True(t, s.AnyPromptEnabled())
	s.InactiveUserPromptEnabled = false
	assert.False(t, s.AnyPromptEnabled())
}

// =============================================================================
// Pixel and Notification Tests
// =============================================================================

func TestPixelRecordKey(t *testing.T) {
	p := &PixelRecord{}
	p.SetKey(GeneratePixelKey("abc"))
	assert.Equal(t, "pixel:abc", p.GetKey())
	assert.Equal(t, "abc", p.ID())
}

func TestNotification(t *testing.T) {
	at := time.Now()
	n := NewNotification(NotifyPromptDue, "Title", "Message", at).WithField("prompt", "banner")

	assert.Equal(t, "banner", n.Fields["prompt"])
	assert.Equal(t, at, n.Timestamp)
	assert.Equal(t, "Browser Prompt", n.TypeLabel())

	empty := &Notification{Type: "other"}
	empty.WithField("k", "v")
	assert.Equal(t, "v", empty.Fields["k"])
	assert.Equal(t, "Notification", empty.TypeLabel())
}
