package prompt

import (
	"time"

	"github.com/manav03panchal/dockprompt/internal/model"
)

// PromptTypeDeciding produces a candidate prompt, or model.PromptNone.
type PromptTypeDeciding interface {
	PromptType() model.PromptType
}

// FeatureFlagger supplies the current feature flags and thresholds.
type FeatureFlagger interface {
	PromptSettings() *model.PromptSettings
}

// StateStore reads persisted prompt history.
type StateStore interface {
	Load() (*model.StoredPromptState, error)
}

// Store reads and writes persisted prompt history.
type Store interface {
	StateStore
	SetPopoverShownDate(t time.Time) error
	SetBannerShownDate(t time.Time) error
	SetInactiveModalShownDate(t time.Time) error
	SetBannerPermanentlyDismissed(dismissed bool) error
	IncrementBannerShownOccurrences() (int, error)
}

// UserActivityProvider reports how long the user was away.
type UserActivityProvider interface {
	NumberOfInactiveDays() int
}

// DockCustomization checks and changes whether the browser is in the dock.
type DockCustomization interface {
	IsAddedToDock() bool
	AddToDock() bool
}

// DefaultBrowserProvider checks and requests default-browser status.
type DefaultBrowserProvider interface {
	IsDefault() bool
	PresentDefaultBrowserPrompt() error
}

// NotificationPresenter shows system notifications on behalf of prompts.
type NotificationPresenter interface {
	ShowInactiveUserFeedback()
}

// OnboardingStatus reports whether first-run onboarding has finished.
type OnboardingStatus interface {
	IsOnboardingCompleted() bool
}

// PixelFiring sends fire-and-forget telemetry events.
type PixelFiring interface {
	Fire(name string, frequency model.PixelFrequency, params map[string]string)
}

// InstallDateFunc returns the install date, or false when unknown.
type InstallDateFunc func() (time.Time, bool)

// DateFunc returns the current time.
type DateFunc func() time.Time

// StaticFlags is a FeatureFlagger over a fixed settings value.
type StaticFlags struct {
	Settings *model.PromptSettings
}

// PromptSettings returns the wrapped settings, or defaults when nil.
func (f StaticFlags) PromptSettings() *model.PromptSettings {
	if f.Settings == nil {
		return model.DefaultPromptSettings()
	}
	return f.Settings
}
