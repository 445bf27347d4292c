// Package model defines the domain models for dockprompt.
package model

// Model is the interface that all database models must implement.
type Model interface {
	// SetKey sets the database key for this model.
	SetKey(key string)
	// GetKey returns the database key for this model.
	GetKey() string
}

// Database keys and prefixes.
const (
	PrefixPrompt = "prompt:"
	PrefixPixel  = "pixel:"

	KeyPopoverShownDate             = PrefixPrompt + "popoverShownDate"
	KeyBannerShownDate              = PrefixPrompt + "bannerShownDate"
	KeyInactiveUserModalShownDate   = PrefixPrompt + "inactiveUserModalShownDate"
	KeyIsBannerPermanentlyDismissed = PrefixPrompt + "isBannerPermanentlyDismissed"
	KeyBannerShownOccurrences       = PrefixPrompt + "bannerShownOccurrences"

	KeyUserActivity        = "activity:user"
	KeyInstallDate         = "install:date"
	KeyOnboardingCompleted = "onboarding:completed"
	KeyDockAdded           = "dock:added"
	KeyDefaultBrowser      = "browser:default"
	KeyPromptSettings      = "settings:prompt"

	// PrefixPixelFired marks the last time a frequency-limited pixel fired.
	PrefixPixelFired = "pixelfired:"
)
