package model

import (
	"fmt"
	"strings"
)

// PromptEligibility describes which of the default-browser and dock
// conditions is still unsatisfied. EligibilityNone means nothing to prompt for.
type PromptEligibility string

// Eligibility values. The string form is the telemetry contentType value.
const (
	EligibilityNone                  PromptEligibility = ""
	EligibilityAddToDock             PromptEligibility = "add-to-dock"
	EligibilitySetAsDefault          PromptEligibility = "set-as-default"
	EligibilityDefaultBrowserAndDock PromptEligibility = "set-as-default-and-add-to-dock"
)

// EligibilityFor maps the default-browser and dock status to an eligibility.
func EligibilityFor(isDefaultBrowser, isAddedToDock bool) PromptEligibility {
	switch {
	case isDefaultBrowser && isAddedToDock:
		return EligibilityNone
	case isDefaultBrowser:
		return EligibilityAddToDock
	case isAddedToDock:
		return EligibilitySetAsDefault
	default:
		return EligibilityDefaultBrowserAndDock
	}
}

// NeedsDock reports whether the eligibility includes adding to the dock.
func (e PromptEligibility) NeedsDock() bool {
	return e == EligibilityAddToDock || e == EligibilityDefaultBrowserAndDock
}

// NeedsDefaultBrowser reports whether the eligibility includes setting the default browser.
func (e PromptEligibility) NeedsDefaultBrowser() bool {
	return e == EligibilitySetAsDefault || e == EligibilityDefaultBrowserAndDock
}

// Label returns a human-readable description of the eligibility.
func (e PromptEligibility) Label() string {
	switch e {
	case EligibilityAddToDock:
		return "Add to Dock"
	case EligibilitySetAsDefault:
		return "Set as Default Browser"
	case EligibilityDefaultBrowserAndDock:
		return "Set as Default Browser and Add to Dock"
	default:
		return "None"
	}
}

// PromptType is the UI surface used to present a prompt.
// PromptNone means no prompt should be shown.
type PromptType string

// Prompt types. Popover and banner are the active-user surfaces.
const (
	PromptNone     PromptType = ""
	PromptPopover  PromptType = "popover"
	PromptBanner   PromptType = "banner"
	PromptInactive PromptType = "inactive"
)

// Label returns a human-readable name for the prompt surface.
func (p PromptType) Label() string {
	switch p {
	case PromptPopover:
		return "Popover"
	case PromptBanner:
		return "Banner"
	case PromptInactive:
		return "Inactive User Modal"
	default:
		return "None"
	}
}

// ParsePromptType parses a prompt surface name.
func ParsePromptType(s string) (PromptType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "popover":
		return PromptPopover, nil
	case "banner":
		return PromptBanner, nil
	case "inactive", "modal", "inactive-modal":
		return PromptInactive, nil
	default:
		return PromptNone, fmt.Errorf("unknown prompt type %q", s)
	}
}

// DismissKind separates user clicks from passive status changes.
type DismissKind int

const (
	// DismissUserInput is an explicit close by the user.
	DismissUserInput DismissKind = iota
	// DismissStatusUpdate is a passive dismissal, e.g. the browser became
	// the default outside the prompt.
	DismissStatusUpdate
)

// DismissAction describes how a prompt was dismissed.
type DismissAction struct {
	Kind                  DismissKind
	Prompt                PromptType
	ShouldHidePermanently bool
}

// UserInput returns a dismissal triggered by the user.
func UserInput(prompt PromptType, shouldHidePermanently bool) DismissAction {
	return DismissAction{Kind: DismissUserInput, Prompt: prompt, ShouldHidePermanently: shouldHidePermanently}
}

// StatusUpdate returns a passive dismissal.
func StatusUpdate(prompt PromptType) DismissAction {
	return DismissAction{Kind: DismissStatusUpdate, Prompt: prompt}
}

// IsUserInput reports whether the dismissal came from the user.
func (a DismissAction) IsUserInput() bool {
	return a.Kind == DismissUserInput
}
