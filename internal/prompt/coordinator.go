package prompt

import (
	"time"

	"github.com/manav03panchal/dockprompt/internal/logging"
	"github.com/manav03panchal/dockprompt/internal/model"
)

// CoordinatorConfig holds the dependencies of a Coordinator.
type CoordinatorConfig struct {
	Decider        PromptTypeDeciding
	Store          Store
	Onboarding     OnboardingStatus
	Dock           DockCustomization
	DefaultBrowser DefaultBrowserProvider
	Notifications  NotificationPresenter
	Pixels         PixelFiring
	Now            DateFunc

	// DockPromptAvailable is false on distribution channels that cannot
	// offer the dock prompt.
	DockPromptAvailable bool
}

// Coordinator turns decider output into shown prompts and routes the
// user's response to the dock and default-browser collaborators.
// No method returns an error: failures are logged and the affected side
// effect is skipped.
type Coordinator struct {
	decider             PromptTypeDeciding
	store               Store
	onboarding          OnboardingStatus
	dock                DockCustomization
	defaultBrowser      DefaultBrowserProvider
	notifications       NotificationPresenter
	pixels              PixelFiring
	now                 DateFunc
	dockPromptAvailable bool
}

// NewCoordinator creates a prompt coordinator.
func NewCoordinator(cfg CoordinatorConfig) *Coordinator {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Coordinator{
		decider:             cfg.Decider,
		store:               cfg.Store,
		onboarding:          cfg.Onboarding,
		dock:                cfg.Dock,
		defaultBrowser:      cfg.DefaultBrowser,
		notifications:       cfg.Notifications,
		pixels:              cfg.Pixels,
		now:                 cfg.Now,
		dockPromptAvailable: cfg.DockPromptAvailable,
	}
}

// EvaluatePromptEligibility reports which conditions are unsatisfied.
// EligibilityNone means the browser is already default and in the dock.
func (c *Coordinator) EvaluatePromptEligibility() model.PromptEligibility {
	isDefault := c.defaultBrowser.IsDefault()
	isAddedToDock := !c.dockPromptAvailable || c.dock.IsAddedToDock()
	return model.EligibilityFor(isDefault, isAddedToDock)
}

// GetPromptType returns the prompt to show and records the impression.
func (c *Coordinator) GetPromptType() model.PromptType {
	if c.onboarding != nil && !c.onboarding.IsOnboardingCompleted() {
		return model.PromptNone
	}

	eligibility := c.EvaluatePromptEligibility()
	if eligibility == model.EligibilityNone {
		return model.PromptNone
	}

	p := c.decider.PromptType()
	if p == model.PromptNone {
		return model.PromptNone
	}

	now := c.now()
	occurrences := 0
	switch p {
	case model.PromptPopover:
		c.check(c.store.SetPopoverShownDate(now), "record popover shown date", p)
	case model.PromptInactive:
		c.check(c.store.SetInactiveModalShownDate(now), "record inactive modal shown date", p)
	case model.PromptBanner:
		n, err := c.store.IncrementBannerShownOccurrences()
		c.check(err, "increment banner occurrences", p)
		occurrences = n
	}

	if ev, ok := impressionPixel(p, eligibility, occurrences); ok {
		c.fire(ev)
	}

	logging.DebugLog("prompt shown",
		logging.KeyPrompt, string(p),
		logging.KeyEligibility, string(eligibility))
	return p
}

// ConfirmAction performs the eligible actions for the accepted prompt.
func (c *Coordinator) ConfirmAction(p model.PromptType) {
	eligibility := c.EvaluatePromptEligibility()

	if eligibility.NeedsDock() {
		if !c.dock.AddToDock() {
			logging.Warn("failed to add to dock", logging.KeyPrompt, string(p))
		}
	}
	if eligibility.NeedsDefaultBrowser() {
		if err := c.defaultBrowser.PresentDefaultBrowserPrompt(); err != nil {
			logging.Warn("failed to present default browser prompt",
				logging.KeyPrompt, string(p),
				logging.KeyError, err)
		}
	}

	if p == model.PromptBanner {
		c.check(c.store.SetBannerShownDate(c.now()), "record banner shown date", p)
	}

	if ev, ok := confirmPixel(p, eligibility, c.bannerOccurrences()); ok {
		c.fire(ev)
	}
}

// DismissAction records a dismissed prompt. Status updates never notify
// and never fire pixels.
func (c *Coordinator) DismissAction(action model.DismissAction) {
	if !action.IsUserInput() {
		if action.Prompt == model.PromptBanner {
			c.check(c.store.SetBannerShownDate(c.now()), "record banner shown date", action.Prompt)
		}
		return
	}

	eligibility := c.EvaluatePromptEligibility()

	switch action.Prompt {
	case model.PromptPopover:
		c.fire(pixelEvent{PixelPopoverClose, model.FrequencyStandard, contentParams(eligibility)})

	case model.PromptBanner:
		c.check(c.store.SetBannerShownDate(c.now()), "record banner shown date", action.Prompt)
		params := bannerParams(eligibility, c.bannerOccurrences())
		if action.ShouldHidePermanently {
			c.check(c.store.SetBannerPermanentlyDismissed(true), "record banner permanently dismissed", action.Prompt)
			c.fire(pixelEvent{PixelBannerNeverAskAgain, model.FrequencyUnique, params})
		} else {
			c.fire(pixelEvent{PixelBannerClose, model.FrequencyStandard, params})
		}

	case model.PromptInactive:
		if c.notifications != nil {
			c.notifications.ShowInactiveUserFeedback()
		}
		c.fire(pixelEvent{PixelInactiveModalDismissed, model.FrequencyUnique, contentParams(eligibility)})
	}
}

func (c *Coordinator) bannerOccurrences() int {
	state, err := c.store.Load()
	if err != nil {
		logging.Warn("failed to load prompt state", logging.KeyError, err)
		return 0
	}
	return state.BannerShownOccurrences
}

func (c *Coordinator) fire(ev pixelEvent) {
	if c.pixels == nil {
		return
	}
	c.pixels.Fire(ev.name, ev.frequency, ev.params)
}

func (c *Coordinator) check(err error, op string, p model.PromptType) {
	if err != nil {
		logging.Warn("prompt state update failed",
			logging.KeyOperation, op,
			logging.KeyPrompt, string(p),
			logging.KeyError, err)
	}
}
