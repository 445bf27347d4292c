package prompt

import (
	"time"

	"github.com/manav03panchal/dockprompt/internal/logging"
	"github.com/manav03panchal/dockprompt/internal/model"
)

// DeciderConfig holds the dependencies of a PromptTypeDecider.
type DeciderConfig struct {
	Flags       FeatureFlagger
	Store       StateStore
	Activity    UserActivityProvider
	InstallDate InstallDateFunc
	Now         DateFunc
	Calendar    Calendar

	// Active and Inactive replace the built-in sub-deciders when set.
	Active   PromptTypeDeciding
	Inactive PromptTypeDeciding
}

// PromptTypeDecider combines the active- and inactive-user deciders. The
// inactive-user result takes priority.
type PromptTypeDecider struct {
	flags    FeatureFlagger
	store    StateStore
	now      DateFunc
	calendar Calendar
	active   PromptTypeDeciding
	inactive PromptTypeDeciding
}

// NewPromptTypeDecider creates a decider, building the default sub-deciders
// for any not supplied in cfg.
func NewPromptTypeDecider(cfg DeciderConfig) *PromptTypeDecider {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.InstallDate == nil {
		cfg.InstallDate = func() (time.Time, bool) { return time.Time{}, false }
	}
	if cfg.Active == nil {
		cfg.Active = NewActiveUserPromptDecider(cfg.Flags, cfg.Store, cfg.InstallDate, cfg.Now, cfg.Calendar)
	}
	if cfg.Inactive == nil {
		cfg.Inactive = NewInactiveUserPromptDecider(cfg.Flags, cfg.Store, cfg.Activity, cfg.InstallDate, cfg.Now, cfg.Calendar)
	}

	return &PromptTypeDecider{
		flags:    cfg.Flags,
		store:    cfg.Store,
		now:      cfg.Now,
		calendar: cfg.Calendar,
		active:   cfg.Active,
		inactive: cfg.Inactive,
	}
}

// PromptType returns the prompt to show now, or model.PromptNone.
func (d *PromptTypeDecider) PromptType() model.PromptType {
	settings := d.flags.PromptSettings()
	if !settings.AnyPromptEnabled() {
		return model.PromptNone
	}

	state, err := d.store.Load()
	if err != nil {
		logging.Warn("failed to load prompt state", logging.KeyError, err)
		return model.PromptNone
	}

	if state.IsBannerPermanentlyDismissed {
		return model.PromptNone
	}

	if d.shownToday(state) {
		return model.PromptNone
	}

	if p := d.inactive.PromptType(); p != model.PromptNone {
		return p
	}
	return d.active.PromptType()
}

func (d *PromptTypeDecider) shownToday(state *model.StoredPromptState) bool {
	now := d.now()
	for _, shown := range state.ShownDates() {
		if d.calendar.IsSameDay(shown, now) {
			return true
		}
	}
	return false
}

// ActiveUserPromptDecider offers the popover once after install and then
// the banner on a repeating interval.
type ActiveUserPromptDecider struct {
	flags       FeatureFlagger
	store       StateStore
	installDate InstallDateFunc
	now         DateFunc
	calendar    Calendar
}

// NewActiveUserPromptDecider creates the active-user decider.
func NewActiveUserPromptDecider(flags FeatureFlagger, store StateStore, installDate InstallDateFunc, now DateFunc, calendar Calendar) *ActiveUserPromptDecider {
	return &ActiveUserPromptDecider{
		flags:       flags,
		store:       store,
		installDate: installDate,
		now:         now,
		calendar:    calendar,
	}
}

// PromptType returns PromptPopover, PromptBanner or PromptNone.
func (d *ActiveUserPromptDecider) PromptType() model.PromptType {
	settings := d.flags.PromptSettings()
	if !settings.ActiveUserPromptEnabled {
		return model.PromptNone
	}

	state, err := d.store.Load()
	if err != nil {
		logging.Warn("failed to load prompt state", logging.KeyError, err)
		return model.PromptNone
	}

	now := d.now()

	popoverShown, ok := state.PopoverShownAt()
	if !ok {
		installed, ok := d.installDate()
		if ok && d.calendar.DaysBetween(installed, now) >= settings.FirstPopoverDelayDays {
			return model.PromptPopover
		}
		return model.PromptNone
	}

	if state.IsBannerPermanentlyDismissed {
		return model.PromptNone
	}

	if bannerShown, ok := state.BannerShownAt(); ok {
		if d.calendar.DaysBetween(bannerShown, now) >= settings.BannerRepeatIntervalDays {
			return model.PromptBanner
		}
		return model.PromptNone
	}

	if d.calendar.DaysBetween(popoverShown, now) >= settings.BannerAfterPopoverDelayDays {
		return model.PromptBanner
	}
	return model.PromptNone
}

// InactiveUserPromptDecider offers the one-time modal to users returning
// after a long absence.
type InactiveUserPromptDecider struct {
	flags       FeatureFlagger
	store       StateStore
	activity    UserActivityProvider
	installDate InstallDateFunc
	now         DateFunc
	calendar    Calendar
}

// NewInactiveUserPromptDecider creates the inactive-user decider.
func NewInactiveUserPromptDecider(flags FeatureFlagger, store StateStore, activity UserActivityProvider, installDate InstallDateFunc, now DateFunc, calendar Calendar) *InactiveUserPromptDecider {
	return &InactiveUserPromptDecider{
		flags:       flags,
		store:       store,
		activity:    activity,
		installDate: installDate,
		now:         now,
		calendar:    calendar,
	}
}

// PromptType returns PromptInactive or PromptNone.
func (d *InactiveUserPromptDecider) PromptType() model.PromptType {
	settings := d.flags.PromptSettings()
	if !settings.InactiveUserPromptEnabled || d.activity == nil {
		return model.PromptNone
	}

	state, err := d.store.Load()
	if err != nil {
		logging.Warn("failed to load prompt state", logging.KeyError, err)
		return model.PromptNone
	}
	if _, shown := state.InactiveModalShownAt(); shown {
		return model.PromptNone
	}

	installed, ok := d.installDate()
	if !ok || d.calendar.DaysBetween(installed, d.now()) < settings.InactiveModalNumberOfDaysSinceInstall {
		return model.PromptNone
	}

	if d.activity.NumberOfInactiveDays() < settings.InactiveModalNumberOfInactiveDays {
		return model.PromptNone
	}
	return model.PromptInactive
}
