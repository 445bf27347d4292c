package prompt

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/manav03panchal/dockprompt/internal/model"
	"github.com/manav03panchal/dockprompt/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type coordinatorFixture struct {
	coordinator *Coordinator
	decider     *fixedDecider
	store       *memStore
	dock        *fakeDock
	browser     *fakeBrowser
	notifier    *fakeNotifier
	onboarding  *fakeOnboarding
	pixels      *fakePixels
	clock       *clock
}

func newCoordinatorFixture(result model.PromptType) *coordinatorFixture {
	f := &coordinatorFixture{
		decider:    &fixedDecider{result: result},
		store:      &memStore{},
		dock:       &fakeDock{addSucceeds: true},
		browser:    &fakeBrowser{},
		notifier:   &fakeNotifier{},
		onboarding: &fakeOnboarding{completed: true},
		pixels:     &fakePixels{},
		clock:      &clock{t: day(20)},
	}
	f.coordinator = f.build(true)
	return f
}

func (f *coordinatorFixture) build(dockAvailable bool) *Coordinator {
	return NewCoordinator(CoordinatorConfig{
		Decider:             f.decider,
		Store:               f.store,
		Onboarding:          f.onboarding,
		Dock:                f.dock,
		DefaultBrowser:      f.browser,
		Notifications:       f.notifier,
		Pixels:              f.pixels,
		Now:                 f.clock.Now,
		DockPromptAvailable: dockAvailable,
	})
}

// =============================================================================
// Eligibility Tests
// =============================================================================

func TestEvaluatePromptEligibility(t *testing.T) {
	tests := []struct {
		isDefault bool
		inDock    bool
		want      model.PromptEligibility
	}{
		{false, false, model.EligibilityDefaultBrowserAndDock},
		{false, true, model.EligibilitySetAsDefault},
		{true, false, model.EligibilityAddToDock},
		{true, true, model.EligibilityNone},
	}

	for _, tt := range tests {
		t.Run(string(tt.want), func(t *testing.T) {
			f := newCoordinatorFixture(model.PromptPopover)
			f.browser.isDefault = tt.isDefault
			f.dock.added = tt.inDock
			assert.Equal(t, tt.want, f.coordinator.EvaluatePromptEligibility())
		})
	}
}

func TestEvaluatePromptEligibilityDockUnavailable(t *testing.T) {
	f := newCoordinatorFixture(model.PromptPopover)
	c := f.build(false)

	assert.Equal(t, model.EligibilitySetAsDefault, c.EvaluatePromptEligibility())

	f.browser.isDefault = true
	assert.Equal(t, model.EligibilityNone, c.EvaluatePromptEligibility())
}

// =============================================================================
// GetPromptType Tests
// =============================================================================

func TestGetPromptTypeOnboardingIncomplete(t *testing.T) {
	f := newCoordinatorFixture(model.PromptPopover)
	f.onboarding.completed = false

	assert.Equal(t, model.PromptNone, f.coordinator.GetPromptType())
	assert.Zero(t, f.decider.calls)
	assert.Empty(t, f.pixels.fired)

	f.onboarding.completed = true
	assert.Equal(t, model.PromptPopover, f.coordinator.GetPromptType())
}

func TestGetPromptTypeAlreadySatisfied(t *testing.T) {
	f := newCoordinatorFixture(model.PromptBanner)
	f.browser.isDefault = true
	f.dock.added = true

	assert.Equal(t, model.PromptNone, f.coordinator.GetPromptType())
	assert.Zero(t, f.decider.calls)
	assert.Empty(t, f.pixels.fired)
}

func TestGetPromptTypeNoneFromDecider(t *testing.T) {
	f := newCoordinatorFixture(model.PromptNone)

	assert.Equal(t, model.PromptNone, f.coordinator.GetPromptType())
	assert.Empty(t, f.pixels.fired)
	assert.Equal(t, model.StoredPromptState{}, f.store.state)
}

func TestGetPromptTypePopoverRecordsShownDate(t *testing.T) {
	f := newCoordinatorFixture(model.PromptPopover)

	require.Equal(t, model.PromptPopover, f.coordinator.GetPromptType())

	shown, ok := f.store.state.PopoverShownAt()
	require.True(t, ok)
	assert.Equal(t, f.clock.Now().Unix(), shown.Unix())
	assert.Nil(t, f.store.state.BannerShownDate)

	require.Len(t, f.pixels.fired, 1)
	assert.Equal(t, firedPixel{
		name:      PixelPopoverImpression,
		frequency: model.FrequencyStandard,
		params:    map[string]string{ParamContentType: string(model.EligibilityDefaultBrowserAndDock)},
	}, f.pixels.fired[0])
}

func TestGetPromptTypeBannerIncrementsOccurrences(t *testing.T) {
	f := newCoordinatorFixture(model.PromptBanner)
	f.browser.isDefault = true

	require.Equal(t, model.PromptBanner, f.coordinator.GetPromptType())
	require.Equal(t, model.PromptBanner, f.coordinator.GetPromptType())

	want := model.StoredPromptState{BannerShownOccurrences: 2}
	if diff := cmp.Diff(want, f.store.state); diff != "" {
		t.Errorf("prompt state mismatch (-want +got):\n%s", diff)
	}

	require.Len(t, f.pixels.fired, 2)
	assert.Equal(t, PixelBannerImpression, f.pixels.fired[1].name)
	assert.Equal(t, map[string]string{
		ParamContentType:          string(model.EligibilityAddToDock),
		ParamNumberOfBannersShown: "2",
	}, f.pixels.fired[1].params)
}

func TestGetPromptTypeInactiveRecordsShownDate(t *testing.T) {
	f := newCoordinatorFixture(model.PromptInactive)

	require.Equal(t, model.PromptInactive, f.coordinator.GetPromptType())

	_, ok := f.store.state.InactiveModalShownAt()
	assert.True(t, ok)
	require.Len(t, f.pixels.fired, 1)
	assert.Equal(t, PixelInactiveModalImpression, f.pixels.fired[0].name)
	assert.Equal(t, model.FrequencyUnique, f.pixels.fired[0].frequency)
}

func TestGetPromptTypeWithNilPixels(t *testing.T) {
	f := newCoordinatorFixture(model.PromptPopover)
	c := NewCoordinator(CoordinatorConfig{
		Decider:             f.decider,
		Store:               f.store,
		Dock:                f.dock,
		DefaultBrowser:      f.browser,
		Now:                 f.clock.Now,
		DockPromptAvailable: true,
	})

	assert.Equal(t, model.PromptPopover, c.GetPromptType())
}

// =============================================================================
// ConfirmAction Tests
// =============================================================================

func TestConfirmActionPerformsEligibleActions(t *testing.T) {
	tests := []struct {
		name            string
		isDefault       bool
		inDock          bool
		wantDockCalls   int
		wantPromptCalls int
	}{
		{"both", false, false, 1, 1},
		{"default_only", false, true, 0, 1},
		{"dock_only", true, false, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCoordinatorFixture(model.PromptPopover)
			f.browser.isDefault = tt.isDefault
			f.dock.added = tt.inDock

			f.coordinator.ConfirmAction(model.PromptPopover)

			assert.Equal(t, tt.wantDockCalls, f.dock.addCalls)
			assert.Equal(t, tt.wantPromptCalls, f.browser.promptCalls)
		})
	}
}

func TestConfirmActionBannerRecordsShownDate(t *testing.T) {
	f := newCoordinatorFixture(model.PromptBanner)
	f.store.state.BannerShownOccurrences = 12

	f.coordinator.ConfirmAction(model.PromptBanner)

	shown, ok := f.store.state.BannerShownAt()
	require.True(t, ok)
	assert.Equal(t, f.clock.Now().Unix(), shown.Unix())

	require.Len(t, f.pixels.fired, 1)
	assert.Equal(t, PixelBannerConfirm, f.pixels.fired[0].name)
	assert.Equal(t, "10+", f.pixels.fired[0].params[ParamNumberOfBannersShown])
}

func TestConfirmActionOtherPromptsLeaveBannerDate(t *testing.T) {
	for _, p := range []model.PromptType{model.PromptPopover, model.PromptInactive} {
		t.Run(string(p), func(t *testing.T) {
			f := newCoordinatorFixture(p)
			f.coordinator.ConfirmAction(p)
			assert.Nil(t, f.store.state.BannerShownDate)
		})
	}
}

func TestConfirmActionPixels(t *testing.T) {
	f := newCoordinatorFixture(model.PromptPopover)

	f.coordinator.ConfirmAction(model.PromptPopover)
	f.coordinator.ConfirmAction(model.PromptInactive)

	assert.Equal(t, []string{PixelPopoverConfirm, PixelInactiveModalConfirm}, f.pixels.names())
	assert.Equal(t, model.FrequencyUnique, f.pixels.fired[1].frequency)
}

func TestConfirmActionBrowserPromptFailure(t *testing.T) {
	f := newCoordinatorFixture(model.PromptPopover)
	f.browser.promptErr = errBoom
	f.dock.addSucceeds = false

	f.coordinator.ConfirmAction(model.PromptPopover)

	assert.Equal(t, 1, f.dock.addCalls)
	assert.Equal(t, 1, f.browser.promptCalls)
	assert.Equal(t, []string{PixelPopoverConfirm}, f.pixels.names())
}

// =============================================================================
// DismissAction Tests
// =============================================================================

func TestDismissActionStatusUpdateIsSilent(t *testing.T) {
	for _, p := range []model.PromptType{model.PromptPopover, model.PromptBanner, model.PromptInactive} {
		t.Run(string(p), func(t *testing.T) {
			f := newCoordinatorFixture(p)

			f.coordinator.DismissAction(model.StatusUpdate(p))

			assert.Zero(t, f.notifier.calls)
			assert.Empty(t, f.pixels.fired)
			assert.False(t, f.store.state.IsBannerPermanentlyDismissed)
		})
	}
}

func TestDismissActionStatusUpdateBannerRecordsDate(t *testing.T) {
	f := newCoordinatorFixture(model.PromptBanner)

	f.coordinator.DismissAction(model.StatusUpdate(model.PromptBanner))

	_, ok := f.store.state.BannerShownAt()
	assert.True(t, ok)
}

func TestDismissActionPopover(t *testing.T) {
	f := newCoordinatorFixture(model.PromptPopover)

	f.coordinator.DismissAction(model.UserInput(model.PromptPopover, false))

	assert.Equal(t, []string{PixelPopoverClose}, f.pixels.names())
	assert.Nil(t, f.store.state.BannerShownDate)
	assert.Zero(t, f.notifier.calls)
}

func TestDismissActionBanner(t *testing.T) {
	tests := []struct {
		name          string
		hide          bool
		wantPixel     string
		wantFrequency model.PixelFrequency
	}{
		{"close", false, PixelBannerClose, model.FrequencyStandard},
		{"never_ask_again", true, PixelBannerNeverAskAgain, model.FrequencyUnique},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCoordinatorFixture(model.PromptBanner)
			f.store.state.BannerShownOccurrences = 3

			f.coordinator.DismissAction(model.UserInput(model.PromptBanner, tt.hide))

			_, ok := f.store.state.BannerShownAt()
			assert.True(t, ok)
			assert.Equal(t, tt.hide, f.store.state.IsBannerPermanentlyDismissed)

			require.Len(t, f.pixels.fired, 1)
			assert.Equal(t, tt.wantPixel, f.pixels.fired[0].name)
			assert.Equal(t, tt.wantFrequency, f.pixels.fired[0].frequency)
			assert.Equal(t, "3", f.pixels.fired[0].params[ParamNumberOfBannersShown])
		})
	}
}

func TestDismissActionInactiveShowsFeedback(t *testing.T) {
	f := newCoordinatorFixture(model.PromptInactive)

	f.coordinator.DismissAction(model.UserInput(model.PromptInactive, false))

	assert.Equal(t, 1, f.notifier.calls)
	require.Len(t, f.pixels.fired, 1)
	assert.Equal(t, PixelInactiveModalDismissed, f.pixels.fired[0].name)
	assert.Equal(t, model.FrequencyUnique, f.pixels.fired[0].frequency)
}

// =============================================================================
// Persistence over Badger
// =============================================================================

func TestCoordinatorBannerLifecycleOverBadger(t *testing.T) {
	db := setupTestDB(t)
	repo := storage.NewPromptRepo(db)
	f := newCoordinatorFixture(model.PromptBanner)
	c := NewCoordinator(CoordinatorConfig{
		Decider:             f.decider,
		Store:               repo,
		Onboarding:          f.onboarding,
		Dock:                f.dock,
		DefaultBrowser:      f.browser,
		Notifications:       f.notifier,
		Pixels:              f.pixels,
		Now:                 f.clock.Now,
		DockPromptAvailable: true,
	})

	require.Equal(t, model.PromptBanner, c.GetPromptType())

	state, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, 1, state.BannerShownOccurrences)
	assert.Nil(t, state.BannerShownDate)

	f.clock.Set(f.clock.Now().Add(time.Minute))
	c.DismissAction(model.UserInput(model.PromptBanner, true))

	state, err = repo.Load()
	require.NoError(t, err)
	assert.True(t, state.IsBannerPermanentlyDismissed)
	shown, ok := state.BannerShownAt()
	require.True(t, ok)
	assert.Equal(t, f.clock.Now().Unix(), shown.Unix())
}
