package prompt

import (
	"errors"
	"testing"
	"time"

	"github.com/manav03panchal/dockprompt/internal/model"
	"github.com/manav03panchal/dockprompt/internal/storage"
	"github.com/stretchr/testify/require"
)

var utc = Calendar{Location: time.UTC}

// day returns noon UTC, n days after 2025-03-01.
func day(n int) time.Time {
	return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

type clock struct {
	t time.Time
}

func (c *clock) Now() time.Time { return c.t }

func (c *clock) Set(t time.Time) { c.t = t }

func setupTestDB(t *testing.T) *storage.DB {
	db, err := storage.Open(storage.Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

// memStore is an in-memory Store.
type memStore struct {
	state   model.StoredPromptState
	loadErr error
}

func (s *memStore) Load() (*model.StoredPromptState, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	st := s.state
	return &st, nil
}

func (s *memStore) SetPopoverShownDate(t time.Time) error {
	s.state.PopoverShownDate = model.EpochSeconds(t)
	return nil
}

func (s *memStore) SetBannerShownDate(t time.Time) error {
	s.state.BannerShownDate = model.EpochSeconds(t)
	return nil
}

func (s *memStore) SetInactiveModalShownDate(t time.Time) error {
	s.state.InactiveModalShownDate = model.EpochSeconds(t)
	return nil
}

func (s *memStore) SetBannerPermanentlyDismissed(dismissed bool) error {
	s.state.IsBannerPermanentlyDismissed = dismissed
	return nil
}

func (s *memStore) IncrementBannerShownOccurrences() (int, error) {
	s.state.BannerShownOccurrences++
	return s.state.BannerShownOccurrences, nil
}

type fixedDecider struct {
	result model.PromptType
	calls  int
}

func (d *fixedDecider) PromptType() model.PromptType {
	d.calls++
	return d.result
}

type fakeActivity struct {
	inactiveDays int
}

func (a fakeActivity) NumberOfInactiveDays() int { return a.inactiveDays }

type fakeDock struct {
	added       bool
	addCalls    int
	addSucceeds bool
}

func (d *fakeDock) IsAddedToDock() bool { return d.added }

func (d *fakeDock) AddToDock() bool {
	d.addCalls++
	if d.addSucceeds {
		d.added = true
	}
	return d.addSucceeds
}

type fakeBrowser struct {
	isDefault   bool
	promptCalls int
	promptErr   error
}

func (b *fakeBrowser) IsDefault() bool { return b.isDefault }

func (b *fakeBrowser) PresentDefaultBrowserPrompt() error {
	b.promptCalls++
	return b.promptErr
}

type fakeNotifier struct {
	calls int
}

func (n *fakeNotifier) ShowInactiveUserFeedback() { n.calls++ }

type fakeOnboarding struct {
	completed bool
}

func (o *fakeOnboarding) IsOnboardingCompleted() bool { return o.completed }

type firedPixel struct {
	name      string
	frequency model.PixelFrequency
	params    map[string]string
}

type fakePixels struct {
	fired []firedPixel
}

func (p *fakePixels) Fire(name string, frequency model.PixelFrequency, params map[string]string) {
	p.fired = append(p.fired, firedPixel{name, frequency, params})
}

func (p *fakePixels) names() []string {
	var names []string
	for _, f := range p.fired {
		names = append(names, f.name)
	}
	return names
}

func installedOn(t time.Time) InstallDateFunc {
	return func() (time.Time, bool) { return t, true }
}

func notInstalled() (time.Time, bool) { return time.Time{}, false }

var errBoom = errors.New("boom")
