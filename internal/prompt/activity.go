package prompt

import (
	"github.com/manav03panchal/dockprompt/internal/logging"
	"github.com/manav03panchal/dockprompt/internal/model"
)

// ActivityStore persists the user activity record.
type ActivityStore interface {
	Get() (*model.PromptUserActivity, error)
	Update(activity *model.PromptUserActivity) error
}

// UserActivityManager records active days and derives the number of
// consecutive inactive days between the two most recent ones.
type UserActivityManager struct {
	store    ActivityStore
	now      DateFunc
	calendar Calendar
}

// NewUserActivityManager creates an activity manager.
func NewUserActivityManager(store ActivityStore, now DateFunc, calendar Calendar) *UserActivityManager {
	return &UserActivityManager{store: store, now: now, calendar: calendar}
}

// RecordActivity marks today as an active day. Repeated calls on the same
// day are no-ops.
func (m *UserActivityManager) RecordActivity() {
	activity, err := m.store.Get()
	if err != nil {
		logging.Warn("failed to load user activity", logging.KeyError, err)
		return
	}

	now := m.now()
	if activity.LastActiveDate != nil && m.calendar.IsSameDay(*activity.LastActiveDate, now) {
		return
	}

	activity.Record(m.calendar.StartOfDay(now))
	if err := m.store.Update(activity); err != nil {
		logging.Warn("failed to save user activity", logging.KeyError, err)
	}
}

// NumberOfInactiveDays returns the whole days strictly between the second
// last and the last active day, or 0 without two recorded days.
func (m *UserActivityManager) NumberOfInactiveDays() int {
	activity, err := m.store.Get()
	if err != nil {
		logging.Warn("failed to load user activity", logging.KeyError, err)
		return 0
	}
	return InactiveDays(activity, m.calendar)
}

// Activity returns the stored activity record.
func (m *UserActivityManager) Activity() (*model.PromptUserActivity, error) {
	return m.store.Get()
}

// InactiveDays computes the inactive gap recorded in activity.
func InactiveDays(activity *model.PromptUserActivity, calendar Calendar) int {
	if activity == nil || activity.LastActiveDate == nil || activity.SecondLastActiveDate == nil {
		return 0
	}
	gap := calendar.DaysBetween(*activity.SecondLastActiveDate, *activity.LastActiveDate) - 1
	if gap < 0 {
		return 0
	}
	return gap
}
