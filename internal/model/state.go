package model

import "time"

// StoredPromptState is the persisted prompt history.
// Dates are epoch seconds; nil means never shown.
type StoredPromptState struct {
	PopoverShownDate             *int64 `json:"popoverShownDate,omitempty"`
	BannerShownDate              *int64 `json:"bannerShownDate,omitempty"`
	InactiveModalShownDate       *int64 `json:"inactiveUserModalShownDate,omitempty"`
	IsBannerPermanentlyDismissed bool   `json:"isBannerPermanentlyDismissed"`
	BannerShownOccurrences       int    `json:"bannerShownOccurrences"`
}

// PopoverShownAt returns the popover shown date, if any.
func (s *StoredPromptState) PopoverShownAt() (time.Time, bool) {
	return epochTime(s.PopoverShownDate)
}

// BannerShownAt returns the last banner shown date, if any.
func (s *StoredPromptState) BannerShownAt() (time.Time, bool) {
	return epochTime(s.BannerShownDate)
}

// InactiveModalShownAt returns the inactive modal shown date, if any.
func (s *StoredPromptState) InactiveModalShownAt() (time.Time, bool) {
	return epochTime(s.InactiveModalShownDate)
}

// ShownDates returns every recorded shown date.
func (s *StoredPromptState) ShownDates() []time.Time {
	var dates []time.Time
	for _, d := range []*int64{s.PopoverShownDate, s.BannerShownDate, s.InactiveModalShownDate} {
		if t, ok := epochTime(d); ok {
			dates = append(dates, t)
		}
	}
	return dates
}

// EpochSeconds returns a pointer to t's Unix time.
func EpochSeconds(t time.Time) *int64 {
	v := t.Unix()
	return &v
}

func epochTime(v *int64) (time.Time, bool) {
	if v == nil {
		return time.Time{}, false
	}
	return time.Unix(*v, 0), true
}
