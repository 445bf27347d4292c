package storage

import (
	"time"

	"github.com/manav03panchal/dockprompt/internal/model"
)

// PromptRepo persists prompt history. Each field lives under its own key so
// that recording one surface never rewrites another.
type PromptRepo struct {
	db *DB
}

// NewPromptRepo creates a new prompt repository.
func NewPromptRepo(db *DB) *PromptRepo {
	return &PromptRepo{db: db}
}

// Load reads the full prompt state.
func (r *PromptRepo) Load() (*model.StoredPromptState, error) {
	state := &model.StoredPromptState{}
	var err error

	if state.PopoverShownDate, err = r.epoch(model.KeyPopoverShownDate); err != nil {
		return nil, err
	}
	if state.BannerShownDate, err = r.epoch(model.KeyBannerShownDate); err != nil {
		return nil, err
	}
	if state.InactiveModalShownDate, err = r.epoch(model.KeyInactiveUserModalShownDate); err != nil {
		return nil, err
	}
	if err := r.optional(model.KeyIsBannerPermanentlyDismissed, &state.IsBannerPermanentlyDismissed); err != nil {
		return nil, err
	}
	if err := r.optional(model.KeyBannerShownOccurrences, &state.BannerShownOccurrences); err != nil {
		return nil, err
	}
	return state, nil
}

// SetPopoverShownDate records when the popover was shown.
func (r *PromptRepo) SetPopoverShownDate(t time.Time) error {
	return r.db.SetJSON(model.KeyPopoverShownDate, t.Unix())
}

// SetBannerShownDate records when the banner was last shown.
func (r *PromptRepo) SetBannerShownDate(t time.Time) error {
	return r.db.SetJSON(model.KeyBannerShownDate, t.Unix())
}

// SetInactiveModalShownDate records when the inactive-user modal was shown.
func (r *PromptRepo) SetInactiveModalShownDate(t time.Time) error {
	return r.db.SetJSON(model.KeyInactiveUserModalShownDate, t.Unix())
}

// SetBannerPermanentlyDismissed stores the never-ask-again flag.
func (r *PromptRepo) SetBannerPermanentlyDismissed(dismissed bool) error {
	return r.db.SetJSON(model.KeyIsBannerPermanentlyDismissed, dismissed)
}

// IncrementBannerShownOccurrences bumps the banner counter and returns the
// new value.
func (r *PromptRepo) IncrementBannerShownOccurrences() (int, error) {
	var count int
	if err := r.optional(model.KeyBannerShownOccurrences, &count); err != nil {
		return 0, err
	}
	count++
	if err := r.db.SetJSON(model.KeyBannerShownOccurrences, count); err != nil {
		return 0, err
	}
	return count, nil
}

// Reset removes all prompt state and returns the number of keys removed.
func (r *PromptRepo) Reset() (int, error) {
	return r.db.DeleteByPrefix(model.PrefixPrompt)
}

func (r *PromptRepo) epoch(key string) (*int64, error) {
	var v int64
	err := r.db.GetJSON(key, &v)
	if err != nil {
		if IsErrKeyNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

// optional decodes key into v, leaving v untouched when the key is missing.
func (r *PromptRepo) optional(key string, v any) error {
	err := r.db.GetJSON(key, v)
	if err != nil && !IsErrKeyNotFound(err) {
		return err
	}
	return nil
}
