package storage

import (
	"github.com/manav03panchal/dockprompt/internal/model"
)

// ActivityRepo provides operations for the PromptUserActivity singleton.
type ActivityRepo struct {
	db *DB
}

// NewActivityRepo creates a new activity repository.
func NewActivityRepo(db *DB) *ActivityRepo {
	return &ActivityRepo{db: db}
}

// Get retrieves the activity record, returning an empty one if none exists.
func (r *ActivityRepo) Get() (*model.PromptUserActivity, error) {
	activity := &model.PromptUserActivity{}
	err := r.db.Get(model.KeyUserActivity, activity)
	if err == nil {
		return activity, nil
	}
	if !IsErrKeyNotFound(err) {
		return nil, err
	}
	return model.NewPromptUserActivity(), nil
}

// Update stores the activity record.
func (r *ActivityRepo) Update(activity *model.PromptUserActivity) error {
	activity.SetKey(model.KeyUserActivity)
	return r.db.Set(activity)
}
