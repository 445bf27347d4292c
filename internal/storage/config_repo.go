package storage

import (
	"time"

	"github.com/manav03panchal/dockprompt/internal/model"
)

// SettingsRepo provides operations for the PromptSettings singleton.
type SettingsRepo struct {
	db *DB
}

// NewSettingsRepo creates a new settings repository.
func NewSettingsRepo(db *DB) *SettingsRepo {
	return &SettingsRepo{db: db}
}

// Get retrieves the prompt settings, returning defaults if not set.
func (r *SettingsRepo) Get() (*model.PromptSettings, error) {
	settings := &model.PromptSettings{}
	err := r.db.Get(model.KeyPromptSettings, settings)
	if err == nil {
		return settings, nil
	}

	if !IsErrKeyNotFound(err) {
		return nil, err
	}

	// Defaults are not persisted until explicitly set.
	return model.DefaultPromptSettings(), nil
}

// Set validates and stores the prompt settings.
func (r *SettingsRepo) Set(settings *model.PromptSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	settings.SetKey(model.KeyPromptSettings)
	return r.db.Set(settings)
}

// FlagRepo stores single boolean and date values that describe the
// installation: onboarding, dock and default-browser status, install date.
type FlagRepo struct {
	db *DB
}

// NewFlagRepo creates a new flag repository.
func NewFlagRepo(db *DB) *FlagRepo {
	return &FlagRepo{db: db}
}

// GetBool returns the flag stored under key, false if unset.
func (r *FlagRepo) GetBool(key string) (bool, error) {
	var v bool
	err := r.db.GetJSON(key, &v)
	if err != nil {
		if IsErrKeyNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return v, nil
}

// SetBool stores a flag under key.
func (r *FlagRepo) SetBool(key string, v bool) error {
	return r.db.SetJSON(key, v)
}

// InstallDate returns the recorded install date.
func (r *FlagRepo) InstallDate() (time.Time, bool, error) {
	var epoch int64
	err := r.db.GetJSON(model.KeyInstallDate, &epoch)
	if err != nil {
		if IsErrKeyNotFound(err) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, err
	}
	return time.Unix(epoch, 0), true, nil
}

// SetInstallDate overwrites the install date.
func (r *FlagRepo) SetInstallDate(t time.Time) error {
	return r.db.SetJSON(model.KeyInstallDate, t.Unix())
}

// EnsureInstallDate records now as the install date on first run and
// returns the stored value.
func (r *FlagRepo) EnsureInstallDate(now time.Time) (time.Time, error) {
	installed, ok, err := r.InstallDate()
	if err != nil {
		return time.Time{}, err
	}
	if ok {
		return installed, nil
	}
	if err := r.SetInstallDate(now); err != nil {
		return time.Time{}, err
	}
	return time.Unix(now.Unix(), 0), nil
}
