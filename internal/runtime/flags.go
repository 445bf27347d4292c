package runtime

import (
	"github.com/manav03panchal/dockprompt/internal/config"
	"github.com/manav03panchal/dockprompt/internal/logging"
	"github.com/manav03panchal/dockprompt/internal/model"
	"github.com/manav03panchal/dockprompt/internal/storage"
)

// SettingsFlagger reads stored prompt settings and overlays the YAML flags
// file on every call, so edits to either take effect without a restart.
type SettingsFlagger struct {
	repo      *storage.SettingsRepo
	flagsFile string
}

// NewSettingsFlagger creates a flagger over repo and the flags file at path.
func NewSettingsFlagger(repo *storage.SettingsRepo, path string) *SettingsFlagger {
	return &SettingsFlagger{repo: repo, flagsFile: path}
}

// Stored returns the stored settings without the flags file overlay.
func (f *SettingsFlagger) Stored() (*model.PromptSettings, error) {
	return f.repo.Get()
}

// PromptSettings returns the effective settings. Read failures fall back
// to defaults and an invalid flags file is ignored.
func (f *SettingsFlagger) PromptSettings() *model.PromptSettings {
	base, err := f.repo.Get()
	if err != nil {
		logging.Warn("failed to load prompt settings", logging.KeyError, err)
		base = model.DefaultPromptSettings()
	}

	ff, err := config.LoadFlagsFile(f.flagsFile)
	if err != nil {
		logging.Warn("failed to read flags file", "path", f.flagsFile, logging.KeyError, err)
		return base
	}
	if ff == nil {
		return base
	}

	merged, err := ff.Apply(base)
	if err != nil {
		logging.Warn("ignoring invalid flags file", "path", f.flagsFile, logging.KeyError, err)
		return base
	}
	return merged
}
