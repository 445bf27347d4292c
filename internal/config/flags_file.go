package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/manav03panchal/dockprompt/internal/model"
)

// FlagsFile is the YAML overlay for prompt settings. Only keys present in
// the file override the stored values.
type FlagsFile struct {
	ActiveUserPromptEnabled               *bool `yaml:"active_user_prompt_enabled"`
	InactiveUserPromptEnabled             *bool `yaml:"inactive_user_prompt_enabled"`
	FirstPopoverDelayDays                 *int  `yaml:"first_popover_delay_days"`
	BannerAfterPopoverDelayDays           *int  `yaml:"banner_after_popover_delay_days"`
	BannerRepeatIntervalDays              *int  `yaml:"banner_repeat_interval_days"`
	InactiveModalNumberOfDaysSinceInstall *int  `yaml:"inactive_modal_days_since_install"`
	InactiveModalNumberOfInactiveDays     *int  `yaml:"inactive_modal_number_of_inactive_days"`
}

// ParseFlagsFile decodes a YAML flags document.
func ParseFlagsFile(data []byte) (*FlagsFile, error) {
	ff := &FlagsFile{}
	if err := yaml.Unmarshal(data, ff); err != nil {
		return nil, fmt.Errorf("parse flags file: %w", err)
	}
	return ff, nil
}

// LoadFlagsFile reads the flags file at path. It returns nil when the file
// does not exist.
func LoadFlagsFile(path string) (*FlagsFile, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return ParseFlagsFile(data)
}

// Apply returns a copy of base with the file's values applied and validated.
func (f *FlagsFile) Apply(base *model.PromptSettings) (*model.PromptSettings, error) {
	out := base.Clone()
	if f == nil {
		return out, nil
	}

	if f.ActiveUserPromptEnabled != nil {
		out.ActiveUserPromptEnabled = *f.ActiveUserPromptEnabled
	}
	if f.InactiveUserPromptEnabled != nil {
		out.InactiveUserPromptEnabled = *f.InactiveUserPromptEnabled
	}
	if f.FirstPopoverDelayDays != nil {
		out.FirstPopoverDelayDays = *f.FirstPopoverDelayDays
	}
	if f.BannerAfterPopoverDelayDays != nil {
		out.BannerAfterPopoverDelayDays = *f.BannerAfterPopoverDelayDays
	}
	if f.BannerRepeatIntervalDays != nil {
		out.BannerRepeatIntervalDays = *f.BannerRepeatIntervalDays
	}
	if f.InactiveModalNumberOfDaysSinceInstall != nil {
		out.InactiveModalNumberOfDaysSinceInstall = *f.InactiveModalNumberOfDaysSinceInstall
	}
	if f.InactiveModalNumberOfInactiveDays != nil {
		out.InactiveModalNumberOfInactiveDays = *f.InactiveModalNumberOfInactiveDays
	}

	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

// Marshal encodes settings in the flags file format.
func Marshal(settings *model.PromptSettings) ([]byte, error) {
	return yaml.Marshal(settings)
}
