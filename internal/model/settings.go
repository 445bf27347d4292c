package model

// PromptSettings holds the feature flags and day thresholds that drive prompt
// eligibility (singleton).
type PromptSettings struct {
	Key string `json:"key" yaml:"-"`

	ActiveUserPromptEnabled   bool `json:"active_user_prompt_enabled" yaml:"active_user_prompt_enabled"`
	InactiveUserPromptEnabled bool `json:"inactive_user_prompt_enabled" yaml:"inactive_user_prompt_enabled"`

	FirstPopoverDelayDays                 int `json:"first_popover_delay_days" yaml:"first_popover_delay_days"`
	BannerAfterPopoverDelayDays           int `json:"banner_after_popover_delay_days" yaml:"banner_after_popover_delay_days"`
	BannerRepeatIntervalDays              int `json:"banner_repeat_interval_days" yaml:"banner_repeat_interval_days"`
	InactiveModalNumberOfDaysSinceInstall int `json:"inactive_modal_days_since_install" yaml:"inactive_modal_days_since_install"`
	InactiveModalNumberOfInactiveDays     int `json:"inactive_modal_number_of_inactive_days" yaml:"inactive_modal_number_of_inactive_days"`
}

// DefaultPromptSettings returns the default prompt settings.
func DefaultPromptSettings() *PromptSettings {
	return &PromptSettings{
		Key:                                   KeyPromptSettings,
		ActiveUserPromptEnabled:               true,
		InactiveUserPromptEnabled:             true,
		FirstPopoverDelayDays:                 14,
		BannerAfterPopoverDelayDays:           14,
		BannerRepeatIntervalDays:              14,
		InactiveModalNumberOfDaysSinceInstall: 28,
		InactiveModalNumberOfInactiveDays:     7,
	}
}

// SetKey sets the database key for these settings.
func (s *PromptSettings) SetKey(key string) {
	s.Key = key
}

// GetKey returns the database key for these settings.
func (s *PromptSettings) GetKey() string {
	return s.Key
}

// AnyPromptEnabled reports whether at least one prompt family is enabled.
func (s *PromptSettings) AnyPromptEnabled() bool {
	return s.ActiveUserPromptEnabled || s.InactiveUserPromptEnabled
}

// Clone creates a copy of the settings.
func (s *PromptSettings) Clone() *PromptSettings {
	clone := *s
	return &clone
}

// Validate checks that every threshold is non-negative.
func (s *PromptSettings) Validate() error {
	thresholds := []struct {
		field string
		value int
	}{
		{"first_popover_delay_days", s.FirstPopoverDelayDays},
		{"banner_after_popover_delay_days", s.BannerAfterPopoverDelayDays},
		{"banner_repeat_interval_days", s.BannerRepeatIntervalDays},
		{"inactive_modal_days_since_install", s.InactiveModalNumberOfDaysSinceInstall},
		{"inactive_modal_number_of_inactive_days", s.InactiveModalNumberOfInactiveDays},
	}
	for _, th := range thresholds {
		if th.value < 0 {
			return &ValidationError{Field: th.field, Message: "must be zero or a positive number of days"}
		}
	}
	return nil
}

// ValidationError represents a settings validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
