package parser

import (
	"sort"
	"strconv"
	"strings"

	"github.com/manav03panchal/dockprompt/internal/errors"
	"github.com/manav03panchal/dockprompt/internal/model"
)

type settingField struct {
	flag *bool
	days *int
}

func settingFields(s *model.PromptSettings) map[string]settingField {
	return map[string]settingField{
		"active_user_prompt_enabled":             {flag: &s.ActiveUserPromptEnabled},
		"inactive_user_prompt_enabled":           {flag: &s.InactiveUserPromptEnabled},
		"first_popover_delay_days":               {days: &s.FirstPopoverDelayDays},
		"banner_after_popover_delay_days":        {days: &s.BannerAfterPopoverDelayDays},
		"banner_repeat_interval_days":            {days: &s.BannerRepeatIntervalDays},
		"inactive_modal_days_since_install":      {days: &s.InactiveModalNumberOfDaysSinceInstall},
		"inactive_modal_number_of_inactive_days": {days: &s.InactiveModalNumberOfInactiveDays},
	}
}

// SettingKeys returns the settable keys in sorted order.
func SettingKeys() []string {
	fields := settingFields(&model.PromptSettings{})
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ApplySetting parses value and assigns it to the named setting. Keys may
// use dashes or underscores.
func ApplySetting(s *model.PromptSettings, key, value string) error {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), "-", "_")
	field, ok := settingFields(s)[normalized]
	if !ok {
		return errors.NewUserErrorWithField("setting", key, "unknown setting",
			"Valid settings: "+strings.Join(SettingKeys(), ", "), errors.ErrUnknownSetting)
	}

	value = strings.TrimSpace(value)
	if field.flag != nil {
		b, ok := parseBool(value)
		if !ok {
			return NewSettingValueError(normalized, value, "bool").ToUserError()
		}
		*field.flag = b
		return nil
	}

	n, err := strconv.Atoi(strings.TrimSuffix(strings.ToLower(value), "d"))
	if err != nil || n < 0 {
		return NewSettingValueError(normalized, value, "a non-negative number of days").ToUserError()
	}
	*field.days = n
	return nil
}

func parseBool(s string) (bool, bool) {
	switch strings.ToLower(s) {
	case "true", "yes", "on", "1", "enabled":
		return true, true
	case "false", "no", "off", "0", "disabled":
		return false, true
	}
	return false, false
}
