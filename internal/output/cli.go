package output

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/manav03panchal/dockprompt/internal/model"
)

// Styles for CLI output.
var (
	colorPrimary = lipgloss.Color("#2563EB") // Blue
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorWarning = lipgloss.Color("#F59E0B") // Yellow
	colorError   = lipgloss.Color("#EF4444") // Red
	colorSuccess = lipgloss.Color("#10B981") // Green

	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleBold = lipgloss.NewStyle().
			Bold(true)

	stylePrompt = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(0, 2)
)

// CLIFormatter provides CLI-specific formatting.
type CLIFormatter struct {
	*Formatter
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f}
}

func (c *CLIFormatter) render(s lipgloss.Style, text string) string {
	if c.IsColorEnabled() {
		return s.Render(text)
	}
	return text
}

// Title prints a title.
func (c *CLIFormatter) Title(text string) {
	c.Println(c.render(styleTitle, text))
}

// Success prints a success message.
func (c *CLIFormatter) Success(text string) {
	c.Println(c.render(styleSuccess, "✓ "+text))
}

// Warning prints a warning message.
func (c *CLIFormatter) Warning(text string) {
	c.Println(c.render(styleWarning, "⚠ "+text))
}

// Error prints an error message.
func (c *CLIFormatter) Error(text string) {
	c.Println(c.render(styleError, "✗ "+text))
}

// Muted prints muted text.
func (c *CLIFormatter) Muted(text string) {
	c.Println(c.render(styleMuted, text))
}

// Field prints an indented label and value.
func (c *CLIFormatter) Field(label, value string) {
	c.Printf("  %-28s %s\n", label+":", value)
}

// PromptMessage returns the call to action for a prompt surface.
func PromptMessage(p model.PromptType, e model.PromptEligibility) string {
	action := strings.ToLower(e.Label())
	switch p {
	case model.PromptPopover:
		return fmt.Sprintf("Get quick access: %s?", action)
	case model.PromptBanner:
		return fmt.Sprintf("Make browsing easier: %s.", action)
	case model.PromptInactive:
		return fmt.Sprintf("Welcome back! Want to %s?", action)
	}
	return ""
}

// PrintCheck prints the result of a prompt check.
func (c *CLIFormatter) PrintCheck(p model.PromptType, e model.PromptEligibility) {
	if p == model.PromptNone {
		if e == model.EligibilityNone {
			c.Muted("Already the default browser and in the dock.")
		} else {
			c.Muted("No prompt is due.")
		}
		return
	}

	body := c.render(styleBold, p.Label()) + "\n" + PromptMessage(p, e)
	if c.IsColorEnabled() {
		body = stylePrompt.Render(body)
	}
	c.Println(body)
	c.Muted(fmt.Sprintf("Respond with 'dockprompt confirm %s' or 'dockprompt dismiss %s'.", p, p))
}

// PrintStatus prints the stored prompt state.
func (c *CLIFormatter) PrintStatus(v *StatusView) {
	c.Title("Prompt status")
	if v.Installed {
		c.Field("Installed", fmt.Sprintf("%s (%s ago)", FormatDate(v.InstallDate), FormatDays(daysAgo(v.InstallDate, v.Now))))
	} else {
		c.Field("Installed", "unknown")
	}
	c.Field("Onboarding completed", yesNo(v.OnboardingCompleted))
	c.Field("Eligibility", v.Eligibility.Label())
	if !v.DockPromptAvailable {
		c.Field("Dock prompt", "unavailable")
	}

	c.Println()
	c.Title("History")
	if s := v.State; s != nil {
		c.Field("Popover shown", shownDate(s.PopoverShownAt()))
		c.Field("Banner last shown", shownDate(s.BannerShownAt()))
		c.Field("Banners shown", fmt.Sprintf("%d", s.BannerShownOccurrences))
		c.Field("Banner hidden permanently", yesNo(s.IsBannerPermanentlyDismissed))
		c.Field("Inactive modal shown", shownDate(s.InactiveModalShownAt()))
	}

	c.Println()
	c.Title("Activity")
	if a := v.Activity; a != nil && a.LastActiveDate != nil {
		c.Field("Last active", FormatDate(*a.LastActiveDate))
		if a.SecondLastActiveDate != nil {
			c.Field("Previously active", FormatDate(*a.SecondLastActiveDate))
		}
	} else {
		c.Field("Last active", "never")
	}
	c.Field("Inactive days", fmt.Sprintf("%d", v.InactiveDays))

	if v.Settings != nil {
		c.Println()
		c.PrintSettings(v.Settings)
	}
}

// PrintSettings prints the effective prompt settings.
func (c *CLIFormatter) PrintSettings(s *model.PromptSettings) {
	c.Title("Settings")
	c.Field("active_user_prompt_enabled", yesNo(s.ActiveUserPromptEnabled))
	c.Field("inactive_user_prompt_enabled", yesNo(s.InactiveUserPromptEnabled))
	c.Field("first_popover_delay_days", FormatDays(s.FirstPopoverDelayDays))
	c.Field("banner_after_popover_delay_days", FormatDays(s.BannerAfterPopoverDelayDays))
	c.Field("banner_repeat_interval_days", FormatDays(s.BannerRepeatIntervalDays))
	c.Field("inactive_modal_days_since_install", FormatDays(s.InactiveModalNumberOfDaysSinceInstall))
	c.Field("inactive_modal_number_of_inactive_days", FormatDays(s.InactiveModalNumberOfInactiveDays))
}

// PrintPixels prints stored pixels as a table.
func (c *CLIFormatter) PrintPixels(records []*model.PixelRecord) {
	if len(records) == 0 {
		c.Muted("No pixels recorded.")
		return
	}
	rows := make([]TableRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, TableRow{Columns: []string{
			FormatTime(r.FiredAt),
			r.Name,
			string(r.Frequency),
			formatParams(r.Parameters),
		}})
	}
	c.PrintTable([]string{"FIRED", "PIXEL", "FREQUENCY", "PARAMETERS"}, rows)
}

// TableRow is one row of PrintTable output.
type TableRow struct {
	Columns []string
}

// PrintTable prints a simple table.
func (c *CLIFormatter) PrintTable(headers []string, rows []TableRow) {
	if len(rows) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, col := range row.Columns {
			if i < len(widths) && len(col) > widths[i] {
				widths[i] = len(col)
			}
		}
	}

	var headerLine strings.Builder
	for i, h := range headers {
		fmt.Fprintf(&headerLine, "%-*s  ", widths[i], h)
	}
	c.Println(c.render(styleBold, strings.TrimRight(headerLine.String(), " ")))

	for _, row := range rows {
		var line strings.Builder
		for i, col := range row.Columns {
			if i < len(widths) {
				fmt.Fprintf(&line, "%-*s  ", widths[i], col)
			}
		}
		c.Println(strings.TrimRight(line.String(), " "))
	}
}

func formatParams(params map[string]string) string {
	if len(params) == 0 {
		return "-"
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+params[k])
	}
	return strings.Join(parts, " ")
}

func shownDate(t time.Time, ok bool) string {
	if !ok {
		return "never"
	}
	return FormatTime(t)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func daysAgo(t, now time.Time) int {
	d := int(now.Sub(t).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}
