// Package tui renders the interactive prompt surfaces for dockprompt.
package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/manav03panchal/dockprompt/internal/model"
)

// Color palette for the prompt surfaces.
var (
	ColorPrimary = lipgloss.Color("#2563EB") // Blue
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
	ColorAccent  = lipgloss.Color("#10B981") // Green
	ColorWarning = lipgloss.Color("#F59E0B") // Yellow
	ColorBorder  = lipgloss.Color("#4B5563") // Dark gray
)

// Base styles.
var (
	StyleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	StyleBody = lipgloss.NewStyle().
			MarginTop(1)

	StyleMuted = lipgloss.NewStyle().
			Foreground(ColorMuted)

	StyleHelpKey = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	StyleHelpDesc = lipgloss.NewStyle().
			Foreground(ColorMuted)

	StyleHelp = lipgloss.NewStyle().
			MarginTop(1)
)

// Surface styles. The popover and inactive modal are boxed; the banner is
// a single full-width strip.
var (
	StylePopover = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, 2)

	StyleBanner = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	StyleModal = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorWarning).
			Padding(1, 3)
)

// SurfaceStyle returns the frame style for a prompt surface.
func SurfaceStyle(p model.PromptType) lipgloss.Style {
	switch p {
	case model.PromptBanner:
		return StyleBanner
	case model.PromptInactive:
		return StyleModal
	default:
		return StylePopover
	}
}
