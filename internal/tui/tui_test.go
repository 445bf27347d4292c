package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/manav03panchal/dockprompt/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPromptModelKeys(t *testing.T) {
	tests := []struct {
		name   string
		prompt model.PromptType
		key    string
		want   Choice
		quits  bool
	}{
		{"enter_confirms", model.PromptPopover, "enter", ChoiceConfirm, true},
		{"y_confirms", model.PromptInactive, "y", ChoiceConfirm, true},
		{"n_dismisses", model.PromptPopover, "n", ChoiceDismiss, true},
		{"esc_dismisses", model.PromptBanner, "esc", ChoiceDismiss, true},
		{"x_on_banner", model.PromptBanner, "x", ChoiceNeverAskAgain, true},
		{"x_on_popover_ignored", model.PromptPopover, "x", ChoiceNone, false},
		{"q_closes", model.PromptBanner, "q", ChoiceNone, true},
		{"ctrl_c_closes", model.PromptInactive, "ctrl+c", ChoiceNone, true},
		{"other_ignored", model.PromptPopover, "z", ChoiceNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewPromptModel(tt.prompt, model.EligibilityAddToDock)
			_, cmd := m.Update(keyMsg(tt.key))

			assert.Equal(t, tt.want, m.Choice())
			if tt.quits {
				require.NotNil(t, cmd)
				assert.IsType(t, tea.QuitMsg{}, cmd())
			} else {
				assert.Nil(t, cmd)
			}
		})
	}
}

func TestPromptModelView(t *testing.T) {
	banner := NewPromptModel(model.PromptBanner, model.EligibilitySetAsDefault).View()
	assert.Contains(t, banner, "Banner")
	assert.Contains(t, banner, "don't ask again")

	popover := NewPromptModel(model.PromptPopover, model.EligibilityAddToDock).View()
	assert.Contains(t, popover, "Popover")
	assert.NotContains(t, popover, "don't ask again")
}

func TestPromptModelViewNarrow(t *testing.T) {
	for _, width := range []int{40, 60, 80} {
		m := NewPromptModel(model.PromptBanner, model.EligibilityDefaultBrowserAndDock)
		m.Update(tea.WindowSizeMsg{Width: width, Height: 24})
		assert.Contains(t, m.View(), "don't ask again", "width %d", width)
	}
}

func TestPromptModelHelpWraps(t *testing.T) {
	m := NewPromptModel(model.PromptBanner, model.EligibilitySetAsDefault)

	assert.NotContains(t, m.help(0), "\n")

	lines := strings.Split(m.help(30), "\n")
	require.Greater(t, len(lines), 1)
	for _, line := range lines {
		assert.LessOrEqual(t, lipgloss.Width(line), 30, line)
	}
}

func TestPromptModelWindowSize(t *testing.T) {
	m := NewPromptModel(model.PromptPopover, model.EligibilityAddToDock)
	m.Update(tea.WindowSizeMsg{Width: 200, Height: 40})
	assert.Equal(t, 80, m.width)
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 40})
	assert.Equal(t, 40, m.width)
}

func TestChoiceString(t *testing.T) {
	assert.Equal(t, "confirm", ChoiceConfirm.String())
	assert.Equal(t, "dismiss", ChoiceDismiss.String())
	assert.Equal(t, "never-ask-again", ChoiceNeverAskAgain.String())
	assert.Equal(t, "none", ChoiceNone.String())
}
