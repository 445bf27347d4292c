package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/manav03panchal/dockprompt/internal/model"
	"github.com/manav03panchal/dockprompt/internal/output"
	"golang.org/x/term"
)

// Choice is the user's answer to a prompt.
type Choice int

const (
	// ChoiceNone means the prompt was closed without an answer.
	ChoiceNone Choice = iota
	ChoiceConfirm
	ChoiceDismiss
	// ChoiceNeverAskAgain is offered on the banner only.
	ChoiceNeverAskAgain
)

func (c Choice) String() string {
	switch c {
	case ChoiceConfirm:
		return "confirm"
	case ChoiceDismiss:
		return "dismiss"
	case ChoiceNeverAskAgain:
		return "never-ask-again"
	default:
		return "none"
	}
}

// PromptModel is the bubbletea model for a single prompt surface.
type PromptModel struct {
	prompt      model.PromptType
	eligibility model.PromptEligibility
	width       int
	choice      Choice
}

// NewPromptModel creates a model for prompt p.
func NewPromptModel(p model.PromptType, e model.PromptEligibility) *PromptModel {
	return &PromptModel{prompt: p, eligibility: e, width: 60}
}

// Choice returns the answer once the program has exited.
func (m *PromptModel) Choice() Choice {
	return m.choice
}

// Init initializes the model.
func (m *PromptModel) Init() tea.Cmd {
	return nil
}

// Update handles key presses and window resizes.
func (m *PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.width = min(msg.Width, 80)
	}
	return m, nil
}

func (m *PromptModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "y":
		m.choice = ChoiceConfirm
		return m, tea.Quit
	case "n", "esc":
		m.choice = ChoiceDismiss
		return m, tea.Quit
	case "x":
		if m.prompt == model.PromptBanner {
			m.choice = ChoiceNeverAskAgain
			return m, tea.Quit
		}
	case "q", "ctrl+c":
		m.choice = ChoiceNone
		return m, tea.Quit
	}
	return m, nil
}

// View renders the prompt surface.
func (m *PromptModel) View() string {
	style := SurfaceStyle(m.prompt)
	textWidth := 0
	if m.width > 4 {
		style = style.Width(m.width - 4)
		textWidth = m.width - 4 - style.GetHorizontalPadding()
	}

	var content strings.Builder
	content.WriteString(StyleTitle.Render(m.prompt.Label()))
	content.WriteString("\n")
	content.WriteString(StyleBody.Render(output.PromptMessage(m.prompt, m.eligibility)))
	content.WriteString("\n")
	content.WriteString(StyleHelp.Render(m.help(textWidth)))

	return style.Render(content.String()) + "\n"
}

// help renders the key bindings, breaking lines between bindings so none
// is split when the surface is narrower than the full line. A width of
// zero keeps everything on one line.
func (m *PromptModel) help(width int) string {
	keys := []struct{ key, desc string }{
		{"enter", m.eligibility.Label()},
		{"n", "not now"},
	}
	if m.prompt == model.PromptBanner {
		keys = append(keys, struct{ key, desc string }{"x", "don't ask again"})
	}
	keys = append(keys, struct{ key, desc string }{"q", "close"})

	sep := StyleMuted.Render(" • ")
	var lines []string
	line := ""
	for _, k := range keys {
		part := fmt.Sprintf("%s %s", StyleHelpKey.Render(k.key), StyleHelpDesc.Render(k.desc))
		switch {
		case line == "":
			line = part
		case width > 0 && lipgloss.Width(line+sep+part) > width:
			lines = append(lines, line)
			line = part
		default:
			line += sep + part
		}
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}

// IsTerminal reports whether f is an interactive terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Run shows prompt p and returns the user's choice. in and out default to
// stdin and stdout.
func Run(p model.PromptType, e model.PromptEligibility, in io.Reader, out io.Writer) (Choice, error) {
	m := NewPromptModel(p, e)
	var opts []tea.ProgramOption
	if in != nil {
		opts = append(opts, tea.WithInput(in))
	}
	if out != nil {
		opts = append(opts, tea.WithOutput(out))
	}
	if f, ok := out.(*os.File); ok && IsTerminal(f) {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			m.width = min(w, 80)
		}
	}

	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return ChoiceNone, err
	}
	return m.Choice(), nil
}
