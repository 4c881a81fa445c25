package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/eep666/bunny-chapter-update-tool/internal/ui/theme"
)

// helpEntry is one keybinding row in the help overlay.
type helpEntry struct {
	Keys string
	Desc string
}

var helpEntries = []helpEntry{
	{"tab / shift+tab", "next / previous field"},
	{"enter", "edit focused field"},
	{"esc", "leave editing, close overlays"},
	{"ctrl+g", "generate chapters JSON from notes"},
	{"ctrl+r", "send to the target endpoint"},
	{"ctrl+f", "format body as JSON"},
	{"ctrl+k", "command palette"},
	{"1 / 2", "focus form / response panel"},
	{"j / k", "scroll response"},
	{"?", "toggle this help"},
	{"ctrl+c", "quit"},
}

// Help is a modal overlay listing keybindings.
type Help struct {
	Visible bool
	theme   theme.Theme
	styles  theme.Styles
}

// NewHelp creates the help overlay.
func NewHelp(t theme.Theme, s theme.Styles) Help {
	return Help{theme: t, styles: s}
}

// SetTheme swaps the color scheme.
func (m *Help) SetTheme(t theme.Theme, s theme.Styles) {
	m.theme = t
	m.styles = s
}

// Init implements tea.Model.
func (m Help) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Help) Update(msg tea.Msg) (Help, tea.Cmd) {
	if !m.Visible {
		return m, nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "?", "q":
			m.Visible = false
		}
	}
	return m, nil
}

// View renders the help overlay.
func (m Help) View() string {
	if !m.Visible {
		return ""
	}

	boxWidth := 52

	title := lipgloss.NewStyle().
		Foreground(m.theme.Text).
		Bold(true).
		Width(boxWidth - 4).
		Align(lipgloss.Center).
		Render("Keybindings")

	keyStyle := lipgloss.NewStyle().Foreground(m.theme.Mauve)
	descStyle := lipgloss.NewStyle().Foreground(m.theme.Subtext)

	var rows []string
	for _, e := range helpEntries {
		key := keyStyle.Render(e.Keys)
		gap := boxWidth - 6 - lipgloss.Width(key) - lipgloss.Width(e.Desc)
		if gap < 1 {
			gap = 1
		}
		rows = append(rows, key+strings.Repeat(" ", gap)+descStyle.Render(e.Desc))
	}

	content := title + "\n\n" + strings.Join(rows, "\n")

	return lipgloss.NewStyle().
		Width(boxWidth).
		Background(m.theme.Surface).
		Foreground(m.theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.BorderFocused).
		Padding(1, 2).
		Render(content)
}
