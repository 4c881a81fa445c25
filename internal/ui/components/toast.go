package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/eep666/bunny-chapter-update-tool/internal/ui/theme"
)

const defaultToastDuration = 3 * time.Second

// toastExpiredMsg hides the toast. seq ties the expiry to the Show call that
// scheduled it, so the timer of a replaced toast cannot dismiss its successor.
type toastExpiredMsg struct {
	seq int
}

// Toast is a transient notification shown in the top-right corner.
type Toast struct {
	Visible bool

	text    string
	isError bool
	seq     int

	theme  theme.Theme
	styles theme.Styles
}

// NewToast creates the toast component.
func NewToast(t theme.Theme, s theme.Styles) Toast {
	return Toast{theme: t, styles: s}
}

// Show replaces the current toast and schedules its expiry. A non-positive
// duration uses the default.
func (m *Toast) Show(text string, isError bool, duration time.Duration) tea.Cmd {
	m.Visible = true
	m.text = text
	m.isError = isError
	m.seq++

	if duration <= 0 {
		duration = defaultToastDuration
	}
	seq := m.seq
	return tea.Tick(duration, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

// SetTheme swaps the color scheme.
func (m *Toast) SetTheme(t theme.Theme, s theme.Styles) {
	m.theme = t
	m.styles = s
}

// Init implements tea.Model.
func (m Toast) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Toast) Update(msg tea.Msg) (Toast, tea.Cmd) {
	if exp, ok := msg.(toastExpiredMsg); ok && exp.seq == m.seq {
		m.Visible = false
		m.text = ""
	}
	return m, nil
}

// View renders the toast as a level tag followed by the message.
func (m Toast) View() string {
	if !m.Visible || m.text == "" {
		return ""
	}

	accent := m.theme.Green
	tag := "ok"
	if m.isError {
		accent = m.theme.Red
		tag = "error"
	}

	tagCell := lipgloss.NewStyle().
		Foreground(m.theme.Base).
		Background(accent).
		Bold(true).
		Padding(0, 1).
		Render(tag)
	body := lipgloss.NewStyle().
		Foreground(m.theme.Text).
		Background(m.theme.Surface).
		Padding(0, 1).
		Render(m.text)

	return tagCell + body
}
