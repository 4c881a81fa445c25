package components

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/eep666/bunny-chapter-update-tool/internal/ui/msgs"
	"github.com/eep666/bunny-chapter-update-tool/internal/ui/theme"
)

// StatusBar is a full-width bottom status bar.
type StatusBar struct {
	statusLabel string
	statusCode  int
	duration    time.Duration
	size        int64
	contentType string
	mode        msgs.AppMode
	message     string
	aiReady     bool
	width       int
	theme       theme.Theme
	styles      theme.Styles
}

// NewStatusBar creates a new status bar.
func NewStatusBar(t theme.Theme, s theme.Styles) StatusBar {
	return StatusBar{
		theme:  t,
		styles: s,
		mode:   msgs.ModeNormal,
	}
}

// SetStatus sets the last-send status info. label is the status label
// (numeric or "ERR"), code the numeric status (0 for transport failures).
func (m *StatusBar) SetStatus(label string, code int, duration time.Duration, size int64, contentType string) {
	m.statusLabel = label
	m.statusCode = code
	m.duration = duration
	m.size = size
	m.contentType = contentType
}

// SetMode sets the current app mode.
func (m *StatusBar) SetMode(mode msgs.AppMode) {
	m.mode = mode
}

// SetWidth sets the available width.
func (m *StatusBar) SetWidth(w int) {
	m.width = w
}

// SetMessage sets a temporary status message shown instead of status info.
func (m *StatusBar) SetMessage(text string) {
	m.message = text
}

// SetAIReady sets whether the generate action is available.
func (m *StatusBar) SetAIReady(ready bool) {
	m.aiReady = ready
}

// SetTheme swaps the color scheme.
func (m *StatusBar) SetTheme(t theme.Theme, s theme.Styles) {
	m.theme = t
	m.styles = s
}

// Init implements tea.Model.
func (m StatusBar) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m StatusBar) Update(msg tea.Msg) (StatusBar, tea.Cmd) {
	return m, nil
}

// View renders the status bar.
func (m StatusBar) View() string {
	barStyle := lipgloss.NewStyle().
		Background(m.theme.Surface).
		Foreground(m.theme.Text).
		Width(m.width)

	var leftParts []string
	if m.message != "" {
		leftParts = append(leftParts, lipgloss.NewStyle().
			Foreground(m.theme.Text).
			Background(m.theme.Surface).
			Render(m.message))
	} else {
		if m.statusLabel != "" {
			leftParts = append(leftParts, lipgloss.NewStyle().
				Foreground(m.theme.StatusColor(m.statusCode)).
				Background(m.theme.Surface).
				Bold(true).
				Render(m.statusLabel))
		}
		if m.duration > 0 {
			leftParts = append(leftParts, lipgloss.NewStyle().
				Foreground(m.theme.Subtext).
				Background(m.theme.Surface).
				Render(formatDuration(m.duration)))
		}
		if m.size > 0 {
			leftParts = append(leftParts, lipgloss.NewStyle().
				Foreground(m.theme.Subtext).
				Background(m.theme.Surface).
				Render(humanize.IBytes(uint64(m.size))))
		}
		if m.contentType != "" {
			leftParts = append(leftParts, lipgloss.NewStyle().
				Foreground(m.theme.Muted).
				Background(m.theme.Surface).
				Render(m.contentType))
		}
	}
	left := strings.Join(leftParts, " │ ")

	modeStr := lipgloss.NewStyle().
		Foreground(m.theme.Mauve).
		Background(m.theme.Surface).
		Bold(true).
		Render("[" + m.mode.String() + "]")

	var rightParts []string
	if m.aiReady {
		rightParts = append(rightParts, lipgloss.NewStyle().
			Foreground(m.theme.Teal).
			Background(m.theme.Surface).
			Bold(true).
			Render("[AI]"))
	}
	rightParts = append(rightParts, lipgloss.NewStyle().
		Foreground(m.theme.Muted).
		Background(m.theme.Surface).
		Render("?:help  Ctrl+K:command"))
	hint := strings.Join(rightParts, " ")

	leftWidth := lipgloss.Width(left)
	centerWidth := lipgloss.Width(modeStr)
	rightWidth := lipgloss.Width(hint)

	totalContent := leftWidth + centerWidth + rightWidth
	if totalContent >= m.width {
		gap := m.width - totalContent
		if gap < 1 {
			gap = 1
		}
		return barStyle.Render(" " + left + strings.Repeat(" ", gap) + modeStr + " " + hint)
	}

	// totalContent can still be width-1 or width-2 here; keep the gaps
	// non-negative.
	remaining := m.width - totalContent - 2
	if remaining < 0 {
		remaining = 0
	}
	gap1 := remaining / 2
	gap2 := remaining - gap1

	line := " " + left +
		strings.Repeat(" ", gap1) + modeStr +
		strings.Repeat(" ", gap2) + hint

	return barStyle.Render(line)
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}
