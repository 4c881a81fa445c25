package response

import (
	"fmt"
	"net/http"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/eep666/bunny-chapter-update-tool/internal/dispatch"
	"github.com/eep666/bunny-chapter-update-tool/internal/ui/theme"
)

// Model is the response panel: a status line and the payload viewer, with a
// spinner while an operation is in flight.
type Model struct {
	body    BodyModel
	spinner spinner.Model

	styles      theme.Styles
	th          theme.Theme
	focused     bool
	loading     bool
	loadingText string
	hasOutcome  bool
	outcome     dispatch.Outcome
	width       int
	height      int
}

// New creates a new response panel model.
func New(t theme.Theme, s theme.Styles) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(t.Mauve)

	return Model{
		body:    NewBodyModel(s),
		spinner: sp,
		styles:  s,
		th:      t,
	}
}

// SetOutcome populates the panel from a completed send.
func (m *Model) SetOutcome(o dispatch.Outcome) {
	m.loading = false
	m.hasOutcome = true
	m.outcome = o
	m.body.SetContent(o.Payload, o.ContentType)
}

// Payload returns the last displayed payload, for clipboard copy.
func (m Model) Payload() []byte {
	if !m.hasOutcome {
		return nil
	}
	return m.outcome.Payload
}

// Clear resets the panel to its empty state.
func (m *Model) Clear() {
	m.hasOutcome = false
	m.loading = false
	m.body.Clear()
}

// SetLoading puts the panel into loading state with the given label.
func (m *Model) SetLoading(loading bool, label string) {
	m.loading = loading
	m.loadingText = label
}

// SetFocused sets whether this panel has focus.
func (m *Model) SetFocused(focused bool) {
	m.focused = focused
}

// SetTheme swaps the color scheme.
func (m *Model) SetTheme(t theme.Theme, s theme.Styles) {
	m.th = t
	m.styles = s
	m.spinner.Style = lipgloss.NewStyle().Foreground(t.Mauve)
	m.body.SetStyles(s)
}

// SetSize updates the panel dimensions.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h

	// Reserve space: 1 for status line, 2 for border
	innerW := w - 2
	innerH := h - 3
	if innerW < 0 {
		innerW = 0
	}
	if innerH < 0 {
		innerH = 0
	}
	m.body.SetSize(innerW, innerH)
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(spinner.TickMsg); ok {
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.body, cmd = m.body.Update(msg)
	return m, cmd
}

// View renders the response panel.
func (m Model) View() string {
	border := m.styles.UnfocusedBorder
	if m.focused {
		border = m.styles.FocusedBorder
	}

	innerW := m.width - 2
	if innerW < 0 {
		innerW = 0
	}
	innerH := m.height - 2
	if innerH < 0 {
		innerH = 0
	}

	var content string
	switch {
	case m.loading:
		content = lipgloss.Place(innerW, innerH, lipgloss.Center, lipgloss.Center,
			fmt.Sprintf("%s %s", m.spinner.View(), m.loadingText))
	case !m.hasOutcome:
		content = lipgloss.Place(innerW, innerH, lipgloss.Center, lipgloss.Center,
			m.styles.Muted.Render("Send to see the response"))
	default:
		status := m.renderStatus(innerW)
		bodyH := innerH - 1
		if bodyH < 0 {
			bodyH = 0
		}
		body := lipgloss.NewStyle().Width(innerW).Height(bodyH).Render(m.body.View())
		content = lipgloss.JoinVertical(lipgloss.Left, status, body)
	}

	return border.Width(innerW).Height(innerH).Render(content)
}

func (m Model) renderStatus(width int) string {
	o := m.outcome

	label := o.StatusLabel
	if o.Status > 0 {
		label = fmt.Sprintf("%d %s", o.Status, http.StatusText(o.Status))
	}

	style := lipgloss.NewStyle().Foreground(m.th.StatusColor(o.Status)).Bold(true)
	line := style.Render(label)
	if !o.OK && o.Message != "" {
		line += " " + m.styles.Error.Render(o.Message)
	}
	return lipgloss.NewStyle().Width(width).Render(line)
}
