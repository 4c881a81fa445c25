package form

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/eep666/bunny-chapter-update-tool/internal/dispatch"
	"github.com/eep666/bunny-chapter-update-tool/internal/ui/theme"
)

// Field identifies a focusable form field.
type Field int

const (
	FieldCredential Field = iota
	FieldURL
	FieldBody
)

var fieldLabels = []string{"AccessKey", "URL", "Body"}

// Model is the chapter-update form: credential, target URL, and the
// notes/JSON body.
type Model struct {
	credential textinput.Model
	url        textinput.Model
	body       textarea.Model

	focusField Field
	aiReady    bool

	width  int
	height int
	styles theme.Styles
}

// New creates the form.
func New(s theme.Styles) Model {
	cred := textinput.New()
	cred.Placeholder = "Video API access key..."
	cred.EchoMode = textinput.EchoPassword
	cred.EchoCharacter = '•'
	cred.CharLimit = 256
	cred.Width = 40

	urlInput := textinput.New()
	urlInput.Placeholder = "https://video.bunnycdn.com/library/{lib}/videos/{id}"
	urlInput.CharLimit = 2048
	urlInput.Width = 40

	bodyArea := textarea.New()
	bodyArea.Placeholder = "Chapter notes or chapters JSON..."
	bodyArea.ShowLineNumbers = false
	bodyArea.CharLimit = 0
	bodyArea.SetWidth(40)
	bodyArea.SetHeight(8)

	return Model{
		credential: cred,
		url:        urlInput,
		body:       bodyArea,
		focusField: FieldCredential,
		styles:     s,
		width:      50,
		height:     20,
	}
}

// SetStyles swaps the style set.
func (m *Model) SetStyles(s theme.Styles) {
	m.styles = s
}

// SetAIReady toggles the generate hint under the body field.
func (m *Model) SetAIReady(ready bool) {
	m.aiReady = ready
}

// SetDefaultURL pre-fills the URL field when it is empty.
func (m *Model) SetDefaultURL(u string) {
	if u != "" && m.url.Value() == "" {
		m.url.SetValue(u)
	}
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h

	inputW := w - 14
	if inputW < 10 {
		inputW = 10
	}
	m.credential.Width = inputW
	m.url.Width = inputW

	bodyW := w - 4
	if bodyW < 10 {
		bodyW = 10
	}
	bodyH := h - 9 // labels, inputs, hint line, padding
	if bodyH < 3 {
		bodyH = 3
	}
	m.body.SetWidth(bodyW)
	m.body.SetHeight(bodyH)
}

// Editing returns whether a field is in text editing mode.
func (m Model) Editing() bool {
	return m.credential.Focused() || m.url.Focused() || m.body.Focused()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.Editing() {
			return m.updateEditing(msg)
		}
		return m.updateNormal(msg)
	}

	var cmd tea.Cmd
	switch m.focusField {
	case FieldCredential:
		m.credential, cmd = m.credential.Update(msg)
	case FieldURL:
		m.url, cmd = m.url.Update(msg)
	case FieldBody:
		m.body, cmd = m.body.Update(msg)
	}
	return m, cmd
}

func (m Model) updateNormal(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "j", "down":
		m.focusField = (m.focusField + 1) % 3
	case "shift+tab", "k", "up":
		m.focusField = (m.focusField + 2) % 3
	case "enter", "i":
		return m.focusActive()
	}
	return m, nil
}

func (m Model) updateEditing(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.blurAll()
		return m, nil
	case "tab":
		// Move to the next field, staying in editing mode. The body textarea
		// keeps tab for indentation.
		if m.focusField != FieldBody {
			m.blurAll()
			m.focusField = (m.focusField + 1) % 3
			return m.focusActive()
		}
	}

	var cmd tea.Cmd
	switch m.focusField {
	case FieldCredential:
		m.credential, cmd = m.credential.Update(msg)
	case FieldURL:
		m.url, cmd = m.url.Update(msg)
	case FieldBody:
		m.body, cmd = m.body.Update(msg)
	}
	return m, cmd
}

func (m Model) focusActive() (Model, tea.Cmd) {
	switch m.focusField {
	case FieldCredential:
		m.credential.CursorEnd()
		return m, m.credential.Focus()
	case FieldURL:
		m.url.CursorEnd()
		return m, m.url.Focus()
	case FieldBody:
		return m, m.body.Focus()
	}
	return m, nil
}

func (m *Model) blurAll() {
	m.credential.Blur()
	m.url.Blur()
	m.body.Blur()
}

// BodyContent returns the current body text.
func (m Model) BodyContent() string {
	return strings.TrimSpace(m.body.Value())
}

// SetBody replaces the body content (after generation).
func (m *Model) SetBody(content string) {
	m.body.SetValue(content)
}

// BuildInput constructs the dispatch input from the form state.
func (m Model) BuildInput() dispatch.Input {
	return dispatch.Input{
		Credential: strings.TrimSpace(m.credential.Value()),
		URL:        strings.TrimSpace(m.url.Value()),
		Body:       strings.TrimSpace(m.body.Value()),
	}
}

// View renders the form.
func (m Model) View() string {
	var b strings.Builder

	renderLabel := func(f Field) string {
		label := fieldLabels[f]
		if f == m.focusField && !m.Editing() {
			return m.styles.Cursor.Render(" " + label + " ")
		}
		return m.styles.Label.Render(label)
	}

	b.WriteString(renderLabel(FieldCredential) + " " + m.credential.View())
	b.WriteString("\n\n")
	b.WriteString(renderLabel(FieldURL) + " " + m.url.View())
	b.WriteString("\n\n")
	b.WriteString(renderLabel(FieldBody))
	b.WriteString("\n")
	b.WriteString(m.body.View())
	b.WriteString("\n")

	if m.aiReady {
		b.WriteString(m.styles.Hint.Render("ctrl+g: notes → chapters JSON"))
	} else {
		b.WriteString(m.styles.Hint.Render("set OPENAI_API_KEY to enable generation"))
	}

	return b.String()
}
