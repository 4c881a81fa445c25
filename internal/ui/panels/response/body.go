package response

import (
	"bytes"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromastyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tidwall/pretty"

	"github.com/eep666/bunny-chapter-update-tool/internal/ui/theme"
)

// BodyModel displays the response payload with syntax highlighting.
type BodyModel struct {
	viewport viewport.Model
	styles   theme.Styles
	width    int
	height   int
	wrap     bool
	hasBody  bool
	raw      []byte
	contType string
}

// NewBodyModel creates a new body viewer.
func NewBodyModel(s theme.Styles) BodyModel {
	return BodyModel{
		viewport: viewport.New(0, 0),
		styles:   s,
	}
}

// SetStyles swaps the style set.
func (m *BodyModel) SetStyles(s theme.Styles) {
	m.styles = s
}

// SetContent sets the payload and highlights it.
func (m *BodyModel) SetContent(body []byte, contentType string) {
	m.raw = body
	m.contType = contentType
	m.hasBody = len(body) > 0
	m.renderContent()
}

// Clear empties the viewer.
func (m *BodyModel) Clear() {
	m.raw = nil
	m.hasBody = false
	m.viewport.SetContent("")
}

// SetSize updates the viewport dimensions.
func (m *BodyModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.viewport.Width = w
	m.viewport.Height = h
	if m.hasBody {
		m.renderContent()
	}
}

func (m *BodyModel) renderContent() {
	if !m.hasBody {
		return
	}

	src := m.raw
	lexerName := detectLexer(m.contType, src)
	if lexerName == "json" {
		src = pretty.Pretty(src)
	}

	m.viewport.SetContent(highlight(string(src), lexerName, m.width, m.wrap))
}

// Init implements tea.Model.
func (m BodyModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m BodyModel) Update(msg tea.Msg) (BodyModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "w":
			m.wrap = !m.wrap
			m.renderContent()
			return m, nil
		case "g":
			m.viewport.GotoTop()
			return m, nil
		case "G":
			m.viewport.GotoBottom()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the body viewer.
func (m BodyModel) View() string {
	if !m.hasBody {
		return m.styles.Muted.Render("No response yet")
	}
	return m.viewport.View()
}

// detectLexer maps Content-Type (or the payload itself) to a chroma lexer
// name. Synthesized payloads carry no content type but are always JSON.
func detectLexer(contentType string, body []byte) string {
	ct := strings.ToLower(contentType)
	switch {
	case strings.Contains(ct, "json"):
		return "json"
	case strings.Contains(ct, "html"):
		return "html"
	case strings.Contains(ct, "xml"):
		return "xml"
	case ct == "":
		trimmed := bytes.TrimSpace(body)
		if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
			return "json"
		}
	}
	return "text"
}

// highlight applies chroma syntax highlighting to source code.
func highlight(source, lexerName string, width int, wrap bool) string {
	lexer := lexers.Get(lexerName)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := chromastyles.Get("monokai")
	if style == nil {
		style = chromastyles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return source
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return source
	}

	result := buf.String()
	if wrap && width > 0 {
		result = lipgloss.NewStyle().Width(width).Render(result)
	}
	return result
}
