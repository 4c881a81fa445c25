package app

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tidwall/pretty"

	"github.com/eep666/bunny-chapter-update-tool/internal/chapters"
	"github.com/eep666/bunny-chapter-update-tool/internal/config"
	"github.com/eep666/bunny-chapter-update-tool/internal/dispatch"
	"github.com/eep666/bunny-chapter-update-tool/internal/ui/components"
	"github.com/eep666/bunny-chapter-update-tool/internal/ui/layout"
	"github.com/eep666/bunny-chapter-update-tool/internal/ui/msgs"
	"github.com/eep666/bunny-chapter-update-tool/internal/ui/panels/form"
	"github.com/eep666/bunny-chapter-update-tool/internal/ui/panels/response"
	"github.com/eep666/bunny-chapter-update-tool/internal/ui/theme"
)

// App is the root Bubble Tea model.
type App struct {
	form     form.Model
	response response.Model

	statusBar      components.StatusBar
	commandPalette components.CommandPalette
	help           components.Help
	toast          components.Toast

	dispatcher *dispatch.Dispatcher
	generator  *chapters.Generator
	cfg        config.Config

	mode  msgs.AppMode
	focus msgs.PanelFocus
	keys  KeyMap

	// Busy flags: the two actions are mutually exclusive. Update refuses
	// both action messages while either operation is in flight, whichever
	// path (key or palette) emitted them.
	generating bool
	sending    bool

	layout layout.PanelLayout
	theme  theme.Theme
	styles theme.Styles

	width  int
	height int
	ready  bool
}

// New creates the root model.
func New(cfg config.Config) App {
	t := theme.Resolve(cfg.Theme)
	s := theme.NewStyles(t)

	gen := chapters.NewGenerator(cfg.AI.BaseURL, cfg.AI.Key, cfg.AI.Model)
	disp := dispatch.New(cfg.CredentialHeader, gen)
	if cfg.DefaultTimeout > 0 {
		disp.SetTimeout(cfg.DefaultTimeout)
	}

	a := App{
		form:     form.New(s),
		response: response.New(t, s),

		statusBar:      components.NewStatusBar(t, s),
		commandPalette: components.NewCommandPalette(t, s),
		help:           components.NewHelp(t, s),
		toast:          components.NewToast(t, s),

		dispatcher: disp,
		generator:  gen,
		cfg:        cfg,

		mode:  msgs.ModeNormal,
		focus: msgs.FocusForm,
		keys:  DefaultKeyMap(),

		theme:  t,
		styles: s,
	}

	a.form.SetAIReady(cfg.AIAvailable())
	a.form.SetDefaultURL(cfg.DefaultURL)
	a.statusBar.SetAIReady(cfg.AIAvailable())

	return a
}

func (a App) Init() tea.Cmd {
	return a.response.Init()
}

func (a App) busy() bool {
	return a.generating || a.sending
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layout = layout.Calculate(msg.Width, msg.Height)
		a.resizePanels()
		a.ready = true
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case msgs.SendRequestMsg:
		// The gate lives here rather than on the key path so palette
		// selections cannot start a second operation mid-flight.
		if a.busy() {
			return a.refuseBusy()
		}
		return a.sendRequest()

	case msgs.RequestSentMsg:
		return a.handleRequestSent(msg)

	case msgs.SendRefusedMsg:
		a.sending = false
		a.response.SetLoading(false, "")
		return a, a.toast.Show(msg.Err.Error(), true, 4*time.Second)

	case msgs.GenerateChaptersMsg:
		if a.busy() {
			return a.refuseBusy()
		}
		return a.generateChapters()

	case msgs.ChaptersGeneratedMsg:
		return a.handleChaptersGenerated(msg)

	case msgs.FormatBodyMsg:
		return a.formatBody()

	case msgs.CopyBodyMsg:
		if err := clipboard.WriteAll(a.form.BodyContent()); err != nil {
			return a, a.toast.Show("Clipboard: "+err.Error(), true, 3*time.Second)
		}
		return a, a.toast.Show("Body copied", false, 2*time.Second)

	case msgs.CopyResponseMsg:
		payload := a.response.Payload()
		if len(payload) == 0 {
			return a, a.toast.Show("No response to copy", true, 2*time.Second)
		}
		if err := clipboard.WriteAll(string(pretty.Pretty(payload))); err != nil {
			return a, a.toast.Show("Clipboard: "+err.Error(), true, 3*time.Second)
		}
		return a, a.toast.Show("Response copied", false, 2*time.Second)

	case msgs.ClearResponseMsg:
		a.response.Clear()
		a.statusBar.SetStatus("", 0, 0, 0, "")
		return a, nil

	case msgs.OpenCommandPaletteMsg:
		a.mode = msgs.ModeCommandPalette
		a.commandPalette.Open()
		return a, nil

	case msgs.ShowHelpMsg:
		a.help.Visible = !a.help.Visible
		return a, nil

	case msgs.SetModeMsg:
		a.mode = msg.Mode
		a.statusBar.SetMode(a.mode)
		return a, nil

	case msgs.SwitchThemeMsg:
		return a.switchTheme(msg.Name)

	case msgs.ToastMsg:
		return a, a.toast.Show(msg.Text, msg.IsError, msg.Duration)

	case msgs.FocusPanelMsg:
		a.setFocus(msg.Panel)
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.response, cmd = a.response.Update(msg)
		return a, cmd
	}

	var cmd tea.Cmd
	a.toast, cmd = a.toast.Update(msg)
	return a, cmd
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Overlays swallow all keys while visible.
	if a.commandPalette.Visible {
		var cmd tea.Cmd
		a.commandPalette, cmd = a.commandPalette.Update(msg)
		return a, cmd
	}
	if a.help.Visible {
		var cmd tea.Cmd
		a.help, cmd = a.help.Update(msg)
		return a, cmd
	}

	// Global bindings work in every mode.
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.SendRequest):
		return a, func() tea.Msg { return msgs.SendRequestMsg{} }
	case key.Matches(msg, a.keys.GenerateChapters):
		return a, func() tea.Msg { return msgs.GenerateChaptersMsg{} }
	case key.Matches(msg, a.keys.FormatBody):
		return a, func() tea.Msg { return msgs.FormatBodyMsg{} }
	case key.Matches(msg, a.keys.CommandPalette):
		return a, func() tea.Msg { return msgs.OpenCommandPaletteMsg{} }
	}

	editing := a.focus == msgs.FocusForm && a.form.Editing()
	if !editing {
		switch {
		case key.Matches(msg, a.keys.Help):
			a.help.Visible = true
			return a, nil
		case key.Matches(msg, a.keys.FocusForm):
			a.setFocus(msgs.FocusForm)
			return a, nil
		case key.Matches(msg, a.keys.FocusResponse):
			a.setFocus(msgs.FocusResponse)
			return a, nil
		}
	}

	var cmd tea.Cmd
	switch a.focus {
	case msgs.FocusForm:
		a.form, cmd = a.form.Update(msg)
	case msgs.FocusResponse:
		a.response, cmd = a.response.Update(msg)
	}

	if a.focus == msgs.FocusForm {
		mode := msgs.ModeNormal
		if a.form.Editing() {
			mode = msgs.ModeInsert
		}
		a.mode = mode
		a.statusBar.SetMode(mode)
	}

	return a, cmd
}

// refuseBusy rejects an action message while another operation is in flight.
func (a App) refuseBusy() (tea.Model, tea.Cmd) {
	return a, a.toast.Show("Operation in progress", true, 2*time.Second)
}

func (a *App) setFocus(p msgs.PanelFocus) {
	a.focus = p
	a.response.SetFocused(p == msgs.FocusResponse)
}

func (a App) switchTheme(name string) (tea.Model, tea.Cmd) {
	if name == "" {
		a.mode = msgs.ModeCommandPalette
		a.commandPalette.OpenThemePicker(theme.Names())
		return a, nil
	}

	a.theme = theme.Resolve(name)
	a.styles = theme.NewStyles(a.theme)
	a.form.SetStyles(a.styles)
	a.response.SetTheme(a.theme, a.styles)
	a.statusBar.SetTheme(a.theme, a.styles)
	a.commandPalette.SetTheme(a.theme, a.styles)
	a.help.SetTheme(a.theme, a.styles)
	a.toast.SetTheme(a.theme, a.styles)
	return a, a.toast.Show("Theme: "+a.theme.Name, false, 2*time.Second)
}

func (a App) formatBody() (tea.Model, tea.Cmd) {
	body := a.form.BodyContent()
	if c := chapters.Classify(body); !c.Parsed {
		return a, a.toast.Show("Body is not valid JSON", true, 2*time.Second)
	}
	a.form.SetBody(string(pretty.Pretty([]byte(body))))
	return a, nil
}

func (a *App) resizePanels() {
	l := a.layout
	if l.Stacked {
		half := l.ContentHeight / 2
		a.form.SetSize(l.FormWidth-2, half)
		a.response.SetSize(l.ResponseWidth, l.ContentHeight-half)
	} else {
		a.form.SetSize(l.FormWidth-2, l.ContentHeight)
		a.response.SetSize(l.ResponseWidth, l.ContentHeight)
	}
	a.statusBar.SetWidth(l.Width)
}

func (a App) View() string {
	if !a.ready {
		return "Loading..."
	}

	title := a.renderTitleBar()

	formView := lipgloss.NewStyle().
		Width(a.layout.FormWidth - 2).
		Height(a.layout.ContentHeight).
		Padding(0, 1).
		Render(a.form.View())
	respView := a.response.View()

	var content string
	if a.layout.Stacked {
		content = lipgloss.JoinVertical(lipgloss.Left, formView, respView)
	} else {
		content = lipgloss.JoinHorizontal(lipgloss.Top, formView, respView)
	}
	main := lipgloss.JoinVertical(lipgloss.Left, title, content, a.statusBar.View())

	if a.commandPalette.Visible {
		main = overlayCenter(main, a.commandPalette.View(), a.width, a.height)
	}
	if a.help.Visible {
		main = overlayCenter(main, a.help.View(), a.width, a.height)
	}
	if a.toast.Visible {
		main = overlayTopRight(main, a.toast.View(), a.width)
	}

	return main
}

func overlayCenter(_, overlay string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, overlay,
		lipgloss.WithWhitespaceChars(" "),
	)
}

func overlayTopRight(bg, overlay string, width int) string {
	overlayWidth := lipgloss.Width(overlay)
	gap := width - overlayWidth - 2
	if gap < 0 {
		gap = 0
	}
	positioned := lipgloss.NewStyle().MarginLeft(gap).Render(overlay)
	return positioned + "\n" + bg
}

func (a App) renderTitleBar() string {
	name := lipgloss.NewStyle().
		Foreground(a.theme.Mauve).
		Bold(true).
		Render(" bunnychap ")
	sub := a.styles.Muted.Render("video chapter updater")
	return lipgloss.NewStyle().Width(a.width).Render(name + " " + sub)
}
