package msgs

import (
	"time"

	"github.com/eep666/bunny-chapter-update-tool/internal/dispatch"
)

// PanelFocus identifies which panel has keyboard focus.
type PanelFocus int

const (
	FocusForm PanelFocus = iota
	FocusResponse
)

// AppMode represents the current input mode.
type AppMode int

const (
	ModeNormal AppMode = iota
	ModeInsert
	ModeCommandPalette
)

func (m AppMode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeInsert:
		return "INSERT"
	case ModeCommandPalette:
		return "COMMAND"
	default:
		return "UNKNOWN"
	}
}

// FocusPanelMsg requests focus change to a specific panel.
type FocusPanelMsg struct {
	Panel PanelFocus
}

// SendRequestMsg triggers sending the current body to the target endpoint.
type SendRequestMsg struct{}

// RequestSentMsg is emitted when a send completes. Outcome is always set;
// GeneratedBody is non-empty when the notes were auto-converted on the way
// out.
type RequestSentMsg struct {
	Outcome       dispatch.Outcome
	GeneratedBody string
}

// SendRefusedMsg is emitted when a send is aborted before any network call
// (validation or configuration failure).
type SendRefusedMsg struct {
	Err error
}

// GenerateChaptersMsg triggers converting the notes into chapters JSON.
type GenerateChaptersMsg struct{}

// ChaptersGeneratedMsg is emitted when generation completes.
type ChaptersGeneratedMsg struct {
	JSON string
	Err  error
}

// FormatBodyMsg pretty-prints the body if it is valid JSON.
type FormatBodyMsg struct{}

// CopyBodyMsg copies the current body text to the clipboard.
type CopyBodyMsg struct{}

// CopyResponseMsg copies the last response payload to the clipboard.
type CopyResponseMsg struct{}

// ClearResponseMsg clears the response panel.
type ClearResponseMsg struct{}

// OpenCommandPaletteMsg opens the command palette.
type OpenCommandPaletteMsg struct{}

// ShowHelpMsg toggles the help overlay.
type ShowHelpMsg struct{}

// SetModeMsg changes the app mode.
type SetModeMsg struct {
	Mode AppMode
}

// SwitchThemeMsg requests switching to a named theme. An empty name opens the
// theme picker.
type SwitchThemeMsg struct {
	Name string
}

// ToastMsg shows a toast notification.
type ToastMsg struct {
	Text     string
	Duration time.Duration
	IsError  bool
}
