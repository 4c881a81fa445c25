package layout

// PanelLayout holds calculated dimensions for the two-panel layout.
type PanelLayout struct {
	Width  int
	Height int

	FormWidth     int
	ResponseWidth int

	ContentHeight int // height minus title bar and status bar

	Stacked bool // panels stacked vertically on narrow terminals
}

const (
	titleBarHeight  = 1
	statusBarHeight = 1
	minPanelWidth   = 34
)

// Calculate computes the panel layout from terminal dimensions.
func Calculate(width, height int) PanelLayout {
	l := PanelLayout{
		Width:         width,
		Height:        height,
		ContentHeight: height - titleBarHeight - statusBarHeight,
	}
	if l.ContentHeight < 1 {
		l.ContentHeight = 1
	}

	if width < minPanelWidth*2 {
		l.Stacked = true
		l.FormWidth = width
		l.ResponseWidth = width
		return l
	}

	half := width / 2
	l.FormWidth = half
	l.ResponseWidth = width - half
	return l
}
