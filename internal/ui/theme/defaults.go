package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CatppuccinMocha is the default dark theme.
var CatppuccinMocha = Theme{
	Name:    "Catppuccin Mocha",
	Base:    lipgloss.Color("#1e1e2e"),
	Mantle:  lipgloss.Color("#181825"),
	Surface: lipgloss.Color("#313244"),
	Overlay: lipgloss.Color("#45475a"),

	Text:    lipgloss.Color("#cdd6f4"),
	Subtext: lipgloss.Color("#a6adc8"),
	Muted:   lipgloss.Color("#585b70"),

	Mauve:    lipgloss.Color("#cba6f7"),
	Red:      lipgloss.Color("#f38ba8"),
	Peach:    lipgloss.Color("#fab387"),
	Yellow:   lipgloss.Color("#f9e2af"),
	Green:    lipgloss.Color("#a6e3a1"),
	Teal:     lipgloss.Color("#94e2d5"),
	Blue:     lipgloss.Color("#89b4fa"),
	Lavender: lipgloss.Color("#b4befe"),

	BorderFocused:   lipgloss.Color("#cba6f7"),
	BorderUnfocused: lipgloss.Color("#585b70"),
}

// Gruvbox is a warm dark theme.
var Gruvbox = Theme{
	Name:    "Gruvbox",
	Base:    lipgloss.Color("#282828"),
	Mantle:  lipgloss.Color("#1d2021"),
	Surface: lipgloss.Color("#3c3836"),
	Overlay: lipgloss.Color("#504945"),

	Text:    lipgloss.Color("#ebdbb2"),
	Subtext: lipgloss.Color("#bdae93"),
	Muted:   lipgloss.Color("#665c54"),

	Mauve:    lipgloss.Color("#d3869b"),
	Red:      lipgloss.Color("#fb4934"),
	Peach:    lipgloss.Color("#fe8019"),
	Yellow:   lipgloss.Color("#fabd2f"),
	Green:    lipgloss.Color("#b8bb26"),
	Teal:     lipgloss.Color("#8ec07c"),
	Blue:     lipgloss.Color("#83a598"),
	Lavender: lipgloss.Color("#d5c4a1"),

	BorderFocused:   lipgloss.Color("#fabd2f"),
	BorderUnfocused: lipgloss.Color("#665c54"),
}

var catalog = []Theme{CatppuccinMocha, Gruvbox}

// Default returns the default theme.
func Default() Theme {
	return CatppuccinMocha
}

// Names lists the built-in theme names.
func Names() []string {
	names := make([]string, len(catalog))
	for i, t := range catalog {
		names[i] = t.Name
	}
	return names
}

// Resolve looks up a theme by name, falling back to the default. Lookup is
// case-insensitive and tolerates dashes for spaces.
func Resolve(name string) Theme {
	key := normalizeKey(name)
	for _, t := range catalog {
		if normalizeKey(t.Name) == key {
			return t
		}
	}
	return Default()
}

func normalizeKey(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", " ")
}
