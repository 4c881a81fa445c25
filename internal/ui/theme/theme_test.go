package theme

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Catppuccin Mocha", "Catppuccin Mocha"},
		{"catppuccin-mocha", "Catppuccin Mocha"},
		{"GRUVBOX", "Gruvbox"},
		{"  gruvbox  ", "Gruvbox"},
		{"no-such-theme", "Catppuccin Mocha"},
		{"", "Catppuccin Mocha"},
	}
	for _, tt := range tests {
		if got := Resolve(tt.in); got.Name != tt.want {
			t.Errorf("Resolve(%q) = %s, want %s", tt.in, got.Name, tt.want)
		}
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) == 0 {
		t.Fatal("expected at least one theme")
	}
	if names[0] != Default().Name {
		t.Errorf("default theme should come first, got %s", names[0])
	}
}

func TestStatusColor(t *testing.T) {
	th := Default()
	tests := []struct {
		code int
		want string
	}{
		{200, string(th.Green)},
		{204, string(th.Green)},
		{301, string(th.Blue)},
		{404, string(th.Yellow)},
		{500, string(th.Red)},
		{0, string(th.Red)},
	}
	for _, tt := range tests {
		if got := string(th.StatusColor(tt.code)); got != tt.want {
			t.Errorf("StatusColor(%d) = %s, want %s", tt.code, got, tt.want)
		}
	}
}
