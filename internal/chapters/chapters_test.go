package chapters

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		parsed bool
	}{
		{"object", `{"chapters":[]}`, true},
		{"array", `[1,2,3]`, true},
		{"leading whitespace", "\n  {\"a\":1}", true},
		{"empty", "", false},
		{"whitespace only", "   \n", false},
		{"notes", "0:00 intro\n1:30 setup", false},
		{"truncated", `{"chapters":[`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Classify(tt.in)
			if c.Parsed != tt.parsed {
				t.Errorf("Classify(%q).Parsed = %v, want %v", tt.in, c.Parsed, tt.parsed)
			}
			if tt.parsed && len(c.Raw) == 0 {
				t.Error("parsed classification should carry the raw document")
			}
		})
	}
}

func TestDecode(t *testing.T) {
	list, err := Decode(`{"chapters":[{"title":"Intro","start":0,"end":60},{"title":"Outro","start":60}]}`)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(list.Chapters) != 2 {
		t.Fatalf("expected 2 chapters, got %d", len(list.Chapters))
	}
	if list.Chapters[0].Title != "Intro" || list.Chapters[0].Start != 0 {
		t.Errorf("unexpected first chapter: %+v", list.Chapters[0])
	}
	if list.Chapters[0].End == nil || *list.Chapters[0].End != 60 {
		t.Error("first chapter should end at 60")
	}
	if list.Chapters[1].End != nil {
		t.Error("last chapter should omit end")
	}
}

func TestDecode_Invalid(t *testing.T) {
	if _, err := Decode("not json"); err == nil {
		t.Error("expected error for non-JSON input")
	}
}
