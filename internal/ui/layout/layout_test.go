package layout

import "testing"

func TestCalculate_SideBySide(t *testing.T) {
	l := Calculate(120, 40)

	if l.Stacked {
		t.Error("wide terminal should not stack")
	}
	if l.FormWidth+l.ResponseWidth != 120 {
		t.Errorf("panel widths should fill the terminal, got %d + %d", l.FormWidth, l.ResponseWidth)
	}
	if l.ContentHeight != 38 {
		t.Errorf("expected content height 38, got %d", l.ContentHeight)
	}
}

func TestCalculate_OddWidth(t *testing.T) {
	l := Calculate(121, 40)
	if l.FormWidth+l.ResponseWidth != 121 {
		t.Errorf("odd width should still fill, got %d + %d", l.FormWidth, l.ResponseWidth)
	}
}

func TestCalculate_Stacked(t *testing.T) {
	l := Calculate(60, 24)

	if !l.Stacked {
		t.Error("narrow terminal should stack")
	}
	if l.FormWidth != 60 || l.ResponseWidth != 60 {
		t.Errorf("stacked panels should use the full width, got %d / %d", l.FormWidth, l.ResponseWidth)
	}
}

func TestCalculate_TinyHeight(t *testing.T) {
	l := Calculate(120, 1)
	if l.ContentHeight < 1 {
		t.Errorf("content height must stay positive, got %d", l.ContentHeight)
	}
}
