package lspace

import "testing"

// monoStyle returns a style whose MonoMeasurer metrics are easy to reason
// about: at size 10 every cell is 6 wide and every line 12 tall.
func monoStyle(t *testing.T, size float64) TextStyle {
	t.Helper()
	s, err := NewTextStyle("Monospace", false, false, size, Black)
	if err != nil {
		t.Fatalf("NewTextStyle() error: %v", err)
	}
	return s
}

func mustText(t *testing.T, text string, style TextStyle) *TextNode {
	t.Helper()
	n, err := NewText(text, style)
	if err != nil {
		t.Fatalf("NewText(%q) error: %v", text, err)
	}
	return n
}

func mustColumn(t *testing.T, spacing float64, children ...Pres) *ColumnNode {
	t.Helper()
	n, err := NewColumn(children, spacing)
	if err != nil {
		t.Fatalf("NewColumn() error: %v", err)
	}
	return n
}

func mustRow(t *testing.T, spacing float64, children ...Pres) *RowNode {
	t.Helper()
	n, err := NewRow(children, spacing)
	if err != nil {
		t.Fatalf("NewRow() error: %v", err)
	}
	return n
}

func mustFlow(t *testing.T, xSpacing, ySpacing float64, indent FlowIndent, children ...Pres) *FlowNode {
	t.Helper()
	n, err := NewFlow(children, xSpacing, ySpacing, indent)
	if err != nil {
		t.Fatalf("NewFlow() error: %v", err)
	}
	return n
}

func mustSolid(t *testing.T, thickness, inset, rounding float64) GraphicsBorder {
	t.Helper()
	b, err := SolidBorder(thickness, inset, rounding, Black, nil)
	if err != nil {
		t.Fatalf("SolidBorder() error: %v", err)
	}
	return b
}

func mustBorder(t *testing.T, child Pres, b GraphicsBorder) *BorderNode {
	t.Helper()
	n, err := NewBorder(child, b)
	if err != nil {
		t.Fatalf("NewBorder() error: %v", err)
	}
	return n
}

// words returns n text nodes of the given cell counts in monoStyle(10).
func words(t *testing.T, cells ...int) []Pres {
	t.Helper()
	style := monoStyle(t, 10)
	out := make([]Pres, len(cells))
	for i, c := range cells {
		text := make([]byte, c)
		for j := range text {
			text[j] = 'a' + byte(i%26)
		}
		out[i] = mustText(t, string(text), style)
	}
	return out
}
