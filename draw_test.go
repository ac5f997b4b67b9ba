package lspace

import (
	"errors"
	"testing"
)

func TestDraw_NotLaidOut(t *testing.T) {
	s := NewRecordingSurface()
	if err := Draw(s, nil); !errors.Is(err, ErrNotLaidOut) {
		t.Errorf("Draw(nil) error = %v, want ErrNotLaidOut", err)
	}
	if len(s.Ops()) != 0 {
		t.Errorf("Draw(nil) recorded %v", s.Ops())
	}

	g := Layout(mustText(t, "x", monoStyle(t, 10)), 10, 10, MonoMeasurer{})
	if err := Draw(nil, g); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("Draw() with nil surface error = %v, want ErrInvalidParameter", err)
	}
}

func TestDraw_TextAtBaseline(t *testing.T) {
	style := monoStyle(t, 10)
	g := Layout(mustText(t, "aaa bbb ccc", style), 42, 0, MonoMeasurer{})

	s := NewRecordingSurface()
	if err := Draw(s, g); err != nil {
		t.Fatalf("Draw() error: %v", err)
	}

	texts := s.Texts()
	if len(texts) != 2 {
		t.Fatalf("ShowText calls = %d, want 2", len(texts))
	}
	type want struct {
		text string
		x, y float64
	}
	for i, w := range []want{{"aaa bbb", 0, 9.6}, {"ccc", 0, 21.6}} {
		got := texts[i]
		if got.Text != w.text || got.Args[0] != w.x || got.Args[1] != w.y {
			t.Errorf("text %d = %v, want %q at (%v, %v)", i, got, w.text, w.x, w.y)
		}
		if got.Style != style {
			t.Errorf("text %d style = %+v, want %+v", i, got.Style, style)
		}
	}
}

func TestDraw_SkipsBlankLines(t *testing.T) {
	g := Layout(mustText(t, "a\n\nb", monoStyle(t, 10)), 0, 0, MonoMeasurer{})
	s := NewRecordingSurface()
	if err := Draw(s, g); err != nil {
		t.Fatalf("Draw() error: %v", err)
	}
	if n := s.Count(OpShowText); n != 2 {
		t.Errorf("ShowText calls = %d, want 2", n)
	}
}

func TestDraw_DecorationBeforeChildren(t *testing.T) {
	style := monoStyle(t, 10)
	bg := White
	border, err := SolidBorder(1, 2, 0, Black, &bg)
	if err != nil {
		t.Fatalf("SolidBorder() error: %v", err)
	}
	inner := mustBorder(t, mustText(t, "in", style), border)
	outer := mustBorder(t, inner, border)

	g := Layout(outer, 200, 0, MonoMeasurer{})
	s := NewRecordingSurface()
	if err := Draw(s, g); err != nil {
		t.Fatalf("Draw() error: %v", err)
	}

	var kinds []OpKind
	for _, op := range s.Ops() {
		if op.Kind == OpFill || op.Kind == OpStroke || op.Kind == OpShowText {
			kinds = append(kinds, op.Kind)
		}
	}
	want := []OpKind{OpFill, OpStroke, OpFill, OpStroke, OpShowText}
	if len(kinds) != len(want) {
		t.Fatalf("paint ops = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("paint op %d = %v, want %v", i, kinds[i], want[i])
		}
	}
	if !s.Balanced() {
		t.Error("Save/Restore should be balanced")
	}
}

func TestDraw_AbsolutePositions(t *testing.T) {
	style := monoStyle(t, 10)
	root := mustColumn(t, 5,
		mustText(t, "top", style),
		mustBorder(t, mustText(t, "in", style), mustSolid(t, 1, 2, 0)),
	)
	g := Layout(root, 200, 0, MonoMeasurer{})

	s := NewRecordingSurface()
	if err := Draw(s, g); err != nil {
		t.Fatalf("Draw() error: %v", err)
	}

	texts := s.Texts()
	if len(texts) != 2 {
		t.Fatalf("ShowText calls = %d, want 2", len(texts))
	}
	// Border at y=17, child offset by 3 on both axes.
	if got := texts[1]; got.Args[0] != 3 || got.Args[1] != 17+3+9.6 {
		t.Errorf("inner text at (%v, %v), want (3, %v)", got.Args[0], got.Args[1], 17+3+9.6)
	}
	var rect Op
	for _, op := range s.Ops() {
		if op.Kind == OpRectangle {
			rect = op
		}
	}
	want := []float64{0.5, 17.5, 17, 17}
	for i := range want {
		if rect.Args[i] != want[i] {
			t.Errorf("outline = %v, want %v", rect.Args, want)
			break
		}
	}
}

func TestDrawVisible_Culls(t *testing.T) {
	style := monoStyle(t, 10)
	root := mustColumn(t, 0,
		mustText(t, "one", style),
		mustText(t, "two", style),
		mustText(t, "three", style),
	)
	g := Layout(root, 100, 0, MonoMeasurer{})

	type tc struct {
		visible Rect
		want    []string
	}

	tests := map[string]tc{
		"all":         {visible: NewRect(0, 0, 100, 100), want: []string{"one", "two", "three"}},
		"middle only": {visible: NewRect(0, 12, 100, 12), want: []string{"two"}},
		"last two":    {visible: NewRect(0, 20, 100, 100), want: []string{"two", "three"}},
		"off to side": {visible: NewRect(200, 0, 100, 100), want: nil},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := NewRecordingSurface()
			if err := DrawVisible(s, g, tt.visible); err != nil {
				t.Fatalf("DrawVisible() error: %v", err)
			}
			var got []string
			for _, op := range s.Texts() {
				got = append(got, op.Text)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("texts = %q, want %q", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("text %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDraw_DoesNotModifyGeometry(t *testing.T) {
	style := monoStyle(t, 10)
	root := mustBorder(t, mustText(t, "a b c", style), mustSolid(t, 1, 1, 2))
	g := Layout(root, 20, 0, MonoMeasurer{})
	before := *g.Children[0]

	if err := Draw(NewRecordingSurface(), g); err != nil {
		t.Fatalf("Draw() error: %v", err)
	}
	if g.Children[0].Rect != before.Rect || len(g.Children[0].Lines) != len(before.Lines) {
		t.Error("Draw() modified the geometry")
	}
}

func TestDraw_MixedSizesShareBaseline(t *testing.T) {
	kids := []Pres{mustText(t, "small", monoStyle(t, 10)), mustText(t, "BIG", monoStyle(t, 30))}
	g := Layout(mustFlow(t, 4, 0, NoIndent(), kids...), 0, 0, MonoMeasurer{})

	s := NewRecordingSurface()
	if err := Draw(s, g); err != nil {
		t.Fatalf("Draw() error: %v", err)
	}
	texts := s.Texts()
	if len(texts) != 2 {
		t.Fatalf("ShowText calls = %d, want 2", len(texts))
	}
	for _, op := range texts {
		if !approxEqual(op.Args[1], 28.8) {
			t.Errorf("%q drawn at baseline y = %v, want 28.8", op.Text, op.Args[1])
		}
	}
}
