package lspace

import (
	"image/color"
	"path/filepath"
	"testing"
)

func rgbaAt(s *GGSurface, x, y int) color.RGBA {
	return color.RGBAModel.Convert(s.Image().At(x, y)).(color.RGBA)
}

func TestGGSurface_FilledBorder(t *testing.T) {
	red, _ := HexColour("#ff0000")
	blue, _ := HexColour("#0000ff")
	filled, err := FilledBorder(10, 10, 10, 10, 0, &red)
	if err != nil {
		t.Fatalf("FilledBorder() error: %v", err)
	}
	inner, err := FilledBorder(5, 5, 5, 5, 0, &blue)
	if err != nil {
		t.Fatalf("FilledBorder() error: %v", err)
	}
	empty := mustColumn(t, 0)
	root := mustBorder(t, mustBorder(t, empty, inner), filled)

	a := newMonoArea(t, root, WithBackground(White))
	if err := a.OnSizeAllocate(60, 60); err != nil {
		t.Fatalf("OnSizeAllocate() error: %v", err)
	}
	s := NewImageSurface(60, 60, nil)
	if err := a.OnDraw(s); err != nil {
		t.Fatalf("OnDraw() error: %v", err)
	}

	type tc struct {
		x, y int
		want color.RGBA
	}

	tests := map[string]tc{
		"outer margin":  {x: 3, y: 3, want: color.RGBA{R: 255, A: 255}},
		"inner box":     {x: 15, y: 15, want: color.RGBA{B: 255, A: 255}},
		"outside root":  {x: 50, y: 50, want: color.RGBA{R: 255, G: 255, B: 255, A: 255}},
		"right of root": {x: 35, y: 5, want: color.RGBA{R: 255, G: 255, B: 255, A: 255}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := rgbaAt(s, tt.x, tt.y); got != tt.want {
				t.Errorf("pixel (%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestGGSurface_Text(t *testing.T) {
	root := mustText(t, "MMMM", DefaultTextStyle())
	a, err := NewArea(root, WithBackground(White))
	if err != nil {
		t.Fatalf("NewArea() error: %v", err)
	}
	defer a.Destroy()
	if err := a.OnSizeAllocate(100, 30); err != nil {
		t.Fatalf("OnSizeAllocate() error: %v", err)
	}

	s := NewImageSurface(100, 30, a.Faces())
	if err := a.OnDraw(s); err != nil {
		t.Fatalf("OnDraw() error: %v", err)
	}

	dark := 0
	for y := 0; y < 30; y++ {
		for x := 0; x < 100; x++ {
			if c := rgbaAt(s, x, y); c.R < 128 {
				dark++
			}
		}
	}
	if dark == 0 {
		t.Error("no text pixels were painted")
	}

	path := filepath.Join(t.TempDir(), "text.png")
	if err := s.SavePNG(path); err != nil {
		t.Errorf("SavePNG() error: %v", err)
	}
}

func TestGGSurface_ShowTextKeepsColour(t *testing.T) {
	red, _ := HexColour("#ff0000")
	s := NewImageSurface(40, 40, nil)

	s.SetColour(red)
	s.ShowText(0, 10, "x", DefaultTextStyle())
	s.NewPath()
	s.Rectangle(20, 20, 20, 20)
	s.Fill()

	if got, want := rgbaAt(s, 30, 30), (color.RGBA{R: 255, A: 255}); got != want {
		t.Errorf("fill after ShowText = %v, want %v", got, want)
	}
}
