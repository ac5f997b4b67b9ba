package lspace

import (
	"image"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// FaceSource supplies the font face used to paint a text style.
// *FontMeasurer is a FaceSource.
type FaceSource interface {
	Face(style TextStyle) (font.Face, error)
}

// Ensure GGSurface implements Surface.
var _ Surface = (*GGSurface)(nil)

// GGSurface paints onto a gg raster context.
type GGSurface struct {
	dc    *gg.Context
	faces FaceSource
}

// NewGGSurface wraps dc. Text is painted with faces from faces; a nil
// FaceSource leaves gg's default face in place.
func NewGGSurface(dc *gg.Context, faces FaceSource) *GGSurface {
	return &GGSurface{dc: dc, faces: faces}
}

// NewImageSurface returns a surface over a new transparent RGBA image of
// the given size.
func NewImageSurface(width, height int, faces FaceSource) *GGSurface {
	return NewGGSurface(gg.NewContext(width, height), faces)
}

// Context returns the underlying gg context.
func (s *GGSurface) Context() *gg.Context { return s.dc }

// Image returns the painted image.
func (s *GGSurface) Image() image.Image { return s.dc.Image() }

// SavePNG writes the painted image to path.
func (s *GGSurface) SavePNG(path string) error { return s.dc.SavePNG(path) }

func (s *GGSurface) Save() { s.dc.Push() }
func (s *GGSurface) Restore() { s.dc.Pop() }
func (s *GGSurface) NewPath() { s.dc.ClearPath() }
func (s *GGSurface) MoveTo(x, y float64) { s.dc.MoveTo(x, y) }
func (s *GGSurface) LineTo(x, y float64) { s.dc.LineTo(x, y) }
func (s *GGSurface) ClosePath() { s.dc.ClosePath() }
func (s *GGSurface) Fill() { s.dc.Fill() }
func (s *GGSurface) Stroke() { s.dc.Stroke() }

func (s *GGSurface) Arc(cx, cy, r, angle1, angle2 float64) {
	s.dc.DrawArc(cx, cy, r, angle1, angle2)
}

func (s *GGSurface) Rectangle(x, y, w, h float64) {
	s.dc.DrawRectangle(x, y, w, h)
}

func (s *GGSurface) SetColour(c Colour) {
	s.dc.SetRGBA(c.r, c.g, c.b, c.a)
}

func (s *GGSurface) SetLineWidth(w float64) {
	s.dc.SetLineWidth(w)
}

// ShowText paints text with its baseline at y. The current path, colour and
// face are left untouched.
func (s *GGSurface) ShowText(x, y float64, text string, style TextStyle) {
	s.dc.Push()
	defer s.dc.Pop()

	if s.faces != nil {
		if face, err := s.faces.Face(style); err == nil {
			s.dc.SetFontFace(face)
		}
	}
	c := style.Colour()
	s.dc.SetRGBA(c.r, c.g, c.b, c.a)
	s.dc.DrawString(text, x, y)
}
