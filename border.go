package lspace

import (
	"math"
)

// BorderKind distinguishes the two border variants.
type BorderKind uint8

const (
	// BorderSolid is an outline of a given thickness, separated from the
	// content by an inset.
	BorderSolid BorderKind = iota
	// BorderFilled is a background with independent margins on each side.
	BorderFilled
)

// String returns the variant name.
func (k BorderKind) String() string {
	switch k {
	case BorderSolid:
		return "solid"
	case BorderFilled:
		return "filled"
	default:
		return "unknown"
	}
}

// GraphicsBorder is the decoration drawn by a Border node around its child.
// It is an immutable value; create one with SolidBorder or FilledBorder.
type GraphicsBorder struct {
	kind BorderKind

	// Solid
	thickness    float64
	inset        float64
	borderColour Colour

	// Filled
	margins Edges

	rounding      float64
	background    Colour
	hasBackground bool
}

// SolidBorder returns an outline border. The child is separated from the
// box edge by thickness+inset on every side. A nil background leaves the
// inside transparent.
func SolidBorder(thickness, inset, rounding float64, borderColour Colour, background *Colour) (GraphicsBorder, error) {
	if err := checkNonNegative("border thickness", thickness); err != nil {
		return GraphicsBorder{}, err
	}
	if err := checkNonNegative("border inset", inset); err != nil {
		return GraphicsBorder{}, err
	}
	if err := checkNonNegative("border rounding", rounding); err != nil {
		return GraphicsBorder{}, err
	}

	b := GraphicsBorder{
		kind:         BorderSolid,
		thickness:    thickness,
		inset:        inset,
		rounding:     rounding,
		borderColour: borderColour,
	}
	if background != nil {
		b.background, b.hasBackground = *background, true
	}
	return b, nil
}

// FilledBorder returns a border that paints an optional background and
// separates the child from the box edge by the given margins.
func FilledBorder(left, right, top, bottom, rounding float64, background *Colour) (GraphicsBorder, error) {
	for _, m := range [...]struct {
		name string
		v    float64
	}{{"left margin", left}, {"right margin", right}, {"top margin", top}, {"bottom margin", bottom}, {"border rounding", rounding}} {
		if err := checkNonNegative(m.name, m.v); err != nil {
			return GraphicsBorder{}, err
		}
	}

	b := GraphicsBorder{
		kind:     BorderFilled,
		margins:  Edges{Top: top, Right: right, Bottom: bottom, Left: left},
		rounding: rounding,
	}
	if background != nil {
		b.background, b.hasBackground = *background, true
	}
	return b, nil
}

// Kind returns the border variant.
func (b GraphicsBorder) Kind() BorderKind { return b.kind }

// Thickness returns the outline thickness. Always 0 for filled borders.
func (b GraphicsBorder) Thickness() float64 { return b.thickness }

// Inset returns the gap between outline and child. Always 0 for filled borders.
func (b GraphicsBorder) Inset() float64 { return b.inset }

// Rounding returns the corner radius.
func (b GraphicsBorder) Rounding() float64 { return b.rounding }

// BorderColour returns the outline colour of a solid border.
func (b GraphicsBorder) BorderColour() Colour { return b.borderColour }

// Background returns the background colour and whether one is set.
func (b GraphicsBorder) Background() (Colour, bool) {
	return b.background, b.hasBackground
}

// Margins returns the space the border adds on each side of its child.
// A solid border adds thickness+inset everywhere.
func (b GraphicsBorder) Margins() Edges {
	if b.kind == BorderSolid {
		return EdgeAll(b.thickness + b.inset)
	}
	return b.margins
}

// Surround wraps child in a Border node decorated by b.
func (b GraphicsBorder) Surround(child Pres) (*BorderNode, error) {
	return NewBorder(child, b)
}

// drawBackground fills the border's background, if it has one, over the box r.
func (b GraphicsBorder) drawBackground(s Surface, r Rect) {
	if !b.hasBackground {
		return
	}
	s.NewPath()
	b.path(s, r)
	s.SetColour(b.background)
	s.Fill()
}

// drawOutline strokes a solid border's outline inside the box r.
func (b GraphicsBorder) drawOutline(s Surface, r Rect) {
	if b.kind != BorderSolid || b.thickness <= 0 {
		return
	}
	s.Save()
	s.NewPath()
	b.path(s, r)
	s.SetLineWidth(b.thickness)
	s.SetColour(b.borderColour)
	s.Stroke()
	s.Restore()
}

// path adds the border's outline to the current path. A solid border's
// path runs through the middle of its stroke so the stroke stays inside r.
func (b GraphicsBorder) path(s Surface, r Rect) {
	if b.kind == BorderSolid {
		r = r.Inset(EdgeAll(b.thickness * 0.5))
	}
	roundedRectPath(s, r, b.rounding)
}

// roundedRectPath adds a rectangle with corners of the given radius. The
// radius is clamped so that opposite arcs never overlap.
func roundedRectPath(s Surface, r Rect, rounding float64) {
	if rounding <= 0 {
		s.Rectangle(r.X, r.Y, r.Width, r.Height)
		return
	}

	rad := min(rounding, r.Width*0.5, r.Height*0.5)
	if rad <= 0 {
		s.Rectangle(r.X, r.Y, r.Width, r.Height)
		return
	}
	innerW := r.Width - rad*2
	innerH := r.Height - rad*2
	x, y, w, h := r.X, r.Y, r.Width, r.Height

	// Counter-clockwise from the top edge, starting after the top-left arc.
	s.MoveTo(x+rad, y)
	s.Arc(x+rad, y+rad, rad, math.Pi*1.5, math.Pi)
	if innerH > 0 {
		s.LineTo(x, y+h-rad)
	}
	s.Arc(x+rad, y+h-rad, rad, math.Pi, math.Pi*0.5)
	if innerW > 0 {
		s.LineTo(x+w-rad, y+h)
	}
	s.Arc(x+w-rad, y+h-rad, rad, math.Pi*0.5, 0)
	if innerH > 0 {
		s.LineTo(x+w, y+rad)
	}
	s.Arc(x+w-rad, y+rad, rad, 0, -math.Pi*0.5)
	s.ClosePath()
}

func checkNonNegative(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return invalidParam("%s %v must be a non-negative number", name, v)
	}
	return nil
}
