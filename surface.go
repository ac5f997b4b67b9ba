package lspace

// Surface is a 2D vector drawing context. Paths are built with NewPath,
// MoveTo, LineTo, Arc, ClosePath and Rectangle, then painted with Fill or
// Stroke, both of which consume the current path.
//
// Coordinates are absolute device units with y growing downwards. Angles are
// in radians; Arc sweeps from angle1 to angle2 in whichever direction the
// sign of angle2-angle1 gives.
type Surface interface {
	// Save pushes the current colour and line width.
	Save()
	// Restore pops the state pushed by the matching Save.
	Restore()

	NewPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Arc(cx, cy, r, angle1, angle2 float64)
	ClosePath()
	Rectangle(x, y, w, h float64)

	SetColour(c Colour)
	SetLineWidth(w float64)
	Fill()
	Stroke()

	// ShowText paints a glyph run whose baseline starts at (x, y), using the
	// family, weight, slant, size and colour of style.
	ShowText(x, y float64, text string, style TextStyle)
}
