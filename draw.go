package lspace

// Draw paints g and its descendants onto s. Decoration is painted before
// children so that children appear on top. Draw reads but never modifies
// the geometry or presentation trees.
//
// Draw returns ErrNotLaidOut if g is nil.
func Draw(s Surface, g *Geometry) error {
	if err := checkDraw(s, g); err != nil {
		return err
	}
	drawGeometry(s, g, 0, 0, nil)
	return nil
}

// DrawVisible is like Draw but skips every subtree whose absolute rectangle
// does not intersect visible.
func DrawVisible(s Surface, g *Geometry, visible Rect) error {
	if err := checkDraw(s, g); err != nil {
		return err
	}
	drawGeometry(s, g, 0, 0, &visible)
	return nil
}

func checkDraw(s Surface, g *Geometry) error {
	if s == nil {
		return invalidParam("surface is nil")
	}
	if g == nil {
		return ErrNotLaidOut
	}
	return nil
}

// drawGeometry paints g offset by its parent's absolute origin (ox, oy).
func drawGeometry(s Surface, g *Geometry, ox, oy float64, visible *Rect) {
	abs := g.Rect.Translate(ox, oy)
	if visible != nil && !abs.Intersects(*visible) {
		return
	}

	switch n := g.Pres.(type) {
	case *TextNode:
		for _, l := range g.Lines {
			if l.Text == "" {
				continue
			}
			s.ShowText(abs.X+l.Rect.X, abs.Y+l.Rect.Y+l.Ascent, l.Text, n.style)
		}
	case *BorderNode:
		n.border.drawBackground(s, abs)
		n.border.drawOutline(s, abs)
	}

	for _, c := range g.Children {
		drawGeometry(s, c, abs.X, abs.Y, visible)
	}
}
