package layout

// Line is a run of consecutive boxes, [Start, End), packed onto one line.
type Line struct {
	Start, End int

	// X is the line's starting offset (its indent).
	X float64

	// Width is the extent of the boxes and the spacing between them,
	// measured from X.
	Width float64
}

// Len returns the number of boxes on the line.
func (l Line) Len() int {
	return l.End - l.Start
}

// PackLines packs boxes of the given widths onto lines greedily.
//
// Boxes on a line are separated by spacing. The first line starts at
// firstIndent and every later line at restIndent. A box moves to a new line
// when placing it would take the line past available; a box that ends
// exactly at available stays. A box that is wider than the line on its own
// is placed alone and never split.
//
// An available width of zero or less means unconstrained: every box goes on
// a single line. No boxes yields no lines.
func PackLines(widths []float64, spacing, available, firstIndent, restIndent float64) []Line {
	if len(widths) == 0 {
		return nil
	}
	unconstrained := available <= 0

	lines := make([]Line, 0, 1)
	line := Line{Start: 0, X: firstIndent}
	x := firstIndent

	for i, w := range widths {
		next := x + w
		if i > line.Start {
			next += spacing
		}

		if !unconstrained && next > available && i > line.Start {
			line.End = i
			line.Width = x - line.X
			lines = append(lines, line)

			line = Line{Start: i, X: restIndent}
			next = restIndent + w
		}
		x = next
	}

	line.End = len(widths)
	line.Width = x - line.X
	return append(lines, line)
}
