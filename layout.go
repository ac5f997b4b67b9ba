package lspace

import (
	"strings"

	"github.com/grindlemire/go-lspace/internal/layout"
)

// Layout computes the geometry of p for an available width and height.
// The result is a pure function of its inputs: laying out the same tree
// with the same measurer and sizes always yields equal geometry.
//
// A width of zero or less means unconstrained: text and flows are not
// wrapped. The node kinds size vertically from their content, so height
// does not affect the result; it is accepted for callers that pass a full
// allocation. A nil measurer measures with MonoMeasurer. A nil node yields
// nil geometry.
func Layout(p Pres, width, height float64, m Measurer) *Geometry {
	if isNilPres(p) {
		return nil
	}
	if m == nil {
		m = MonoMeasurer{}
	}
	e := &layoutEngine{m: m}
	return e.layout(p, width)
}

type layoutEngine struct {
	m Measurer
}

func (e *layoutEngine) layout(p Pres, width float64) *Geometry {
	switch n := p.(type) {
	case *TextNode:
		return e.layoutText(n, width)
	case *BorderNode:
		return e.layoutBorder(n, width)
	case *ColumnNode:
		return e.layoutColumn(n, width)
	case *RowNode:
		return e.layoutRow(n, width)
	case *FlowNode:
		return e.layoutFlow(n, width)
	default:
		return &Geometry{Pres: p}
	}
}

// layoutText wraps each hard line of the text greedily at word boundaries.
// Words are never split; a word wider than the line sits alone on it.
func (e *layoutEngine) layoutText(n *TextNode, width float64) *Geometry {
	style := n.style
	metrics := e.m.Metrics(style)
	space := e.m.TextWidth(" ", style)

	g := &Geometry{Pres: n}
	var y, maxWidth float64

	for _, para := range strings.Split(n.text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			g.Lines = append(g.Lines, TextLine{
				Rect:   Rect{Y: y, Height: metrics.Height},
				Ascent: metrics.Ascent,
			})
			y += metrics.Height
			continue
		}

		widths := make([]float64, len(words))
		for i, w := range words {
			widths[i] = e.m.TextWidth(w, style)
		}

		for _, l := range layout.PackLines(widths, space, width, 0, 0) {
			g.Lines = append(g.Lines, TextLine{
				Text:   strings.Join(words[l.Start:l.End], " "),
				Rect:   Rect{X: l.X, Y: y, Width: l.Width, Height: metrics.Height},
				Ascent: metrics.Ascent,
			})
			y += metrics.Height
			maxWidth = max(maxWidth, l.X+l.Width)
		}
	}

	g.Rect = Rect{Width: maxWidth, Height: y}
	g.Baseline, g.HasBaseline = metrics.Ascent, true
	return g
}

// layoutBorder lays the child out inside the border's margins. The child's
// baseline, if any, is carried through shifted by the top margin.
func (e *layoutEngine) layoutBorder(n *BorderNode, width float64) *Geometry {
	margins := n.border.Margins()

	childWidth := width
	if width > 0 {
		childWidth = width - margins.Horizontal()
	}
	child := e.layout(n.child, childWidth)

	outer := child.Rect.Outset(margins)
	child.Rect = child.Rect.Translate(-outer.X, -outer.Y)

	g := &Geometry{
		Pres:     n,
		Rect:     Rect{Width: outer.Width, Height: outer.Height},
		Children: []*Geometry{child},
	}
	if child.HasBaseline {
		g.Baseline, g.HasBaseline = child.Rect.Y+child.Baseline, true
	}
	return g
}

// layoutColumn stacks children top to bottom, left aligned.
func (e *layoutEngine) layoutColumn(n *ColumnNode, width float64) *Geometry {
	g := &Geometry{Pres: n, Children: make([]*Geometry, 0, len(n.children))}
	var y, maxWidth float64

	for i, c := range n.children {
		if i > 0 {
			y += n.ySpacing
		}
		cg := e.layout(c, width)
		cg.Rect.X, cg.Rect.Y = 0, y
		y += cg.Rect.Height
		maxWidth = max(maxWidth, cg.Rect.Width)
		g.Children = append(g.Children, cg)
	}

	g.Rect = Rect{Width: maxWidth, Height: y}
	return g
}

// layoutRow places children left to right on a shared baseline. Children
// without a baseline are top aligned.
func (e *layoutEngine) layoutRow(n *RowNode, width float64) *Geometry {
	g := &Geometry{Pres: n, Children: make([]*Geometry, 0, len(n.children))}
	var x float64

	for i, c := range n.children {
		if i > 0 {
			x += n.xSpacing
		}
		cg := e.layout(c, width)
		cg.Rect.X = x
		x += cg.Rect.Width
		g.Children = append(g.Children, cg)
	}

	height, baseline, ok := alignBaselines(g.Children, 0)
	g.Rect = Rect{Width: x, Height: height}
	g.Baseline, g.HasBaseline = baseline, ok
	return g
}

// layoutFlow packs children at their natural size onto lines. The children
// of a line share a baseline; children without one are top aligned.
func (e *layoutEngine) layoutFlow(n *FlowNode, width float64) *Geometry {
	g := &Geometry{Pres: n, Children: make([]*Geometry, 0, len(n.children))}

	widths := make([]float64, len(n.children))
	for i, c := range n.children {
		cg := e.layout(c, 0)
		widths[i] = cg.Rect.Width
		g.Children = append(g.Children, cg)
	}

	first, rest := n.indent.lineOffsets()
	var y, maxWidth float64

	for li, l := range layout.PackLines(widths, n.xSpacing, width, first, rest) {
		if li > 0 {
			y += n.ySpacing
		}

		x := l.X
		for i := l.Start; i < l.End; i++ {
			if i > l.Start {
				x += n.xSpacing
			}
			g.Children[i].Rect.X = x
			x += g.Children[i].Rect.Width
		}
		lineHeight, baseline, _ := alignBaselines(g.Children[l.Start:l.End], y)

		g.FlowLines = append(g.FlowLines, FlowLine{
			Start:    l.Start,
			End:      l.End,
			Rect:     Rect{X: l.X, Y: y, Width: l.Width, Height: lineHeight},
			Baseline: baseline,
		})
		y += lineHeight
		maxWidth = max(maxWidth, l.X+l.Width)
	}

	g.Rect = Rect{Width: maxWidth, Height: y}
	return g
}

// alignBaselines sets the Y of each child so that every child with a
// baseline has it at the same distance below top. Children without a
// baseline are placed at top. It returns the height of the aligned boxes
// and their baseline relative to top.
func alignBaselines(children []*Geometry, top float64) (height, baseline float64, ok bool) {
	for _, c := range children {
		if c.HasBaseline {
			baseline, ok = max(baseline, c.Baseline), true
		}
	}

	for _, c := range children {
		var shift float64
		if c.HasBaseline {
			shift = baseline - c.Baseline
		}
		c.Rect.Y = top + shift
		height = max(height, shift+c.Rect.Height)
	}
	return height, baseline, ok
}
