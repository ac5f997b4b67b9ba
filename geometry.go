// geometry.go re-exports geometry types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package lspace

import "github.com/grindlemire/go-lspace/internal/layout"

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Size represents a width/height pair.
type Size = layout.Size

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return layout.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n float64) Edges {
	return layout.EdgeAll(n)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l float64) Edges {
	return layout.EdgeTRBL(t, r, b, l)
}

// Geometry is the computed layout of one occurrence of a node. A node shared
// by several parents gets a separate Geometry for each occurrence.
//
// Rect is relative to the parent geometry; the root's Rect is at the origin.
type Geometry struct {
	Pres     Pres
	Rect     Rect
	Children []*Geometry

	// Lines holds the wrapped lines of a text node, relative to Rect.
	Lines []TextLine

	// FlowLines holds the line boxes of a flow node, relative to Rect.
	FlowLines []FlowLine

	// Baseline is the distance from the top of Rect to the baseline that
	// rows and flow lines align on. It is only meaningful if HasBaseline is
	// set: text has one, borders and rows pass one up from their children,
	// columns and flows have none.
	Baseline    float64
	HasBaseline bool
}

// TextLine is one wrapped line of a text node.
type TextLine struct {
	Text string
	Rect Rect

	// Ascent is the distance from the top of Rect to the baseline.
	Ascent float64
}

// FlowLine is one line of a flow node, holding children [Start, End).
type FlowLine struct {
	Start, End int
	Rect       Rect

	// Baseline is the distance from the top of Rect to the shared baseline
	// of the line's children. Zero if no child has a baseline.
	Baseline float64
}

// Size returns the geometry's width and height.
func (g *Geometry) Size() Size {
	return g.Rect.Size()
}

// Walk calls fn for g and each descendant in pre-order with its absolute
// rectangle and depth. Returning false from fn skips that node's children.
func (g *Geometry) Walk(fn func(g *Geometry, abs Rect, depth int) bool) {
	if g == nil {
		return
	}
	g.walk(0, 0, 0, fn)
}

func (g *Geometry) walk(ox, oy float64, depth int, fn func(*Geometry, Rect, int) bool) {
	abs := g.Rect.Translate(ox, oy)
	if !fn(g, abs, depth) {
		return
	}
	for _, c := range g.Children {
		c.walk(abs.X, abs.Y, depth+1, fn)
	}
}

// Count returns the number of geometries in the tree rooted at g.
func (g *Geometry) Count() int {
	n := 0
	g.Walk(func(*Geometry, Rect, int) bool {
		n++
		return true
	})
	return n
}
