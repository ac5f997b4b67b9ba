package lspace

import (
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Kind identifies the variant of a presentation node.
type Kind uint8

const (
	KindText   Kind = iota // A styled run of text, word-wrapped
	KindBorder             // A decoration around one child
	KindColumn             // Children stacked top-to-bottom
	KindRow                // Children placed left-to-right
	KindFlow               // Children wrapped onto lines like words
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindBorder:
		return "border"
	case KindColumn:
		return "column"
	case KindRow:
		return "row"
	case KindFlow:
		return "flow"
	default:
		return "unknown"
	}
}

// Pres is an immutable presentation node. Nodes may be shared by any number
// of parents and trees; identity, not content, distinguishes two nodes.
//
// The implementations are *TextNode, *BorderNode, *ColumnNode, *RowNode and
// *FlowNode.
type Pres interface {
	// Kind returns the node variant.
	Kind() Kind

	pres()
}

var (
	_ Pres = (*TextNode)(nil)
	_ Pres = (*BorderNode)(nil)
	_ Pres = (*ColumnNode)(nil)
	_ Pres = (*RowNode)(nil)
	_ Pres = (*FlowNode)(nil)
)

// TextNode is a run of text in a single style.
type TextNode struct {
	text  string
	style TextStyle
}

// NewText returns a text node. The text is stored in Unicode NFC form.
func NewText(text string, style TextStyle) (*TextNode, error) {
	if style.family == "" || style.size <= 0 {
		return nil, invalidParam("text style is not initialised")
	}
	return &TextNode{text: norm.NFC.String(text), style: style}, nil
}

// Kind returns KindText.
func (*TextNode) Kind() Kind { return KindText }
func (*TextNode) pres() {}

// Text returns the node's text.
func (t *TextNode) Text() string { return t.text }

// Style returns the node's text style.
func (t *TextNode) Style() TextStyle { return t.style }

// BorderNode decorates a single child.
type BorderNode struct {
	child  Pres
	border GraphicsBorder
}

// NewBorder returns a node that draws border around child.
func NewBorder(child Pres, border GraphicsBorder) (*BorderNode, error) {
	if isNilPres(child) {
		return nil, invalidParam("border child is nil")
	}
	return &BorderNode{child: child, border: border}, nil
}

// Kind returns KindBorder.
func (*BorderNode) Kind() Kind { return KindBorder }
func (*BorderNode) pres() {}

// Child returns the decorated node.
func (b *BorderNode) Child() Pres { return b.child }

// Border returns the decoration.
func (b *BorderNode) Border() GraphicsBorder { return b.border }

// ColumnNode stacks its children vertically.
type ColumnNode struct {
	children []Pres
	ySpacing float64
}

// NewColumn returns a vertical stack with ySpacing between consecutive
// children. An empty child list is allowed and lays out to zero size.
func NewColumn(children []Pres, ySpacing float64) (*ColumnNode, error) {
	kids, err := checkChildren("column", children)
	if err != nil {
		return nil, err
	}
	if err := checkNonNegative("column y spacing", ySpacing); err != nil {
		return nil, err
	}
	return &ColumnNode{children: kids, ySpacing: ySpacing}, nil
}

// Kind returns KindColumn.
func (*ColumnNode) Kind() Kind { return KindColumn }
func (*ColumnNode) pres() {}

// Children returns a copy of the child list.
func (c *ColumnNode) Children() []Pres { return slices.Clone(c.children) }

// YSpacing returns the gap between consecutive children.
func (c *ColumnNode) YSpacing() float64 { return c.ySpacing }

// RowNode places its children side by side.
type RowNode struct {
	children []Pres
	xSpacing float64
}

// NewRow returns a horizontal stack with xSpacing between consecutive
// children. An empty child list is allowed and lays out to zero size.
func NewRow(children []Pres, xSpacing float64) (*RowNode, error) {
	kids, err := checkChildren("row", children)
	if err != nil {
		return nil, err
	}
	if err := checkNonNegative("row x spacing", xSpacing); err != nil {
		return nil, err
	}
	return &RowNode{children: kids, xSpacing: xSpacing}, nil
}

// Kind returns KindRow.
func (*RowNode) Kind() Kind { return KindRow }
func (*RowNode) pres() {}

// Children returns a copy of the child list.
func (r *RowNode) Children() []Pres { return slices.Clone(r.children) }

// XSpacing returns the gap between consecutive children.
func (r *RowNode) XSpacing() float64 { return r.xSpacing }

// FlowNode wraps its children onto lines, paragraph style.
type FlowNode struct {
	children []Pres
	xSpacing float64
	ySpacing float64
	indent   FlowIndent
}

// NewFlow returns a flow with xSpacing between children on a line, ySpacing
// between lines, and the given indentation policy.
func NewFlow(children []Pres, xSpacing, ySpacing float64, indent FlowIndent) (*FlowNode, error) {
	kids, err := checkChildren("flow", children)
	if err != nil {
		return nil, err
	}
	if err := checkNonNegative("flow x spacing", xSpacing); err != nil {
		return nil, err
	}
	if err := checkNonNegative("flow y spacing", ySpacing); err != nil {
		return nil, err
	}
	return &FlowNode{children: kids, xSpacing: xSpacing, ySpacing: ySpacing, indent: indent}, nil
}

// Kind returns KindFlow.
func (*FlowNode) Kind() Kind { return KindFlow }
func (*FlowNode) pres() {}

// Children returns a copy of the child list.
func (f *FlowNode) Children() []Pres { return slices.Clone(f.children) }

// XSpacing returns the gap between children on the same line.
func (f *FlowNode) XSpacing() float64 { return f.xSpacing }

// YSpacing returns the gap between lines.
func (f *FlowNode) YSpacing() float64 { return f.ySpacing }

// Indent returns the indentation policy.
func (f *FlowNode) Indent() FlowIndent { return f.indent }

// wordSpacing is the gap between words in a Paragraph, as a fraction of
// the font size.
const wordSpacing = 0.25

// Paragraph returns a flow holding one text node per whitespace-separated
// word of text, spaced a quarter of the font size apart.
func Paragraph(text string, style TextStyle, indent FlowIndent) (*FlowNode, error) {
	words := strings.Fields(text)
	children := make([]Pres, 0, len(words))
	for _, w := range words {
		t, err := NewText(w, style)
		if err != nil {
			return nil, err
		}
		children = append(children, t)
	}
	return NewFlow(children, style.size*wordSpacing, 0, indent)
}

// checkChildren copies children so later changes to the caller's slice
// cannot reach the node, rejecting nil entries.
func checkChildren(kind string, children []Pres) ([]Pres, error) {
	for i, c := range children {
		if isNilPres(c) {
			return nil, invalidParam("%s child %d is nil", kind, i)
		}
	}
	return slices.Clone(children), nil
}

// isNilPres reports a nil interface or a typed nil node pointer.
func isNilPres(p Pres) bool {
	switch n := p.(type) {
	case nil:
		return true
	case *TextNode:
		return n == nil
	case *BorderNode:
		return n == nil
	case *ColumnNode:
		return n == nil
	case *RowNode:
		return n == nil
	case *FlowNode:
		return n == nil
	default:
		return false
	}
}
