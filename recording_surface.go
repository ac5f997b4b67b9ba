package lspace

import (
	"fmt"
	"strings"
)

// Ensure RecordingSurface implements Surface.
var _ Surface = (*RecordingSurface)(nil)

// OpKind identifies a recorded drawing operation.
type OpKind uint8

const (
	OpSave OpKind = iota
	OpRestore
	OpNewPath
	OpMoveTo
	OpLineTo
	OpArc
	OpClosePath
	OpRectangle
	OpSetColour
	OpSetLineWidth
	OpFill
	OpStroke
	OpShowText
)

var opNames = [...]string{
	OpSave:         "save",
	OpRestore:      "restore",
	OpNewPath:      "new_path",
	OpMoveTo:       "move_to",
	OpLineTo:       "line_to",
	OpArc:          "arc",
	OpClosePath:    "close_path",
	OpRectangle:    "rectangle",
	OpSetColour:    "set_colour",
	OpSetLineWidth: "set_line_width",
	OpFill:         "fill",
	OpStroke:       "stroke",
	OpShowText:     "show_text",
}

// String returns the operation name.
func (k OpKind) String() string {
	if int(k) < len(opNames) {
		return opNames[k]
	}
	return "unknown"
}

// Op is one recorded operation. Args holds the numeric arguments in call
// order; Text and Style are set for OpShowText and Colour for OpSetColour.
type Op struct {
	Kind   OpKind
	Args   []float64
	Text   string
	Style  TextStyle
	Colour Colour
}

// String formats the operation for test failure output.
func (o Op) String() string {
	switch o.Kind {
	case OpShowText:
		return fmt.Sprintf("%s(%v, %q)", o.Kind, o.Args, o.Text)
	case OpSetColour:
		return fmt.Sprintf("%s(%s)", o.Kind, o.Colour.Hex())
	default:
		return fmt.Sprintf("%s%v", o.Kind, o.Args)
	}
}

// RecordingSurface is a Surface that records every call instead of
// painting. It is used by tests and by tools that inspect draw output.
type RecordingSurface struct {
	ops   []Op
	depth int
}

// NewRecordingSurface returns an empty recorder.
func NewRecordingSurface() *RecordingSurface {
	return &RecordingSurface{}
}

func (r *RecordingSurface) record(kind OpKind, args ...float64) {
	r.ops = append(r.ops, Op{Kind: kind, Args: args})
}

// Save records a state push.
func (r *RecordingSurface) Save() {
	r.depth++
	r.record(OpSave)
}

// Restore records a state pop.
func (r *RecordingSurface) Restore() {
	r.depth--
	r.record(OpRestore)
}

// NewPath records a path reset.
func (r *RecordingSurface) NewPath() { r.record(OpNewPath) }

// MoveTo records a move.
func (r *RecordingSurface) MoveTo(x, y float64) { r.record(OpMoveTo, x, y) }

// LineTo records a line segment.
func (r *RecordingSurface) LineTo(x, y float64) { r.record(OpLineTo, x, y) }

// Arc records an arc segment.
func (r *RecordingSurface) Arc(cx, cy, rad, angle1, angle2 float64) {
	r.record(OpArc, cx, cy, rad, angle1, angle2)
}

// ClosePath records a path close.
func (r *RecordingSurface) ClosePath() { r.record(OpClosePath) }

// Rectangle records a rectangle sub-path.
func (r *RecordingSurface) Rectangle(x, y, w, h float64) { r.record(OpRectangle, x, y, w, h) }

// SetColour records a colour change.
func (r *RecordingSurface) SetColour(c Colour) {
	r.ops = append(r.ops, Op{Kind: OpSetColour, Colour: c})
}

// SetLineWidth records a line width change.
func (r *RecordingSurface) SetLineWidth(w float64) { r.record(OpSetLineWidth, w) }

// Fill records a fill.
func (r *RecordingSurface) Fill() { r.record(OpFill) }

// Stroke records a stroke.
func (r *RecordingSurface) Stroke() { r.record(OpStroke) }

// ShowText records a glyph run.
func (r *RecordingSurface) ShowText(x, y float64, text string, style TextStyle) {
	r.ops = append(r.ops, Op{Kind: OpShowText, Args: []float64{x, y}, Text: text, Style: style})
}

// Ops returns the recorded operations in call order.
func (r *RecordingSurface) Ops() []Op {
	return r.ops
}

// Count returns how many operations of kind were recorded.
func (r *RecordingSurface) Count(kind OpKind) int {
	n := 0
	for _, op := range r.ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Texts returns the recorded OpShowText operations.
func (r *RecordingSurface) Texts() []Op {
	var texts []Op
	for _, op := range r.ops {
		if op.Kind == OpShowText {
			texts = append(texts, op)
		}
	}
	return texts
}

// Balanced returns true if every Save was matched by a Restore.
func (r *RecordingSurface) Balanced() bool {
	return r.depth == 0
}

// Reset discards all recorded operations.
func (r *RecordingSurface) Reset() {
	r.ops = nil
	r.depth = 0
}

// String returns one operation per line.
func (r *RecordingSurface) String() string {
	var sb strings.Builder
	for _, op := range r.ops {
		sb.WriteString(op.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
