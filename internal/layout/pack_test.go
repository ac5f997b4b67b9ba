package layout

import (
	"reflect"
	"testing"
)

func TestPackLines(t *testing.T) {
	type tc struct {
		widths      []float64
		spacing     float64
		available   float64
		firstIndent float64
		restIndent  float64
		expected    []Line
	}

	tests := map[string]tc{
		"no boxes": {
			widths:    nil,
			available: 100,
			expected:  nil,
		},
		"everything fits": {
			widths:    []float64{10, 20, 30},
			spacing:   5,
			available: 100,
			expected: []Line{
				{Start: 0, End: 3, X: 0, Width: 70},
			},
		},
		"exact fit stays on the line": {
			widths:    []float64{10, 20, 30},
			spacing:   5,
			available: 70,
			expected: []Line{
				{Start: 0, End: 3, X: 0, Width: 70},
			},
		},
		"one unit short wraps last box": {
			widths:    []float64{10, 20, 30},
			spacing:   5,
			available: 69,
			expected: []Line{
				{Start: 0, End: 2, X: 0, Width: 35},
				{Start: 2, End: 3, X: 0, Width: 30},
			},
		},
		"overlong box alone on its line": {
			widths:    []float64{10, 200, 10},
			spacing:   0,
			available: 50,
			expected: []Line{
				{Start: 0, End: 1, X: 0, Width: 10},
				{Start: 1, End: 2, X: 0, Width: 200},
				{Start: 2, End: 3, X: 0, Width: 10},
			},
		},
		"overlong first box": {
			widths:    []float64{200},
			available: 50,
			expected: []Line{
				{Start: 0, End: 1, X: 0, Width: 200},
			},
		},
		"first line indent": {
			widths:      []float64{10, 10, 10, 10},
			available:   30,
			firstIndent: 15,
			expected: []Line{
				{Start: 0, End: 1, X: 15, Width: 10},
				{Start: 1, End: 4, X: 0, Width: 30},
			},
		},
		"indent all but first": {
			widths:     []float64{10, 10, 10, 10},
			available:  30,
			restIndent: 15,
			expected: []Line{
				{Start: 0, End: 3, X: 0, Width: 30},
				{Start: 3, End: 4, X: 15, Width: 10},
			},
		},
		"zero available is unconstrained": {
			widths:    []float64{100, 100, 100},
			spacing:   1,
			available: 0,
			expected: []Line{
				{Start: 0, End: 3, X: 0, Width: 302},
			},
		},
		"negative available is unconstrained": {
			widths:    []float64{100, 100},
			available: -10,
			expected: []Line{
				{Start: 0, End: 2, X: 0, Width: 200},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := PackLines(tt.widths, tt.spacing, tt.available, tt.firstIndent, tt.restIndent)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("PackLines() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestPackLines_CoversEveryBox(t *testing.T) {
	widths := []float64{3, 14, 15, 9, 26, 5, 35, 8, 9, 7, 9, 3, 2, 3, 8, 4, 6}
	for _, available := range []float64{-1, 0, 1, 10, 20, 33, 50, 1000} {
		lines := PackLines(widths, 2, available, 4, 0)
		next := 0
		for i, l := range lines {
			if l.Start != next {
				t.Fatalf("available=%v line %d starts at %d, want %d", available, i, l.Start, next)
			}
			if l.Len() < 1 {
				t.Fatalf("available=%v line %d is empty", available, i)
			}
			if l.Len() > 1 && l.X+l.Width > available && available > 0 {
				t.Errorf("available=%v line %d overflows: %v", available, i, l.X+l.Width)
			}
			next = l.End
		}
		if next != len(widths) {
			t.Errorf("available=%v packed %d boxes, want %d", available, next, len(widths))
		}
	}
}
