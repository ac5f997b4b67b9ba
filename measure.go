package lspace

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/mattn/go-runewidth"
)

// LineMetrics describes the vertical extent of one line of text.
type LineMetrics struct {
	Ascent  float64
	Descent float64
	Height  float64
}

// Measurer supplies text metrics to the layout engine. Implementations must
// be deterministic: the same text and style always measure the same.
type Measurer interface {
	// TextWidth returns the advance width of text set in style.
	TextWidth(text string, style TextStyle) float64
	// Metrics returns the line metrics of style.
	Metrics(style TextStyle) LineMetrics
}

const (
	defaultMonoAdvance    = 0.6
	defaultMonoLineHeight = 1.2
)

// MonoMeasurer measures text as if every terminal cell had the same advance.
// Wide runes count as two cells. The zero value is ready to use.
type MonoMeasurer struct {
	// Advance is the width of one cell as a multiple of the font size.
	// Zero means 0.6.
	Advance float64

	// LineHeight is the line height as a multiple of the font size.
	// Zero means 1.2.
	LineHeight float64
}

// Ensure MonoMeasurer implements Measurer.
var _ Measurer = MonoMeasurer{}

// TextWidth returns cells * size * Advance.
func (m MonoMeasurer) TextWidth(text string, style TextStyle) float64 {
	advance := m.Advance
	if advance <= 0 {
		advance = defaultMonoAdvance
	}
	return float64(runewidth.StringWidth(text)) * style.Size() * advance
}

// Metrics returns a line height of size * LineHeight with the baseline
// four fifths of the way down.
func (m MonoMeasurer) Metrics(style TextStyle) LineMetrics {
	lh := m.LineHeight
	if lh <= 0 {
		lh = defaultMonoLineHeight
	}
	height := style.Size() * lh
	ascent := height * 4 / 5
	return LineMetrics{Ascent: ascent, Descent: height - ascent, Height: height}
}

type widthKey struct {
	text  string
	style TextStyle
}

// CachedMeasurer memoises the text widths of another Measurer in a bounded
// LRU table. It is not safe for concurrent use.
type CachedMeasurer struct {
	m       Measurer
	widths  *lru.Cache[widthKey, float64]
	metrics map[TextStyle]LineMetrics
}

// Ensure CachedMeasurer implements Measurer.
var _ Measurer = (*CachedMeasurer)(nil)

// NewCachedMeasurer wraps m with a width cache holding up to size entries.
func NewCachedMeasurer(m Measurer, size int) (*CachedMeasurer, error) {
	if m == nil {
		return nil, invalidParam("measurer is nil")
	}
	if size <= 0 {
		return nil, invalidParam("cache size %d must be positive", size)
	}
	widths, err := lru.New[widthKey, float64](size)
	if err != nil {
		return nil, err
	}
	return &CachedMeasurer{
		m:       m,
		widths:  widths,
		metrics: make(map[TextStyle]LineMetrics),
	}, nil
}

// TextWidth returns the cached width of text, measuring it on a miss.
func (c *CachedMeasurer) TextWidth(text string, style TextStyle) float64 {
	k := widthKey{text: text, style: style}
	if w, ok := c.widths.Get(k); ok {
		return w
	}
	w := c.m.TextWidth(text, style)
	c.widths.Add(k, w)
	return w
}

// Metrics returns the cached metrics of style.
func (c *CachedMeasurer) Metrics(style TextStyle) LineMetrics {
	if lm, ok := c.metrics[style]; ok {
		return lm
	}
	lm := c.m.Metrics(style)
	c.metrics[style] = lm
	return lm
}

// Len returns the number of cached widths.
func (c *CachedMeasurer) Len() int {
	return c.widths.Len()
}

// Purge empties the cache.
func (c *CachedMeasurer) Purge() {
	c.widths.Purge()
	clear(c.metrics)
}
