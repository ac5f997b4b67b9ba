package lspace

import (
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/grindlemire/go-lspace/internal/debug"
	"github.com/grindlemire/go-lspace/internal/fontface"
)

// FontMeasurer measures text with the bundled Go fonts. Families containing
// "mono" or "courier" use Go Mono; all others use Go Regular. Bold and
// italic select the matching variant.
//
// A FontMeasurer is not safe for concurrent use. Give each Area its own.
type FontMeasurer struct {
	faces    *fontface.Cache
	fallback MonoMeasurer
}

// Ensure FontMeasurer implements Measurer.
var _ Measurer = (*FontMeasurer)(nil)

// NewFontMeasurer returns a measurer with an empty face cache.
func NewFontMeasurer() (*FontMeasurer, error) {
	faces, err := fontface.New(fontface.DefaultCapacity)
	if err != nil {
		return nil, err
	}
	return &FontMeasurer{faces: faces}, nil
}

// Face returns the sized face for style. GGSurface uses it to paint text
// with the same metrics the layout was computed with.
func (m *FontMeasurer) Face(style TextStyle) (font.Face, error) {
	return m.faces.Face(fontface.Key{
		Family: style.Family(),
		Bold:   style.Bold(),
		Italic: style.Italic(),
		Size:   style.Size(),
	})
}

// TextWidth returns the advance width of text.
func (m *FontMeasurer) TextWidth(text string, style TextStyle) float64 {
	face, err := m.Face(style)
	if err != nil {
		debug.Log("FontMeasurer: %v, using mono metrics", err)
		return m.fallback.TextWidth(text, style)
	}
	return fixedToFloat(font.MeasureString(face, text))
}

// Metrics returns the face's ascent, descent and line height.
func (m *FontMeasurer) Metrics(style TextStyle) LineMetrics {
	face, err := m.Face(style)
	if err != nil {
		debug.Log("FontMeasurer: %v, using mono metrics", err)
		return m.fallback.Metrics(style)
	}
	fm := face.Metrics()
	return LineMetrics{
		Ascent:  fixedToFloat(fm.Ascent),
		Descent: fixedToFloat(fm.Descent),
		Height:  fixedToFloat(fm.Height),
	}
}

// Close releases every cached face.
func (m *FontMeasurer) Close() {
	m.faces.Close()
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
