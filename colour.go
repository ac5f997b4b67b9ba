package lspace

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Colour is an RGBA colour with components in [0, 1].
// It is a value type; copies are independent and compare with ==.
type Colour struct {
	r, g, b, a float64
}

var (
	// Black is opaque black, the default text colour.
	Black = Colour{0, 0, 0, 1}
	// White is opaque white.
	White = Colour{1, 1, 1, 1}
	// Transparent is fully transparent black.
	Transparent = Colour{}
)

// NewColour returns a colour from red, green, blue and alpha components.
// Each component must be in [0, 1].
func NewColour(r, g, b, a float64) (Colour, error) {
	for _, c := range [...]struct {
		name string
		v    float64
	}{{"red", r}, {"green", g}, {"blue", b}, {"alpha", a}} {
		if math.IsNaN(c.v) || c.v < 0 || c.v > 1 {
			return Colour{}, invalidParam("colour %s component %v outside [0, 1]", c.name, c.v)
		}
	}
	return Colour{r: r, g: g, b: b, a: a}, nil
}

// HexColour parses an opaque colour from "#RRGGBB" or "#RGB".
func HexColour(hex string) (Colour, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Colour{}, invalidParam("hex colour %q: %v", hex, err)
	}
	return Colour{r: c.R, g: c.G, b: c.B, a: 1}, nil
}

// RGBA returns the four components of the colour.
func (c Colour) RGBA() (r, g, b, a float64) {
	return c.r, c.g, c.b, c.a
}

// Hex returns the colour as "#rrggbb", ignoring alpha.
func (c Colour) Hex() string {
	return colorful.Color{R: c.r, G: c.g, B: c.b}.Hex()
}

// IsOpaque returns true if alpha is 1.
func (c Colour) IsOpaque() bool {
	return c.a == 1
}
