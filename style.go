package lspace

import (
	"math"
	"strings"
)

// TextWeight is the font weight of a text style.
type TextWeight uint8

const (
	// WeightNormal is the regular font weight.
	WeightNormal TextWeight = iota
	// WeightBold is the bold font weight.
	WeightBold
)

// TextSlant is the font slant of a text style.
type TextSlant uint8

const (
	// SlantNormal is upright text.
	SlantNormal TextSlant = iota
	// SlantItalic is italic text.
	SlantItalic
)

const (
	// DefaultFontFamily is the family of DefaultTextStyle.
	DefaultFontFamily = "Sans serif"
	// DefaultFontSize is the size of DefaultTextStyle, in points.
	DefaultFontSize = 14.0
)

// TextStyle describes how a text run is measured and painted.
// Zero value is not a valid style; use NewTextStyle or DefaultTextStyle.
type TextStyle struct {
	family string
	weight TextWeight
	slant  TextSlant
	size   float64
	colour Colour
}

// NewTextStyle returns a text style. The family must not be blank and the
// size must be positive.
func NewTextStyle(family string, bold, italic bool, size float64, colour Colour) (TextStyle, error) {
	if strings.TrimSpace(family) == "" {
		return TextStyle{}, invalidParam("font family is empty")
	}
	if math.IsNaN(size) || math.IsInf(size, 0) || size <= 0 {
		return TextStyle{}, invalidParam("font size %v must be positive", size)
	}

	s := TextStyle{family: family, size: size, colour: colour}
	if bold {
		s.weight = WeightBold
	}
	if italic {
		s.slant = SlantItalic
	}
	return s, nil
}

// DefaultTextStyle returns the default style: regular upright
// DefaultFontFamily at DefaultFontSize in black.
func DefaultTextStyle() TextStyle {
	return TextStyle{family: DefaultFontFamily, size: DefaultFontSize, colour: Black}
}

// Family returns the font family name.
func (s TextStyle) Family() string { return s.family }

// Weight returns the font weight.
func (s TextStyle) Weight() TextWeight { return s.weight }

// Slant returns the font slant.
func (s TextStyle) Slant() TextSlant { return s.slant }

// Bold returns true if the weight is bold.
func (s TextStyle) Bold() bool { return s.weight == WeightBold }

// Italic returns true if the slant is italic.
func (s TextStyle) Italic() bool { return s.slant == SlantItalic }

// Size returns the font size in points.
func (s TextStyle) Size() float64 { return s.size }

// Colour returns the text colour.
func (s TextStyle) Colour() Colour { return s.colour }

// WithColour returns a copy of the style painted in c.
func (s TextStyle) WithColour(c Colour) TextStyle {
	s.colour = c
	return s
}
