package lspace

import "fmt"

// AreaOption is a functional option for configuring an Area.
type AreaOption func(*Area) error

// WithMeasurer sets the text measurer used for layout. By default an Area
// measures with its own cached FontMeasurer.
func WithMeasurer(m Measurer) AreaOption {
	return func(a *Area) error {
		if m == nil {
			return fmt.Errorf("%w: measurer is nil", ErrInvalidParameter)
		}
		a.measurer = m
		if fs, ok := m.(FaceSource); ok {
			a.faces = fs
		}
		return nil
	}
}

// WithBackground fills the whole viewport with c before each draw.
// By default the surface is left as the host prepared it.
func WithBackground(c Colour) AreaOption {
	return func(a *Area) error {
		a.background = c
		a.hasBackground = true
		return nil
	}
}

// WithMeasureCacheSize sets the number of text widths the default measurer
// memoises. Default is 4096. It has no effect together with WithMeasurer.
func WithMeasureCacheSize(size int) AreaOption {
	return func(a *Area) error {
		if size < 1 {
			return fmt.Errorf("%w: measure cache size must be at least 1", ErrInvalidParameter)
		}
		a.cacheSize = size
		return nil
	}
}
