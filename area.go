package lspace

import (
	"fmt"
	"time"

	"github.com/grindlemire/go-lspace/internal/debug"
)

// State is the lifecycle state of an Area.
type State uint8

const (
	// StateCreated means the root is set but no size has been allocated.
	StateCreated State = iota
	// StateSized means geometry is present for the last allocated size.
	StateSized
	// StateDestroyed is terminal.
	StateDestroyed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateSized:
		return "sized"
	case StateDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

const defaultMeasureCacheSize = 4096

// Area couples one presentation root to a host's size and repaint events.
// The host calls OnSizeAllocate whenever its drawing area changes size and
// OnDraw whenever it needs a repaint, serially from one goroutine.
//
// The root may be shared with other Areas. Each Area owns its geometry and
// its measurer.
type Area struct {
	root     Pres
	measurer Measurer
	faces    FaceSource
	fonts    *FontMeasurer

	background    Colour
	hasBackground bool
	cacheSize     int

	width, height int
	geom          *Geometry
	state         State
}

// NewArea creates an Area for root in StateCreated.
func NewArea(root Pres, opts ...AreaOption) (*Area, error) {
	if isNilPres(root) {
		return nil, invalidParam("area root is nil")
	}

	a := &Area{
		root:      root,
		cacheSize: defaultMeasureCacheSize,
		state:     StateCreated,
	}
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}

	if a.measurer == nil {
		fonts, err := NewFontMeasurer()
		if err != nil {
			return nil, fmt.Errorf("create font measurer: %w", err)
		}
		cached, err := NewCachedMeasurer(fonts, a.cacheSize)
		if err != nil {
			fonts.Close()
			return nil, err
		}
		a.fonts = fonts
		a.faces = fonts
		a.measurer = cached
	}
	return a, nil
}

// OnSizeAllocate lays the root out against a width x height viewport and
// replaces the current geometry with the result. It may be called any number
// of times, including with an unchanged size.
func (a *Area) OnSizeAllocate(width, height int) error {
	if a.state == StateDestroyed {
		return ErrDestroyed
	}
	if width < 0 || height < 0 {
		return invalidParam("size %dx%d must not be negative", width, height)
	}

	start := time.Now()
	geom := Layout(a.root, float64(width), float64(height), a.measurer)
	if debug.Enabled() {
		debug.Log("Area.OnSizeAllocate: %dx%d layout time %v (%d boxes)", width, height, time.Since(start), geom.Count())
	}

	a.geom = geom
	a.width, a.height = width, height
	a.state = StateSized
	return nil
}

// OnDraw paints the current geometry onto s. Before the first
// OnSizeAllocate it does nothing and returns nil.
func (a *Area) OnDraw(s Surface) error {
	switch a.state {
	case StateDestroyed:
		return ErrDestroyed
	case StateCreated:
		return nil
	}
	if s == nil {
		return invalidParam("surface is nil")
	}

	start := time.Now()
	viewport := NewRect(0, 0, float64(a.width), float64(a.height))
	if a.hasBackground {
		s.NewPath()
		s.Rectangle(viewport.X, viewport.Y, viewport.Width, viewport.Height)
		s.SetColour(a.background)
		s.Fill()
	}
	if err := DrawVisible(s, a.geom, viewport); err != nil {
		return err
	}
	debug.Log("Area.OnDraw: render time %v", time.Since(start))
	return nil
}

// Destroy releases the geometry, the root and any fonts the Area loaded.
// It is safe to call more than once.
func (a *Area) Destroy() {
	if a.state == StateDestroyed {
		return
	}
	if a.fonts != nil {
		a.fonts.Close()
		a.fonts = nil
	}
	a.root = nil
	a.measurer = nil
	a.faces = nil
	a.geom = nil
	a.state = StateDestroyed
}

// State returns the lifecycle state.
func (a *Area) State() State { return a.state }

// Size returns the last allocated size.
func (a *Area) Size() (width, height int) { return a.width, a.height }

// Root returns the presentation root, or nil once destroyed.
func (a *Area) Root() Pres { return a.root }

// Geometry returns the current geometry, or nil outside StateSized.
func (a *Area) Geometry() *Geometry { return a.geom }

// Measurer returns the measurer used for layout.
func (a *Area) Measurer() Measurer { return a.measurer }

// Faces returns the font faces matching the Area's measurements, or nil if
// the measurer does not supply faces. Pass it to NewGGSurface so painted
// text matches the layout.
func (a *Area) Faces() FaceSource { return a.faces }
