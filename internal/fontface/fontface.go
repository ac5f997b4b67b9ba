// Package fontface loads the bundled Go fonts and caches sized faces.
package fontface

import (
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// DPI is the resolution faces are created at. At 72 DPI one point is one
// device unit.
const DPI = 72

// DefaultCapacity is the number of sized faces a Cache keeps by default.
const DefaultCapacity = 64

// Key identifies a sized face.
type Key struct {
	Family string
	Bold   bool
	Italic bool
	Size   float64
}

type variant struct {
	mono, bold, italic bool
}

var sources = map[variant][]byte{
	{false, false, false}: goregular.TTF,
	{false, true, false}:  gobold.TTF,
	{false, false, true}:  goitalic.TTF,
	{false, true, true}:   gobolditalic.TTF,
	{true, false, false}:  gomono.TTF,
	{true, true, false}:   gomonobold.TTF,
	{true, false, true}:   gomonoitalic.TTF,
	{true, true, true}:    gomonobolditalic.TTF,
}

// Cache maps style keys to font faces. Parsed fonts are kept for the life
// of the cache; sized faces are kept in an LRU and closed on eviction.
// A Cache and the faces it returns are not safe for concurrent use.
type Cache struct {
	fonts map[variant]*opentype.Font
	faces *lru.Cache[Key, font.Face]
}

// New returns a cache that holds up to capacity sized faces.
func New(capacity int) (*Cache, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("face cache capacity %d must be positive", capacity)
	}
	faces, err := lru.NewWithEvict(capacity, func(_ Key, f font.Face) {
		f.Close()
	})
	if err != nil {
		return nil, err
	}
	return &Cache{
		fonts: make(map[variant]*opentype.Font),
		faces: faces,
	}, nil
}

// IsMonospace reports whether family names a fixed-pitch family.
// Such families are served by Go Mono; everything else by Go Regular.
func IsMonospace(family string) bool {
	f := strings.ToLower(family)
	return strings.Contains(f, "mono") || strings.Contains(f, "courier")
}

// Face returns the face for k, creating it on first use.
func (c *Cache) Face(k Key) (font.Face, error) {
	if f, ok := c.faces.Get(k); ok {
		return f, nil
	}
	if k.Size <= 0 {
		return nil, fmt.Errorf("face size %v must be positive", k.Size)
	}

	v := variant{mono: IsMonospace(k.Family), bold: k.Bold, italic: k.Italic}
	otf, err := c.font(v)
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(otf, &opentype.FaceOptions{
		Size:    k.Size,
		DPI:     DPI,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("create face %+v: %w", k, err)
	}
	c.faces.Add(k, face)
	return face, nil
}

func (c *Cache) font(v variant) (*opentype.Font, error) {
	if f, ok := c.fonts[v]; ok {
		return f, nil
	}
	f, err := opentype.Parse(sources[v])
	if err != nil {
		return nil, fmt.Errorf("parse font %+v: %w", v, err)
	}
	c.fonts[v] = f
	return f, nil
}

// Len returns the number of cached faces.
func (c *Cache) Len() int {
	return c.faces.Len()
}

// Close closes every cached face.
func (c *Cache) Close() {
	c.faces.Purge()
}
