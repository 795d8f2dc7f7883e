// seehuhn.de/go/moonicon - procedural icon generator
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package moonicon

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"seehuhn.de/go/moonicon/canvas"
)

const (
	// ReferenceSize is the icon size, in pixels, at which all
	// measurements of the design are given.
	ReferenceSize = 128

	// MaxSize is the largest supported icon size.
	MaxSize = 4096
)

// ErrInvalidSize is returned for icon sizes outside 1..MaxSize.
var ErrInvalidSize = errors.New("invalid icon size")

// Disc is a filled circle. Center and Radius are in pixels, where the
// integer point (x, y) is the centre of pixel (x, y).
type Disc struct {
	Center image.Point
	Radius int
	Color  color.NRGBA
}

// Bounds returns the box whose inscribed ellipse is the disc.
func (d Disc) Bounds() image.Rectangle {
	r := d.Radius
	return image.Rect(d.Center.X-r, d.Center.Y-r, d.Center.X+r, d.Center.Y+r)
}

// Star is a filled five-pointed star.
type Star struct {
	Center image.Point
	Radius int
	Color  color.NRGBA
}

// Vertices returns the ten corners of the star, see StarVertices.
func (s Star) Vertices() []image.Point {
	return StarVertices(s.Center, float64(s.Radius))
}

// Layout is the complete geometry of one icon.
type Layout struct {
	Size   int
	Scale  float64 // Size / ReferenceSize
	Center image.Point

	Background Disc
	Inner      Disc
	Moon       Disc
	Shadow     Disc // drawn over the moon in the inner disc colour
	Stars      []Star
}

// starSpec places one star at the reference size. The star is only
// drawn on icons of at least minSize pixels.
type starSpec struct {
	dx, dy  int
	radius  int
	minSize int
}

var starTable = []starSpec{
	{dx: 25, dy: -30, radius: 8, minSize: 48},
	{dx: 35, dy: -10, radius: 5, minSize: 48},
	{dx: 20, dy: 25, radius: 4, minSize: 48},
	{dx: 40, dy: 15, radius: 3, minSize: 128},
}

type config struct {
	truncate  bool
	backend   canvas.Backend
	antialias bool
}

// Option configures NewLayout and Compose.
type Option func(*config)

// Truncate makes scaled measurements round toward zero instead of to the
// nearest integer, for pixel parity with the existing icon files.
func Truncate() Option {
	return func(c *config) {
		c.truncate = true
	}
}

// WithBackend selects the canvas backend used by Compose. The default
// is canvas.BackendRaster.
func WithBackend(b canvas.Backend) Option {
	return func(c *config) {
		c.backend = b
	}
}

// WithAntialias enables anti-aliased edges on the raster backend.
// Without it, every pixel is either untouched or fully painted.
func WithAntialias(on bool) Option {
	return func(c *config) {
		c.antialias = on
	}
}

func newConfig(opts []Option) *config {
	c := &config{backend: canvas.BackendRaster}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CheckSize returns an error wrapping ErrInvalidSize if size is not a
// supported icon size.
func CheckSize(size int) error {
	if size <= 0 || size > MaxSize {
		return fmt.Errorf("%w: %d is outside 1..%d", ErrInvalidSize, size, MaxSize)
	}
	return nil
}

// NewLayout computes the geometry of the icon with the given size.
func NewLayout(size int, opts ...Option) (*Layout, error) {
	return newLayout(size, newConfig(opts))
}

func newLayout(size int, cfg *config) (*Layout, error) {
	if err := CheckSize(size); err != nil {
		return nil, err
	}

	scale := float64(size) / ReferenceSize
	measure := func(v int) int {
		x := float64(v) * scale
		if cfg.truncate {
			return int(x)
		}
		return int(math.Round(x))
	}

	c := size / 2
	center := image.Pt(c, c)
	moon := image.Pt(c-measure(5), c)

	l := &Layout{
		Size:   size,
		Scale:  scale,
		Center: center,
		Background: Disc{
			Center: center,
			Radius: measure(58),
			Color:  SkyBlue,
		},
		Inner: Disc{
			Center: center,
			Radius: measure(50),
			Color:  PaleBlue,
		},
		Moon: Disc{
			Center: moon,
			Radius: measure(35),
			Color:  MoonWhite,
		},
		Shadow: Disc{
			Center: moon.Add(image.Pt(measure(15), 0)),
			Radius: measure(30),
			Color:  PaleBlue,
		},
	}

	for _, s := range starTable {
		if size < s.minSize {
			continue
		}
		l.Stars = append(l.Stars, Star{
			Center: center.Add(image.Pt(measure(s.dx), measure(s.dy))),
			Radius: measure(s.radius),
			Color:  StarWhite,
		})
	}
	return l, nil
}
