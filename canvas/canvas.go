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

// Package canvas provides the drawing surfaces the icon is composed on.
//
// All backends use the same coordinate convention: an integer point
// (x, y) denotes the centre of pixel (x, y), so a shape given in integer
// coordinates is placed half a pixel to the right and down in the
// continuous plane.
package canvas

import (
	"fmt"
	"image"
	"image/color"
)

// Canvas is the minimal drawing capability needed to compose an icon.
type Canvas interface {
	// Bounds returns the pixel rectangle of the canvas.
	Bounds() image.Rectangle

	// FillEllipse fills the ellipse inscribed in bounds. The corners of
	// bounds are pixel centres; empty bounds draw nothing.
	FillEllipse(bounds image.Rectangle, c color.NRGBA)

	// FillPolygon fills the closed polygon through pts using the
	// non-zero winding rule. Fewer than three points draw nothing.
	FillPolygon(pts []image.Point, c color.NRGBA)
}

// Surface is a Canvas which owns its pixels.
type Surface interface {
	Canvas

	// Image returns the pixels drawn so far, or the first error the
	// backend reported while drawing.
	Image() (image.Image, error)

	// Close releases backend resources.
	Close() error
}

// Backend names a Surface implementation.
type Backend string

// Available backends.
const (
	BackendRaster Backend = "raster"
	BackendVector Backend = "vector"
	BackendGG     Backend = "gg"
)

// pixelCentre is the offset between integer pixel coordinates and the
// continuous coordinates of the pixel centre.
const pixelCentre = 0.5

type options struct {
	antialias bool
	flatness  float64
}

// Option configures a Surface created by New or NewRaster.
type Option func(*options)

// WithAntialias selects whether the raster backend keeps fractional
// coverage. Without anti-aliasing, a pixel is painted iff at least half
// of it is covered. The vector and gg backends always anti-alias.
func WithAntialias(on bool) Option {
	return func(o *options) {
		o.antialias = on
	}
}

// WithFlatness sets the maximal distance, in pixels, between an ellipse
// and the polygon used to draw it.
func WithFlatness(f float64) Option {
	return func(o *options) {
		if f > 0 {
			o.flatness = f
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{flatness: defaultFlatness}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// New allocates a fully transparent width×height Surface of the given
// backend. The empty backend name selects BackendRaster.
func New(backend Backend, width, height int, opts ...Option) (Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("canvas: invalid size %dx%d", width, height)
	}
	switch backend {
	case BackendRaster, "":
		return NewRaster(width, height, opts...), nil
	case BackendVector:
		return NewVector(width, height, opts...), nil
	case BackendGG:
		return NewGG(width, height), nil
	default:
		return nil, fmt.Errorf("canvas: unknown backend %q", backend)
	}
}
