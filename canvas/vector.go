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

package canvas

import (
	"image"
	"image/color"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/path"
)

// Vector is a Surface backed by an *image.RGBA, using the anti-aliasing
// rasteriser from golang.org/x/image/vector.
type Vector struct {
	img      *image.RGBA
	z        *vector.Rasterizer
	flatness float64
}

// NewVector allocates a fully transparent width×height Vector. The
// anti-aliasing option is ignored.
func NewVector(width, height int, opts ...Option) *Vector {
	o := buildOptions(opts)
	return &Vector{
		img:      image.NewRGBA(image.Rect(0, 0, width, height)),
		z:        vector.NewRasterizer(width, height),
		flatness: o.flatness,
	}
}

// Bounds implements Canvas.
func (c *Vector) Bounds() image.Rectangle {
	return c.img.Rect
}

// FillEllipse implements Canvas.
func (c *Vector) FillEllipse(bounds image.Rectangle, col color.NRGBA) {
	c.fill(EllipsePath(bounds, c.flatness), col)
}

// FillPolygon implements Canvas.
func (c *Vector) FillPolygon(pts []image.Point, col color.NRGBA) {
	c.fill(PolygonPath(pts), col)
}

// Image returns the underlying *image.RGBA. The error is always nil.
func (c *Vector) Image() (image.Image, error) {
	return c.img, nil
}

// Close implements Surface.
func (c *Vector) Close() error {
	return nil
}

func (c *Vector) fill(p *path.Data, col color.NRGBA) {
	if p == nil || col.A == 0 {
		return
	}
	b := c.img.Rect
	c.z.Reset(b.Dx(), b.Dy())
	walkPolygon(p,
		func(x, y float64) { c.z.MoveTo(float32(x), float32(y)) },
		func(x, y float64) { c.z.LineTo(float32(x), float32(y)) },
		c.z.ClosePath)
	c.z.Draw(c.img, b, image.NewUniform(col), image.Point{})
}
