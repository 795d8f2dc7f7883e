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

	"github.com/gogpu/gg"
)

// GG is a Surface backed by a software gg.Context.
type GG struct {
	dc  *gg.Context
	err error
}

// NewGG allocates a fully transparent width×height GG surface.
func NewGG(width, height int) *GG {
	return &GG{dc: gg.NewContext(width, height)}
}

// Bounds implements Canvas.
func (c *GG) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.dc.Width(), c.dc.Height())
}

// FillEllipse implements Canvas.
func (c *GG) FillEllipse(bounds image.Rectangle, col color.NRGBA) {
	bounds = bounds.Canon()
	if bounds.Empty() {
		return
	}
	cx := float64(bounds.Min.X+bounds.Max.X)/2 + pixelCentre
	cy := float64(bounds.Min.Y+bounds.Max.Y)/2 + pixelCentre
	c.dc.SetColor(col)
	c.dc.DrawEllipse(cx, cy, float64(bounds.Dx())/2, float64(bounds.Dy())/2)
	c.fill()
}

// FillPolygon implements Canvas.
func (c *GG) FillPolygon(pts []image.Point, col color.NRGBA) {
	p := PolygonPath(pts)
	if p == nil {
		return
	}
	c.dc.SetColor(col)
	walkPolygon(p, c.dc.MoveTo, c.dc.LineTo, c.dc.ClosePath)
	c.fill()
}

func (c *GG) fill() {
	if err := c.dc.Fill(); err != nil && c.err == nil {
		c.err = err
	}
}

// Image returns a copy of the pixels as an *image.RGBA, or the first
// error reported by a fill operation.
func (c *GG) Image() (image.Image, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.dc.Image(), nil
}

// Close releases the gg context.
func (c *GG) Close() error {
	return c.dc.Close()
}
