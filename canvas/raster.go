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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/moonicon/raster"
)

// pixelCentreCTM maps integer pixel coordinates to pixel centres.
var pixelCentreCTM = matrix.Matrix{1, 0, 0, 1, pixelCentre, pixelCentre}

// coverageEpsilon is the smallest coverage which changes a pixel.
const coverageEpsilon = 1.0 / 512

// Raster is a Surface backed by an *image.NRGBA, using the coverage
// rasteriser from package raster.
type Raster struct {
	img       *image.NRGBA
	r         *raster.Rasteriser
	antialias bool
	flatness  float64
}

// NewRaster allocates a fully transparent width×height Raster.
func NewRaster(width, height int, opts ...Option) *Raster {
	o := buildOptions(opts)
	clip := rect.Rect{URx: float64(width), URy: float64(height)}
	return &Raster{
		img:       image.NewNRGBA(image.Rect(0, 0, width, height)),
		r:         raster.New(clip),
		antialias: o.antialias,
		flatness:  o.flatness,
	}
}

// Bounds implements Canvas.
func (c *Raster) Bounds() image.Rectangle {
	return c.img.Rect
}

// FillEllipse implements Canvas.
func (c *Raster) FillEllipse(bounds image.Rectangle, col color.NRGBA) {
	c.fill(EllipsePath(bounds, c.flatness), col)
}

// FillPolygon implements Canvas.
func (c *Raster) FillPolygon(pts []image.Point, col color.NRGBA) {
	c.fill(PolygonPath(pts), col)
}

// Image returns the underlying *image.NRGBA. The error is always nil.
func (c *Raster) Image() (image.Image, error) {
	return c.img, nil
}

// Close implements Surface.
func (c *Raster) Close() error {
	return nil
}

func (c *Raster) fill(p *path.Data, col color.NRGBA) {
	if p == nil || col.A == 0 {
		return
	}
	c.r.CTM = pixelCentreCTM
	c.r.Flatness = c.flatness
	c.r.Fill(p, raster.NonZero, func(y, xMin int, coverage []float32) {
		row := c.img.Pix[c.img.PixOffset(xMin, y):]
		for i, cov := range coverage {
			if !c.antialias {
				if cov < 0.5 {
					continue
				}
				cov = 1
			} else if cov < coverageEpsilon {
				continue
			}
			blendOver(row[4*i:4*i+4], col, cov)
		}
	})
}

// blendOver composites col with the given coverage onto the
// non-premultiplied pixel px using the source-over operator.
func blendOver(px []uint8, col color.NRGBA, coverage float32) {
	sa := float32(col.A) / 255 * coverage
	if sa >= 1 {
		px[0], px[1], px[2], px[3] = col.R, col.G, col.B, 255
		return
	}
	da := float32(px[3]) / 255
	keep := da * (1 - sa)
	oa := sa + keep
	if oa <= 0 {
		return
	}
	mix := func(s, d uint8) uint8 {
		return uint8((float32(s)*sa+float32(d)*keep)/oa + 0.5)
	}
	px[0] = mix(col.R, px[0])
	px[1] = mix(col.G, px[1])
	px[2] = mix(col.B, px[2])
	px[3] = uint8(oa*255 + 0.5)
}
