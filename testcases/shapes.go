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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
)

// kappa places the control points of a cubic Bézier quarter circle.
const kappa = 0.5522847498307936

var shapeCases = []TestCase{
	{
		Name:   "triangle",
		Path:   polygon(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "star_nonzero",
		Path:   fivePointStar(32, 32, 25),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "star_evenodd",
		Path:   fivePointStar(32, 32, 25),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
	{
		Name:   "rectangle_offset",
		Path:   polygon(10.25, 10.25, 44.25, 10.25, 44.25, 44.75, 10.25, 44.75),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "circle",
		Path:   ellipse(32, 32, 20, 20),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "circle_small",
		Path:   ellipse(8.5, 8.5, 2.5, 2.5),
		Width:  16,
		Height: 16,
	},
	{
		Name:   "ring_evenodd",
		Path:   ring(32, 32, 28, 22),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
	{
		Name:   "crescent_evenodd",
		Path:   crescent(32, 32, 20, 16, 8),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
	{
		Name: "quadratic",
		Path: (&path.Data{}).
			MoveTo(pt(10, 50)).
			QuadTo(pt(32, 0), pt(54, 50)).
			Close(),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "open_subpath",
		Path:   (&path.Data{}).MoveTo(pt(8, 8)).LineTo(pt(56, 20)).LineTo(pt(20, 56)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "scale_2x",
		Path:   fivePointStar(0, 0, 10),
		Width:  64,
		Height: 64,
		CTM:    matrix.Scale(2, 2).Translate(32, 32),
	},
	{
		Name:   "thin_sliver",
		Path:   polygon(4, 30, 60, 31, 60, 31.3),
		Width:  64,
		Height: 64,
	},
}

// polygon builds a closed polygon from x, y coordinate pairs.
func polygon(xy ...float64) *path.Data {
	p := (&path.Data{}).MoveTo(pt(xy[0], xy[1]))
	for i := 2; i+1 < len(xy); i += 2 {
		p.LineTo(pt(xy[i], xy[i+1]))
	}
	return p.Close()
}

// fivePointStar builds a self-intersecting pentagram, which has a hole
// under the even-odd rule.
func fivePointStar(cx, cy, r float64) *path.Data {
	p := &path.Data{}
	for i := range 5 {
		theta := float64(2*i)*2*math.Pi/5 - math.Pi/2
		v := pt(cx+r*math.Cos(theta), cy+r*math.Sin(theta))
		if i == 0 {
			p.MoveTo(v)
		} else {
			p.LineTo(v)
		}
	}
	return p.Close()
}

// ellipse builds an approximate ellipse using four cubic Bézier curves.
func ellipse(cx, cy, rx, ry float64) *path.Data {
	p := &path.Data{}
	appendEllipse(p, cx, cy, rx, ry)
	return p
}

func appendEllipse(p *path.Data, cx, cy, rx, ry float64) {
	kx := rx * kappa
	ky := ry * kappa
	p.MoveTo(pt(cx+rx, cy)).
		CubeTo(pt(cx+rx, cy-ky), pt(cx+kx, cy-ry), pt(cx, cy-ry)).
		CubeTo(pt(cx-kx, cy-ry), pt(cx-rx, cy-ky), pt(cx-rx, cy)).
		CubeTo(pt(cx-rx, cy+ky), pt(cx-kx, cy+ry), pt(cx, cy+ry)).
		CubeTo(pt(cx+kx, cy+ry), pt(cx+rx, cy+ky), pt(cx+rx, cy)).
		Close()
}

// ring builds two concentric circles.
func ring(cx, cy, outer, inner float64) *path.Data {
	p := &path.Data{}
	appendEllipse(p, cx, cy, outer, outer)
	appendEllipse(p, cx, cy, inner, inner)
	return p
}

// crescent builds a disc and a smaller disc shifted right by dx. Filled
// with the even-odd rule, the overlap of the two is left empty.
func crescent(cx, cy, r, rShadow, dx float64) *path.Data {
	p := &path.Data{}
	appendEllipse(p, cx, cy, r, r)
	appendEllipse(p, cx+dx, cy, rShadow, rShadow)
	return p
}
