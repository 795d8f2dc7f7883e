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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

const (
	// defaultFlatness is the default distance, in pixels, between an
	// ellipse and its polygonal approximation.
	defaultFlatness = 0.1

	minEllipseSegments = 8
	maxEllipseSegments = 4096
)

// EllipsePath returns a closed polygon approximating the ellipse
// inscribed in bounds, with all vertices on the ellipse. The polygon
// therefore never leaves the true ellipse and deviates from it by at
// most flatness. Empty bounds give nil.
func EllipsePath(bounds image.Rectangle, flatness float64) *path.Data {
	bounds = bounds.Canon()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil
	}
	if !(flatness > 0) {
		flatness = defaultFlatness
	}

	cx := float64(bounds.Min.X+bounds.Max.X) / 2
	cy := float64(bounds.Min.Y+bounds.Max.Y) / 2
	rx := float64(bounds.Dx()) / 2
	ry := float64(bounds.Dy()) / 2

	n := ellipseSegments(max(rx, ry), flatness)
	p := &path.Data{}
	for i := range n {
		theta := 2 * math.Pi * float64(i) / float64(n)
		pt := vec.Vec2{X: cx + rx*math.Cos(theta), Y: cy + ry*math.Sin(theta)}
		if i == 0 {
			p.MoveTo(pt)
		} else {
			p.LineTo(pt)
		}
	}
	return p.Close()
}

// ellipseSegments returns the number of chords needed so that the
// sagitta of each chord of a circle with radius r is at most flatness.
func ellipseSegments(r, flatness float64) int {
	if r <= flatness {
		return minEllipseSegments
	}
	n := int(math.Ceil(math.Pi / math.Acos(1-flatness/r)))
	return min(max(n, minEllipseSegments), maxEllipseSegments)
}

// PolygonPath returns the closed path through pts, or nil if pts has
// fewer than three points.
func PolygonPath(pts []image.Point) *path.Data {
	if len(pts) < 3 {
		return nil
	}
	p := &path.Data{}
	p.MoveTo(toVec(pts[0]))
	for _, pt := range pts[1:] {
		p.LineTo(toVec(pt))
	}
	return p.Close()
}

func toVec(p image.Point) vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}

// walkPolygon replays a path built by EllipsePath or PolygonPath as
// straight line segments, shifted to pixel centres. Curve segments are
// replaced by the chord to their end point.
func walkPolygon(p *path.Data, moveTo, lineTo func(x, y float64), closePath func()) {
	k := 0
	for _, cmd := range p.Cmds {
		var pt vec.Vec2
		switch cmd {
		case path.CmdMoveTo:
			pt = p.Coords[k]
			k++
			moveTo(pt.X+pixelCentre, pt.Y+pixelCentre)
			continue
		case path.CmdLineTo:
			pt = p.Coords[k]
			k++
		case path.CmdQuadTo:
			pt = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			pt = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			closePath()
			continue
		}
		lineTo(pt.X+pixelCentre, pt.Y+pixelCentre)
	}
}
