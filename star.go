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
	"image"
	"math"
)

// StarVertices returns the ten vertices of a five-pointed star, with
// outer and inner vertices alternating. The first outer vertex points
// straight up and the inner radius is 0.4 times the outer radius.
// Offsets from center are truncated toward zero.
func StarVertices(center image.Point, radius float64) []image.Point {
	pts := make([]image.Point, 0, 10)
	for i := range 5 {
		outer := float64(i)*72 - 90
		pts = append(pts,
			starPoint(center, radius, outer),
			starPoint(center, 0.4*radius, outer+36))
	}
	return pts
}

func starPoint(center image.Point, r, deg float64) image.Point {
	theta := deg * math.Pi / 180
	return image.Point{
		X: center.X + int(r*math.Cos(theta)),
		Y: center.Y + int(r*math.Sin(theta)),
	}
}
