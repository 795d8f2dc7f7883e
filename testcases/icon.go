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
	"fmt"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/moonicon"
	"seehuhn.de/go/moonicon/canvas"
)

// iconFlatness is the tolerance used to flatten the discs of the icon.
const iconFlatness = 0.1

// pixelCentre maps integer pixel coordinates to pixel centres.
var pixelCentre = matrix.Matrix{1, 0, 0, 1, 0.5, 0.5}

// iconCases returns one test case for every shape drawn on the icons
// of the given sizes.
func iconCases(sizes ...int) []TestCase {
	var cases []TestCase
	for _, size := range sizes {
		l, err := moonicon.NewLayout(size)
		if err != nil {
			panic(err)
		}

		add := func(name string, p any) {
			tc := TestCase{
				Name:   fmt.Sprintf("%d_%s", size, name),
				Width:  size,
				Height: size,
				CTM:    pixelCentre,
			}
			switch p := p.(type) {
			case moonicon.Disc:
				tc.Path = canvas.EllipsePath(p.Bounds(), iconFlatness)
			case moonicon.Star:
				tc.Path = canvas.PolygonPath(p.Vertices())
			}
			if tc.Path != nil {
				cases = append(cases, tc)
			}
		}

		add("background", l.Background)
		add("inner", l.Inner)
		add("moon", l.Moon)
		add("shadow", l.Shadow)
		for i, s := range l.Stars {
			add(fmt.Sprintf("star%d", i+1), s)
		}
	}
	return cases
}
