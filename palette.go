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

import "image/color"

// The icon palette. All colours are opaque.
var (
	SkyBlue   = color.NRGBA{R: 0x38, G: 0xBD, B: 0xF8, A: 0xFF} // background disc
	PaleBlue  = color.NRGBA{R: 0x7D, G: 0xD3, B: 0xFC, A: 0xFF} // inner disc and moon shadow
	MoonWhite = color.NRGBA{R: 0xF0, G: 0xF9, B: 0xFF, A: 0xFF} // moon body
	StarWhite = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)
