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

// Package moonicon composes the moon-and-stars application icon.
//
// The icon is described at a reference size of 128×128 pixels: a sky
// blue background disc, a pale blue inner disc, a white moon disc and a
// pale blue shadow disc which is shifted right to carve the crescent.
// Larger icons add white five-pointed stars, gated by absolute size
// thresholds so that small icons stay legible.
//
// [NewLayout] computes the geometry for a given size, [Layout.Draw]
// replays it onto any [canvas.Canvas], and [Compose] does both on a
// freshly allocated surface.
package moonicon
