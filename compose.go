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

	"seehuhn.de/go/moonicon/canvas"
)

// Draw paints the icon onto c: the background, inner, moon and shadow
// discs in this order, followed by the stars.
func (l *Layout) Draw(c canvas.Canvas) {
	for _, d := range []Disc{l.Background, l.Inner, l.Moon, l.Shadow} {
		c.FillEllipse(d.Bounds(), d.Color)
	}
	for _, s := range l.Stars {
		c.FillPolygon(s.Vertices(), s.Color)
	}
}

// Compose renders the icon with the given size onto a new, fully
// transparent size×size surface and returns the result. With the
// default raster backend the image is an *image.NRGBA.
func Compose(size int, opts ...Option) (img image.Image, err error) {
	cfg := newConfig(opts)
	l, err := newLayout(size, cfg)
	if err != nil {
		return nil, err
	}

	s, err := canvas.New(cfg.backend, size, size, canvas.WithAntialias(cfg.antialias))
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := s.Close(); err == nil && cerr != nil {
			img, err = nil, cerr
		}
	}()

	l.Draw(s)
	return s.Image()
}
