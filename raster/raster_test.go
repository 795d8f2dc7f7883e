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

package raster

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// collect rasterises p into a dense w×h coverage buffer.
func collect(r *Rasteriser, p *path.Data, rule FillRule, w, h int) []float32 {
	buf := make([]float32, w*h)
	r.Fill(p, rule, func(y, xMin int, coverage []float32) {
		copy(buf[y*w+xMin:], coverage)
	})
	return buf
}

func square(x0, y0, x1, y1 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: x0, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y1}).
		LineTo(vec.Vec2{X: x0, Y: y1}).
		Close()
}

// TestTriangleCoverage verifies exact coverage values for a thin triangle.
// The triangle (0,0)→(10,0)→(10,1)→close has a diagonal edge y = x/10.
// Each pixel X should have coverage (2X+1)/20: 0.05, 0.15, ..., 0.95.
func TestTriangleCoverage(t *testing.T) {
	triangle := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 1}).
		Close()

	r := New(rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 1})
	coverage := collect(r, triangle, NonZero, 10, 1)

	const epsilon = 1e-6
	for x := range 10 {
		expected := float32(2*x+1) / 20
		if math.Abs(float64(coverage[x]-expected)) > epsilon {
			t.Errorf("pixel %d: expected coverage %.4f, got %.4f", x, expected, coverage[x])
		}
	}
}

func TestAlignedSquareIsOpaque(t *testing.T) {
	r := New(rect.Rect{URx: 8, URy: 8})
	coverage := collect(r, square(2, 2, 6, 6), NonZero, 8, 8)

	for y := range 8 {
		for x := range 8 {
			want := float32(0)
			if x >= 2 && x < 6 && y >= 2 && y < 6 {
				want = 1
			}
			if got := coverage[y*8+x]; got != want {
				t.Errorf("pixel (%d,%d): expected %g, got %g", x, y, want, got)
			}
		}
	}
}

func TestHalfPixelOffset(t *testing.T) {
	// shifting by half a pixel through the CTM halves the coverage of
	// the boundary pixels and quarters it at the corners
	r := New(rect.Rect{URx: 8, URy: 8})
	r.CTM = matrix.Matrix{1, 0, 0, 1, 0.5, 0.5}
	coverage := collect(r, square(2, 2, 5, 5), NonZero, 8, 8)

	cases := []struct {
		x, y int
		want float32
	}{
		{2, 2, 0.25},
		{3, 2, 0.5},
		{2, 3, 0.5},
		{3, 3, 1},
		{4, 4, 1},
		{5, 5, 0.25},
		{5, 3, 0.5},
		{1, 1, 0},
		{6, 6, 0},
	}
	for _, c := range cases {
		got := coverage[c.y*8+c.x]
		if math.Abs(float64(got-c.want)) > 1e-6 {
			t.Errorf("pixel (%d,%d): expected %g, got %g", c.x, c.y, c.want, got)
		}
	}
}

func TestEvenOddHole(t *testing.T) {
	outer := square(0, 0, 8, 8)
	inner := square(2, 2, 6, 6)
	p := &path.Data{
		Cmds:   append(append([]path.Command{}, outer.Cmds...), inner.Cmds...),
		Coords: append(append([]vec.Vec2{}, outer.Coords...), inner.Coords...),
	}

	r := New(rect.Rect{URx: 8, URy: 8})

	evenOdd := collect(r, p, EvenOdd, 8, 8)
	if got := evenOdd[4*8+4]; got != 0 {
		t.Errorf("even-odd: expected hole at (4,4), got coverage %g", got)
	}
	if got := evenOdd[0]; got != 1 {
		t.Errorf("even-odd: expected full coverage at (0,0), got %g", got)
	}

	// both squares have the same orientation, so the winding number
	// inside the inner square is two
	nonZero := collect(r, p, NonZero, 8, 8)
	if got := nonZero[4*8+4]; got != 1 {
		t.Errorf("non-zero: expected full coverage at (4,4), got %g", got)
	}
}

func TestOpenSubpathIsClosed(t *testing.T) {
	open := (&path.Data{}).
		MoveTo(vec.Vec2{X: 1, Y: 1}).
		LineTo(vec.Vec2{X: 5, Y: 1}).
		LineTo(vec.Vec2{X: 5, Y: 5}).
		LineTo(vec.Vec2{X: 1, Y: 5})

	r := New(rect.Rect{URx: 6, URy: 6})
	a := collect(r, open, NonZero, 6, 6)
	b := collect(r, square(1, 1, 5, 5), NonZero, 6, 6)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("pixel %d: open path coverage %g differs from closed path %g", i, a[i], b[i])
		}
	}
}

func TestClipLimitsOutput(t *testing.T) {
	r := New(rect.Rect{LLx: 2, LLy: 2, URx: 4, URy: 4})
	r.Fill(square(-10, -10, 10, 10), NonZero, func(y, xMin int, coverage []float32) {
		if y < 2 || y >= 4 {
			t.Errorf("row %d is outside the clip rectangle", y)
		}
		if xMin < 2 || xMin+len(coverage) > 4 {
			t.Errorf("row %d: span [%d,%d) exceeds the clip rectangle", y, xMin, xMin+len(coverage))
		}
		for i, c := range coverage {
			if c != 1 {
				t.Errorf("pixel (%d,%d): expected full coverage, got %g", xMin+i, y, c)
			}
		}
	})
}

func TestCubicCircleArea(t *testing.T) {
	const (
		cx, cy, radius = 32.0, 32.0, 20.0
		kappa          = 0.5522847498307936
	)
	k := radius * kappa
	circle := (&path.Data{}).
		MoveTo(vec.Vec2{X: cx + radius, Y: cy}).
		CubeTo(vec.Vec2{X: cx + radius, Y: cy - k}, vec.Vec2{X: cx + k, Y: cy - radius}, vec.Vec2{X: cx, Y: cy - radius}).
		CubeTo(vec.Vec2{X: cx - k, Y: cy - radius}, vec.Vec2{X: cx - radius, Y: cy - k}, vec.Vec2{X: cx - radius, Y: cy}).
		CubeTo(vec.Vec2{X: cx - radius, Y: cy + k}, vec.Vec2{X: cx - k, Y: cy + radius}, vec.Vec2{X: cx, Y: cy + radius}).
		CubeTo(vec.Vec2{X: cx + k, Y: cy + radius}, vec.Vec2{X: cx + radius, Y: cy + k}, vec.Vec2{X: cx + radius, Y: cy}).
		Close()

	r := New(rect.Rect{URx: 64, URy: 64})
	r.Flatness = 0.05
	var total float64
	r.Fill(circle, NonZero, func(y, xMin int, coverage []float32) {
		for _, c := range coverage {
			total += float64(c)
		}
	})

	want := math.Pi * radius * radius
	if math.Abs(total-want)/want > 0.005 {
		t.Errorf("expected area %.1f, got %.1f", want, total)
	}
}

func TestQuadraticIsFlattened(t *testing.T) {
	// a parabolic segment closed by its chord covers 2/3 of the
	// triangle spanned by its control points
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 40}).
		QuadTo(vec.Vec2{X: 20, Y: 0}, vec.Vec2{X: 40, Y: 40}).
		Close()

	r := New(rect.Rect{URx: 40, URy: 40})
	r.Flatness = 0.05
	var total float64
	r.Fill(p, NonZero, func(y, xMin int, coverage []float32) {
		for _, c := range coverage {
			total += float64(c)
		}
	})

	want := 2.0 / 3.0 * (40 * 40 / 2)
	if math.Abs(total-want)/want > 0.01 {
		t.Errorf("expected area %.1f, got %.1f", want, total)
	}
}

func TestEmptyPaths(t *testing.T) {
	r := New(rect.Rect{URx: 8, URy: 8})
	emit := func(y, xMin int, coverage []float32) {
		t.Errorf("unexpected output for row %d", y)
	}

	r.Fill(nil, NonZero, emit)
	r.Fill(&path.Data{}, NonZero, emit)

	// a horizontal line has no interior
	line := (&path.Data{}).
		MoveTo(vec.Vec2{X: 1, Y: 4}).
		LineTo(vec.Vec2{X: 7, Y: 4})
	r.Fill(line, NonZero, emit)

	// shapes outside the clip rectangle produce nothing
	r.Fill(square(20, 20, 30, 30), NonZero, emit)
}

func TestReuseAcrossClips(t *testing.T) {
	r := New(rect.Rect{URx: 64, URy: 64})
	big := collect(r, square(0, 0, 64, 64), NonZero, 64, 64)
	if big[63*64+63] != 1 {
		t.Fatalf("expected full coverage in the large square")
	}

	r.Reset(rect.Rect{URx: 4, URy: 4})
	small := collect(r, square(1, 1, 3, 3), NonZero, 4, 4)
	want := []float32{
		0, 0, 0, 0,
		0, 1, 1, 0,
		0, 1, 1, 0,
		0, 0, 0, 0,
	}
	for i := range want {
		if small[i] != want[i] {
			t.Errorf("pixel %d: expected %g, got %g", i, want[i], small[i])
		}
	}
}
