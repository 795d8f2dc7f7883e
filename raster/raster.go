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

// Package raster computes anti-aliased pixel coverage for filled paths.
//
// Coverage is the exact area of the (flattened) path inside each pixel.
// It is accumulated per scanline as signed vertical extents ("cover") and
// area weights, and integrated from left to right.
package raster

//go:generate go run seehuhn.de/go/moonicon/testcases/genpdf

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// DefaultFlatness is the curve flattening tolerance, in device pixels,
// installed by New and Reset.
const DefaultFlatness = 0.25

const (
	// horizontalEdgeThreshold is the minimum vertical extent for an edge
	// to contribute to coverage.
	horizontalEdgeThreshold = 1e-10

	// coverageEpsilon absorbs float32 round-off: coverage closer than
	// this to 0 or 1 is snapped.
	coverageEpsilon = 1e-5

	// maxCurveSegments bounds the number of lines a single curve is
	// flattened into.
	maxCurveSegments = 1024
)

// FillRule selects how the winding number of a point decides whether it
// is inside the path.
type FillRule int

const (
	// NonZero treats points with a non-zero winding number as inside.
	NonZero FillRule = iota

	// EvenOdd treats points with an odd winding number as inside.
	EvenOdd
)

func (r FillRule) String() string {
	switch r {
	case NonZero:
		return "nonzero"
	case EvenOdd:
		return "evenodd"
	default:
		return "unknown"
	}
}

// edge is a line segment in device coordinates, stored with y0 < y1.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64
	dir    float32 // +1 if the path runs downwards along the edge, -1 if upwards
}

// Rasteriser converts paths into per-pixel coverage values between 0
// (outside) and 1 (inside). Internal buffers grow as needed and are
// reused by later calls, so one Rasteriser should be kept per target.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM maps user space to device space. Must be non-singular.
	CTM matrix.Matrix

	// Clip bounds the output, in device coordinates.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a
	// curve and the line segments replacing it. Must be positive.
	Flatness float64

	edges  []edge
	active []int
	cover  []float32
	area   []float32

	haveBBox bool
	bboxMin  vec.Vec2
	bboxMax  vec.Vec2
}

// New returns a Rasteriser for the given clip rectangle, with the
// identity CTM and DefaultFlatness.
func New(clip rect.Rect) *Rasteriser {
	r := &Rasteriser{}
	r.Reset(clip)
	return r
}

// Reset restores the identity CTM and DefaultFlatness and installs a new
// clip rectangle. Internal buffers are kept.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = DefaultFlatness
}

// Fill rasterises the interior of p using the given fill rule. Open
// subpaths are closed implicitly. The emit callback receives the
// coverage of each non-empty scanline, trimmed to the range of non-zero
// values; the slice is only valid during the call.
func (r *Rasteriser) Fill(p *path.Data, rule FillRule, emit func(y, xMin int, coverage []float32)) {
	xMin, xMax, yMin, yMax, ok := r.collectEdges(p)
	if !ok {
		return
	}

	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.y0, b.y0)
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		top, bottom := float64(y), float64(y+1)

		for next < len(r.edges) && r.edges[next].y0 < bottom {
			r.active = append(r.active, next)
			next++
		}
		live := r.active[:0]
		for _, i := range r.active {
			if r.edges[i].y1 > top {
				live = append(live, i)
			}
		}
		r.active = live
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		for _, i := range r.active {
			r.edges[i].accumulate(top, bottom, xMin, r.cover, r.area)
		}

		if rule == EvenOdd {
			integrateEvenOdd(r.cover, r.area)
		} else {
			integrateNonZero(r.cover, r.area)
		}

		if span, offset := trimZeros(r.cover); span != nil {
			emit(y, xMin+offset, span)
		}
	}
}

// collectEdges walks p, flattens curves and stores the device space edge
// list. It returns the pixel bounding box of the edges, clamped to the
// clip rectangle.
func (r *Rasteriser) collectEdges(p *path.Data) (xMin, xMax, yMin, yMax int, ok bool) {
	r.edges = r.edges[:0]
	r.haveBBox = false
	if p == nil {
		return 0, 0, 0, 0, false
	}
	if !(r.Flatness > 0) {
		r.Flatness = DefaultFlatness
	}

	var current, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			r.addEdge(current, start)
			current = p.Coords[k]
			start = current
			k++
		case path.CmdLineTo:
			r.addEdge(current, p.Coords[k])
			current = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuad(current, p.Coords[k], p.Coords[k+1])
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCube(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2])
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			r.addEdge(current, start)
			current = start
		}
	}
	r.addEdge(current, start)

	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(r.bboxMin.X)), int(math.Floor(r.Clip.LLx)))
	xMax = min(int(math.Floor(r.bboxMax.X))+1, int(math.Ceil(r.Clip.URx)))
	yMin = max(int(math.Floor(r.bboxMin.Y)), int(math.Floor(r.Clip.LLy)))
	yMax = min(int(math.Floor(r.bboxMax.Y))+1, int(math.Ceil(r.Clip.URy)))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// toDevice applies the full CTM to a point.
func (r *Rasteriser) toDevice(p vec.Vec2) vec.Vec2 {
	m := r.CTM
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// toDeviceLinear applies only the linear part of the CTM, for measuring
// curve deviations in device pixels.
func (r *Rasteriser) toDeviceLinear(v vec.Vec2) vec.Vec2 {
	m := r.CTM
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y,
		Y: m[1]*v.X + m[3]*v.Y,
	}
}

// addEdge appends the segment from a to b, given in user space.
// Horizontal and zero-length segments are dropped.
func (r *Rasteriser) addEdge(a, b vec.Vec2) {
	a = r.toDevice(a)
	b = r.toDevice(b)

	dy := b.Y - a.Y
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}

	e := edge{x0: a.X, y0: a.Y, x1: b.X, y1: b.Y, dir: 1}
	if dy < 0 {
		e = edge{x0: b.X, y0: b.Y, x1: a.X, y1: a.Y, dir: -1}
	}
	e.dxdy = (e.x1 - e.x0) / (e.y1 - e.y0)
	r.edges = append(r.edges, e)

	lo := vec.Vec2{X: min(a.X, b.X), Y: e.y0}
	hi := vec.Vec2{X: max(a.X, b.X), Y: e.y1}
	if !r.haveBBox {
		r.bboxMin, r.bboxMax = lo, hi
		r.haveBBox = true
		return
	}
	r.bboxMin = vec.Vec2{X: min(r.bboxMin.X, lo.X), Y: min(r.bboxMin.Y, lo.Y)}
	r.bboxMax = vec.Vec2{X: max(r.bboxMax.X, hi.X), Y: max(r.bboxMax.Y, hi.Y)}
}

// flattenQuad replaces the quadratic Bézier curve p0, p1, p2 by line
// segments.
func (r *Rasteriser) flattenQuad(p0, p1, p2 vec.Vec2) {
	// the distance between curve and chord is at most |p0 - 2p1 + p2|/4
	dev := r.toDeviceLinear(p0.Sub(p1.Mul(2)).Add(p2)).Length() / 4
	n := segmentCount(math.Sqrt(dev / r.Flatness))

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		r.addEdge(prev, pt)
		prev = pt
	}
}

// flattenCube replaces the cubic Bézier curve p0, p1, p2, p3 by line
// segments, using Wang's formula for the segment count.
func (r *Rasteriser) flattenCube(p0, p1, p2, p3 vec.Vec2) {
	d1 := r.toDeviceLinear(p0.Sub(p1.Mul(2)).Add(p2)).Length()
	d2 := r.toDeviceLinear(p1.Sub(p2.Mul(2)).Add(p3)).Length()
	n := segmentCount(math.Sqrt(3 * max(d1, d2) / (4 * r.Flatness)))

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		r.addEdge(prev, pt)
		prev = pt
	}
}

func segmentCount(x float64) int {
	if !(x > 1) {
		return 1
	}
	return min(int(math.Ceil(x)), maxCurveSegments)
}

// accumulate adds the contribution of the part of e between the
// scanline boundaries top and bottom. The buffers cover pixel columns
// starting at xMin; contributions left of the buffer go into the first
// cell, contributions right of it are dropped.
func (e *edge) accumulate(top, bottom float64, xMin int, cover, area []float32) {
	ya := max(top, e.y0)
	yb := min(bottom, e.y1)
	if yb <= ya {
		return
	}

	xa := e.x0 + e.dxdy*(ya-e.y0)
	xb := e.x0 + e.dxdy*(yb-e.y0)
	lo, hi := min(xa, xb), max(xa, xb)

	first := int(math.Floor(lo))
	last := int(math.Floor(hi))
	if first == last {
		deposit(cover, area, first-xMin, e.dir*float32(yb-ya), (lo+hi)/2-float64(first))
		return
	}

	// The segment is linear, so the vertical extent inside a column is
	// proportional to its horizontal extent there.
	dydx := (yb - ya) / (hi - lo)
	for px := first; px <= last; px++ {
		l := max(lo, float64(px))
		h := min(hi, float64(px+1))
		if h <= l {
			continue
		}
		deposit(cover, area, px-xMin, e.dir*float32((h-l)*dydx), (l+h)/2-float64(px))
	}
}

// deposit records a signed vertical extent v crossing column idx at
// horizontal offset frac inside the pixel.
func deposit(cover, area []float32, idx int, v float32, frac float64) {
	switch {
	case idx < 0:
		cover[0] += v
		area[0] += v
	case idx < len(cover):
		cover[idx] += v
		area[idx] += v * float32(1-frac)
	}
}

// integrateNonZero turns accumulated cover and area values into coverage
// using the non-zero winding rule. The result is stored in cover.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = snap(min(v, 1))
	}
}

// integrateEvenOdd turns accumulated cover and area values into coverage
// using the even-odd rule. The result is stored in cover.
func integrateEvenOdd(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		v = float32(math.Mod(float64(v), 2))
		if v > 1 {
			v = 2 - v
		}
		cover[i] = snap(v)
	}
}

func snap(v float32) float32 {
	switch {
	case v < coverageEpsilon:
		return 0
	case v > 1-coverageEpsilon:
		return 1
	default:
		return v
	}
}

// trimZeros returns the non-zero part of coverage and its offset, or
// nil if all values are zero.
func trimZeros(coverage []float32) ([]float32, int) {
	lo := 0
	for lo < len(coverage) && coverage[lo] == 0 {
		lo++
	}
	if lo == len(coverage) {
		return nil, 0
	}
	hi := len(coverage)
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}
