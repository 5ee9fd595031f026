// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wireframe builds the renderable line primitives for one
// polyhedron: its edges shrunk by a gap at both ends, and optional
// vertex markers shown when there is a gap.
package wireframe

import (
	"image/color"

	"cogentcore.org/polygrid/math32"
	"cogentcore.org/polygrid/polyhedra"
)

// Segment is one rendered edge, from Start to End.
type Segment struct {
	Start math32.Vector3
	End   math32.Vector3
	Color color.RGBA
}

// Length returns the length of the segment.
func (sg Segment) Length() float32 {
	return sg.Start.DistanceTo(sg.End)
}

// Points is a set of vertex markers, drawn as points of a fixed size.
type Points struct {
	Pos   []math32.Vector3
	Color color.RGBA
}

// Wire is the complete set of primitives for one polyhedron instance.
// Points is nil unless the wire was built with a positive gap.
type Wire struct {
	Segments []Segment
	Points   *Points
}

// NumSegments returns the number of segments, tolerating a nil Wire.
func (w *Wire) NumSegments() int {
	if w == nil {
		return 0
	}
	return len(w.Segments)
}

// Bounds returns the bounding box of all segment endpoints and points.
// ok is false if the wire is empty.
func (w *Wire) Bounds() (min, max math32.Vector3, ok bool) {
	add := func(p math32.Vector3) {
		if !ok {
			min, max, ok = p, p, true
			return
		}
		min = min.Min(p)
		max = max.Max(p)
	}
	if w == nil {
		return
	}
	for _, sg := range w.Segments {
		add(sg.Start)
		add(sg.End)
	}
	if w.Points != nil {
		for _, p := range w.Points.Pos {
			add(p)
		}
	}
	return
}

// Build builds the wire for the given shape, size, gap and color.
// Each edge is shrunk by gap from both of its endpoints along its
// direction. Edges whose remaining length is not positive (the gap
// is at least half of the edge length) are omitted. If gap > 0, a
// point is added at every original vertex. Build always produces
// the full set of primitives, so identical inputs give identical
// output.
func Build(shape polyhedra.Shapes, size, gap float32, clr color.RGBA) *Wire {
	vs := shape.Vertices(size)
	es := shape.Edges()
	w := &Wire{Segments: make([]Segment, 0, len(es))}
	for _, e := range es {
		a, b := vs[e.A], vs[e.B]
		delta := b.Sub(a)
		length := delta.Length()
		if length-2*gap <= 0 {
			continue
		}
		d := delta.DivScalar(length)
		w.Segments = append(w.Segments, Segment{
			Start: a.Add(d.MulScalar(gap)),
			End:   b.Sub(d.MulScalar(gap)),
			Color: clr,
		})
	}
	if gap > 0 {
		w.Points = &Points{Pos: vs, Color: clr}
	}
	return w
}

// BuildID is [Build] for a shape identifier, returning a
// [polyhedra.InvalidShapeError] for an unknown one.
func BuildID(id int, size, gap float32, clr color.RGBA) (*Wire, error) {
	sh, err := polyhedra.Lookup(id)
	if err != nil {
		return nil, err
	}
	return Build(sh, size, gap, clr), nil
}
