// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package raster projects an [xyz.Scene] through its camera into
// 2D primitives and rasterizes them into images, which can be
// captured to PNG files.
package raster

import (
	"image/color"

	"cogentcore.org/polygrid/math32"
	"cogentcore.org/polygrid/xyz"
)

// PointSize is the world size of the vertex markers.
const PointSize = 0.05

// Line is a projected segment, in pixel coordinates.
type Line struct {
	X0, Y0 float32
	X1, Y1 float32
	Color  color.RGBA
}

// Dot is a projected vertex marker: a square of Size pixels
// centered at X, Y.
type Dot struct {
	X, Y  float32
	Size  float32
	Color color.RGBA
}

// Frame is a scene projected to a given pixel size, ready to be
// drawn by any 2D backend.
type Frame struct {
	Width, Height int
	Background    color.RGBA
	Lines         []Line
	Dots          []Dot
}

// Project projects every primitive of the scene into a frame of the
// given pixel size, with Y pointing down. Segments with an endpoint
// outside of the camera clipping range are dropped.
func Project(sc *xyz.Scene, width, height int) *Frame {
	fr := &Frame{Width: width, Height: height, Background: sc.Background}
	if width <= 0 || height <= 0 {
		return fr
	}
	cm := &sc.Camera
	w, h := float32(width), float32(height)
	aspect := w / h
	toPixel := func(p math32.Vector3) (x, y float32, ok bool) {
		nx, ny, ok := cm.Project(p, aspect)
		if !ok {
			return 0, 0, false
		}
		return (nx + 1) * w / 2, (1 - ny) * h / 2, true
	}
	sc.WalkDown(func(nd *xyz.Node, world func(math32.Vector3) math32.Vector3) bool {
		if nd.Wire == nil {
			return true
		}
		for i := range nd.Wire.Segments {
			sg := &nd.Wire.Segments[i]
			x0, y0, ok0 := toPixel(world(sg.Start))
			x1, y1, ok1 := toPixel(world(sg.End))
			if !ok0 || !ok1 {
				continue
			}
			fr.Lines = append(fr.Lines, Line{x0, y0, x1, y1, nd.SegmentColor(sg)})
		}
		if nd.Wire.Points == nil {
			return true
		}
		clr := nd.PointsColor()
		for _, p := range nd.Wire.Points.Pos {
			wp := world(p)
			x, y, ok := toPixel(wp)
			if !ok {
				continue
			}
			depth := cm.Distance - wp.Z
			sz := PointSize * cm.Focal() / depth * h / 2
			fr.Dots = append(fr.Dots, Dot{x, y, max(sz, 1), clr})
		}
		return true
	})
	return fr
}
