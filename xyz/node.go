// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image/color"

	"cogentcore.org/polygrid/math32"
	"cogentcore.org/polygrid/pool"
	"cogentcore.org/polygrid/wireframe"
)

// Node is one node in the [Scene] tree. It has a transform that
// applies to its own primitives and to all nodes under it.
type Node struct {

	// Handle identifies the node in its scene.
	Handle pool.Handle

	// Parent is the handle of the parent node.
	// It is meaningless for the root node.
	Parent pool.Handle

	// Kids are the handles of the children, in attachment order.
	Kids []pool.Handle

	// Pos is the position relative to the parent.
	Pos math32.Vector3

	// Rot is the euler rotation relative to the parent, in radians.
	Rot math32.Vector3

	// Wire is the geometry displayed by the node, if any.
	Wire *wireframe.Wire

	// Color, if set, is used for all of the primitives
	// instead of their own colors.
	Color *color.RGBA
}

// Matrix returns the rotation matrix of the node.
func (nd *Node) Matrix() math32.Matrix3 {
	return math32.Matrix3FromEuler(nd.Rot)
}

// Transform transforms a point in the local space of the node into
// the space of its parent: rotation first, then translation.
func (nd *Node) Transform(v math32.Vector3) math32.Vector3 {
	m := nd.Matrix()
	return v.MulMatrix3(&m).Add(nd.Pos)
}

// SegmentColor returns the color that the given segment is drawn with.
func (nd *Node) SegmentColor(sg *wireframe.Segment) color.RGBA {
	if nd.Color != nil {
		return *nd.Color
	}
	return sg.Color
}

// PointsColor returns the color that the vertex points are drawn with.
func (nd *Node) PointsColor() color.RGBA {
	if nd.Color != nil {
		return *nd.Color
	}
	return nd.Wire.Points.Color
}
