// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pool

import (
	"image/color"

	"cogentcore.org/polygrid/math32"
	"cogentcore.org/polygrid/wireframe"
)

// Handle identifies a node on a [Surface].
type Handle uint32

// Root is the handle of the root node of every [Surface].
const Root Handle = 0

// Surface is the rendering surface that displays the pool: a tree
// of nodes, each with a transform and a set of line primitives.
type Surface interface {

	// AttachNode adds a new empty node under the given parent
	// and returns its handle.
	AttachNode(parent Handle) Handle

	// DetachNode removes the given node (and anything under it).
	DetachNode(n Handle)

	// SetNodeTransform sets the position and the euler rotation
	// (radians, XYZ order) of the node.
	SetNodeTransform(n Handle, pos, rot math32.Vector3)

	// SetNodePrimitives replaces all of the primitives of the node.
	SetNodePrimitives(n Handle, w *wireframe.Wire)

	// SetNodeColor sets a color that overrides the colors of the
	// primitives of the node, or clears it if c is nil.
	SetNodeColor(n Handle, c *color.RGBA)

	// SetBackground sets the background color of the surface.
	SetBackground(c color.RGBA)
}
