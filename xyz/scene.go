// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xyz provides a retained scene tree of wireframe nodes,
// viewed through a perspective [Camera]. A [Scene] is a [pool.Surface].
package xyz

import (
	"image/color"
	"log/slog"
	"slices"

	"cogentcore.org/polygrid/colors"
	"cogentcore.org/polygrid/math32"
	"cogentcore.org/polygrid/pool"
	"cogentcore.org/polygrid/wireframe"
)

// Scene is the root of a tree of [Node]s, with a background color
// and a camera. It is not safe for concurrent use.
type Scene struct {

	// Background is the color the scene is drawn on.
	Background color.RGBA

	// Camera views the scene.
	Camera Camera

	nodes map[pool.Handle]*Node
	next  pool.Handle
}

var _ pool.Surface = (*Scene)(nil)

// NewScene returns a new scene with only a root node,
// a black background and the default camera.
func NewScene() *Scene {
	sc := &Scene{Background: colors.Black}
	sc.Camera.Defaults()
	sc.nodes = map[pool.Handle]*Node{pool.Root: {Handle: pool.Root}}
	return sc
}

// Node returns the node with the given handle, or nil.
func (sc *Scene) Node(h pool.Handle) *Node {
	return sc.nodes[h]
}

// NumNodes returns the number of nodes, including the root.
func (sc *Scene) NumNodes() int {
	return len(sc.nodes)
}

// AttachNode adds a new empty node under the given parent and
// returns its handle. If the parent does not exist, the node is
// attached under the root.
func (sc *Scene) AttachNode(parent pool.Handle) pool.Handle {
	pn, ok := sc.nodes[parent]
	if !ok {
		slog.Error("xyz.Scene.AttachNode: unknown parent, using root", "parent", parent)
		pn = sc.nodes[pool.Root]
	}
	sc.next++
	nd := &Node{Handle: sc.next, Parent: pn.Handle}
	sc.nodes[nd.Handle] = nd
	pn.Kids = append(pn.Kids, nd.Handle)
	return nd.Handle
}

// DetachNode removes the given node and everything under it.
// The root cannot be detached.
func (sc *Scene) DetachNode(h pool.Handle) {
	nd, ok := sc.nodes[h]
	if !ok || h == pool.Root {
		return
	}
	if pn, ok := sc.nodes[nd.Parent]; ok {
		pn.Kids = slices.DeleteFunc(pn.Kids, func(k pool.Handle) bool { return k == h })
	}
	sc.deleteTree(nd)
}

func (sc *Scene) deleteTree(nd *Node) {
	for _, k := range nd.Kids {
		if kn, ok := sc.nodes[k]; ok {
			sc.deleteTree(kn)
		}
	}
	delete(sc.nodes, nd.Handle)
}

// SetNodeTransform sets the position and euler rotation of a node.
func (sc *Scene) SetNodeTransform(h pool.Handle, pos, rot math32.Vector3) {
	if nd, ok := sc.nodes[h]; ok {
		nd.Pos = pos
		nd.Rot = rot
	}
}

// SetNodePrimitives sets the geometry of a node.
func (sc *Scene) SetNodePrimitives(h pool.Handle, w *wireframe.Wire) {
	if nd, ok := sc.nodes[h]; ok {
		nd.Wire = w
	}
}

// SetNodeColor sets the color override of a node; nil removes it.
func (sc *Scene) SetNodeColor(h pool.Handle, c *color.RGBA) {
	if nd, ok := sc.nodes[h]; ok {
		nd.Color = c
	}
}

// SetBackground sets the background color.
func (sc *Scene) SetBackground(c color.RGBA) {
	sc.Background = c
}

// WalkDown calls fn on every node, parents before their kids and
// kids in order, starting at the root. The transform passed to fn
// maps points in the local space of the node to world space.
// If fn returns false, the kids of that node are skipped.
func (sc *Scene) WalkDown(fn func(nd *Node, world func(math32.Vector3) math32.Vector3) bool) {
	sc.walk(sc.nodes[pool.Root], func(v math32.Vector3) math32.Vector3 { return v }, fn)
}

func (sc *Scene) walk(nd *Node, parent func(math32.Vector3) math32.Vector3, fn func(nd *Node, world func(math32.Vector3) math32.Vector3) bool) {
	world := parent
	if nd.Handle != pool.Root {
		m := nd.Matrix()
		pos := nd.Pos
		world = func(v math32.Vector3) math32.Vector3 {
			return parent(v.MulMatrix3(&m).Add(pos))
		}
	}
	if !fn(nd, world) {
		return
	}
	for _, k := range nd.Kids {
		if kn, ok := sc.nodes[k]; ok {
			sc.walk(kn, world, fn)
		}
	}
}

// Segments returns the total number of segments drawn by the scene.
func (sc *Scene) Segments() int {
	n := 0
	for _, nd := range sc.nodes {
		n += nd.Wire.NumSegments()
	}
	return n
}
