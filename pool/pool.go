// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pool manages the ordered collection of live polyhedron
// instances shown on a [Surface], growing and shrinking it to a
// target count, laying it out on a grid and rebuilding geometry.
package pool

import (
	"fmt"
	"image/color"
	"strconv"

	"cogentcore.org/polygrid/base/plan"
	"cogentcore.org/polygrid/grid"
	"cogentcore.org/polygrid/math32"
	"cogentcore.org/polygrid/polyhedra"
	"cogentcore.org/polygrid/wireframe"
)

// Params are the parameters that determine the geometry and
// layout of every instance.
type Params struct {
	Shape   polyhedra.Shapes
	Size    float32
	Spacing float32
	Gap     float32
	Color   color.RGBA
}

// check returns an error if the params cannot be applied.
// Other ranges are validated by the caller.
func (p *Params) check() error {
	if !p.Shape.IsValid() {
		return &polyhedra.InvalidShapeError{ID: int(p.Shape)}
	}
	return nil
}

// Instance is one polyhedron in the pool.
type Instance struct {

	// Index is the position of the instance in the pool.
	Index int

	// Node is the surface node displaying the instance.
	Node Handle

	// Position is derived from Index, the pool size and the spacing.
	Position math32.Vector3

	// Rotation is the accumulated euler rotation in radians.
	Rotation math32.Vector3

	// ColorOverride, if set, is displayed instead of the wire colors.
	ColorOverride *color.RGBA

	// Wire is the current geometry.
	Wire *wireframe.Wire
}

func (in *Instance) PlanName() string {
	return instanceName(in.Index)
}

func instanceName(i int) string {
	return "polyhedron-" + strconv.Itoa(i)
}

// Reconcile returns cur updated to hold target instances. Excess
// instances are removed from the end, detaching their nodes; missing
// ones are appended, each with a newly attached empty node under
// parent. Then every instance is positioned on the grid for target
// instances and its geometry is rebuilt. Surviving instances keep
// their relative order. If p is not valid, cur is returned unchanged
// together with the error.
func Reconcile(cur []*Instance, target int, p Params, sf Surface, parent Handle) ([]*Instance, error) {
	if err := p.check(); err != nil {
		return cur, err
	}
	if target < 0 {
		return cur, fmt.Errorf("pool.Reconcile: negative target count %d", target)
	}
	insts, _ := plan.Update(cur, target, instanceName,
		func(name string, i int) *Instance {
			return &Instance{Index: i, Node: sf.AttachNode(parent)}
		},
		func(in *Instance) {
			sf.DetachNode(in.Node)
		})
	for i, in := range insts {
		in.Index = i
		in.Position = grid.Position(i, target, p.Spacing)
		build(in, p, sf)
	}
	return insts, nil
}

func build(in *Instance, p Params, sf Surface) {
	in.Wire = wireframe.Build(p.Shape, p.Size, p.Gap, p.Color)
	sf.SetNodePrimitives(in.Node, in.Wire)
	sf.SetNodeTransform(in.Node, in.Position, in.Rotation)
	sf.SetNodeColor(in.Node, in.ColorOverride)
}

// Pool is a [Reconcile]d list of instances on one surface.
// It is not safe for concurrent use.
type Pool struct {

	// Surface displays the instances.
	Surface Surface

	// Parent is the node the instance nodes are attached to.
	Parent Handle

	insts []*Instance
}

// New returns a new empty pool for the given surface and parent node.
func New(sf Surface, parent Handle) *Pool {
	return &Pool{Surface: sf, Parent: parent}
}

// Instances returns the current instances, in index order.
// The slice must not be modified.
func (pl *Pool) Instances() []*Instance {
	return pl.insts
}

// Len returns the number of instances.
func (pl *Pool) Len() int {
	return len(pl.insts)
}

// Reconcile resizes the pool to target instances and repositions
// and rebuilds all of them. See [Reconcile].
func (pl *Pool) Reconcile(target int, p Params) error {
	insts, err := Reconcile(pl.insts, target, p, pl.Surface, pl.Parent)
	if err != nil {
		return err
	}
	pl.insts = insts
	return nil
}

// Rebuild rebuilds the geometry of every instance without changing
// the pool size or positions. If p is not valid, nothing is changed.
func (pl *Pool) Rebuild(p Params) error {
	if err := p.check(); err != nil {
		return err
	}
	for _, in := range pl.insts {
		build(in, p, pl.Surface)
	}
	return nil
}

// Reposition moves every instance to its grid position for the
// given spacing, without rebuilding geometry.
func (pl *Pool) Reposition(spacing float32) {
	n := len(pl.insts)
	for i, in := range pl.insts {
		in.Position = grid.Position(i, n, spacing)
		pl.Surface.SetNodeTransform(in.Node, in.Position, in.Rotation)
	}
}

// Sync pushes the rotation and color override of every instance to
// the surface, after they have been changed by an animation tick.
func (pl *Pool) Sync() {
	for _, in := range pl.insts {
		pl.Surface.SetNodeTransform(in.Node, in.Position, in.Rotation)
		pl.Surface.SetNodeColor(in.Node, in.ColorOverride)
	}
}

// ClearOverrides removes the color override of every instance,
// so that the colors of their geometry are shown again.
func (pl *Pool) ClearOverrides() {
	for _, in := range pl.insts {
		in.ColorOverride = nil
		pl.Surface.SetNodeColor(in.Node, nil)
	}
}
