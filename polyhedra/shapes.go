// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package polyhedra is the catalog of the five regular (Platonic)
// polyhedra. Each shape is identified by its face count and provides
// its vertices for a given size and its fixed edge topology.
//
// Vertex coordinates are normalized per shape so that shapes of the
// same size occupy comparable bounding volumes, which keeps the
// perceived scale uniform when switching between shapes.
package polyhedra

import (
	"fmt"
	"strconv"

	"cogentcore.org/polygrid/math32"
)

// Shapes are the supported regular polyhedra, with values equal
// to the number of faces of each.
type Shapes int32

const (
	Tetrahedron  Shapes = 4
	Cube         Shapes = 6
	Octahedron   Shapes = 8
	Dodecahedron Shapes = 12
	Icosahedron  Shapes = 20
)

// All returns all of the shapes, in ascending face count order.
func All() []Shapes {
	return []Shapes{Tetrahedron, Cube, Octahedron, Dodecahedron, Icosahedron}
}

// InvalidShapeError is returned for a shape identifier that is
// not one of the supported face counts.
type InvalidShapeError struct {
	ID int
}

func (e *InvalidShapeError) Error() string {
	return fmt.Sprintf("polyhedra: invalid shape %d (must be one of 4, 6, 8, 12, 20)", e.ID)
}

// Lookup returns the shape for the given identifier, or an
// [InvalidShapeError] if there is no such shape.
func Lookup(id int) (Shapes, error) {
	sh := Shapes(id)
	if int(sh) != id || !sh.IsValid() {
		return 0, &InvalidShapeError{ID: id}
	}
	return sh, nil
}

// IsValid returns whether this is one of the five supported shapes.
func (sh Shapes) IsValid() bool {
	switch sh {
	case Tetrahedron, Cube, Octahedron, Dodecahedron, Icosahedron:
		return true
	}
	return false
}

// Name returns the human-readable name of the shape.
func (sh Shapes) Name() string {
	switch sh {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Dodecahedron:
		return "Dodecahedron"
	case Icosahedron:
		return "Icosahedron"
	}
	return "Shapes(" + strconv.Itoa(int(sh)) + ")"
}

func (sh Shapes) String() string {
	return sh.Name()
}

// Scale returns the normalization factor applied to the canonical
// unit coordinates of the shape to obtain vertices for size 1.
func (sh Shapes) Scale() float32 {
	switch sh {
	case Tetrahedron:
		return 1 / math32.Sqrt3
	case Cube:
		return 0.5
	case Octahedron:
		return 1 / math32.Sqrt2
	case Dodecahedron:
		return 1 / (2 * math32.Sqrt3)
	case Icosahedron:
		return 1 / (2 * math32.Phi)
	}
	return 0
}

// NumVertices returns the number of vertices of the shape.
func (sh Shapes) NumVertices() int {
	return len(sh.unit())
}

// NumEdges returns the number of edges of the shape.
func (sh Shapes) NumEdges() int {
	return len(sh.edges())
}

// Vertices returns the vertices of the shape at the given size,
// in the fixed order that [Shapes.Edges] indexes into.
// It returns nil for an invalid shape.
func (sh Shapes) Vertices(size float32) []math32.Vector3 {
	unit := sh.unit()
	if unit == nil {
		return nil
	}
	s := size * sh.Scale()
	vs := make([]math32.Vector3, len(unit))
	for i, u := range unit {
		vs[i] = math32.Vec3(u.X*s, u.Y*s, u.Z*s)
	}
	return vs
}

// Edges returns a copy of the edge list of the shape.
// It returns nil for an invalid shape.
func (sh Shapes) Edges() []Edge {
	es := sh.edges()
	if es == nil {
		return nil
	}
	cp := make([]Edge, len(es))
	copy(cp, es)
	return cp
}

// Vertices returns the vertices of the shape with the given
// identifier at the given size.
func Vertices(id int, size float32) ([]math32.Vector3, error) {
	sh, err := Lookup(id)
	if err != nil {
		return nil, err
	}
	return sh.Vertices(size), nil
}

// Edges returns the edges of the shape with the given identifier.
func Edges(id int) ([]Edge, error) {
	sh, err := Lookup(id)
	if err != nil {
		return nil, err
	}
	return sh.Edges(), nil
}
