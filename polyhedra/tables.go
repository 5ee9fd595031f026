// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package polyhedra

import "cogentcore.org/polygrid/math32"

// Edge is a pair of vertex indexes connected by an edge.
type Edge struct {
	A, B int
}

const (
	phi    = math32.Phi
	invPhi = 1 / math32.Phi
)

// unit returns the canonical (unscaled) vertex table of the shape.
func (sh Shapes) unit() []math32.Vector3 {
	switch sh {
	case Tetrahedron:
		return tetrahedronUnit
	case Cube:
		return cubeUnit
	case Octahedron:
		return octahedronUnit
	case Dodecahedron:
		return dodecahedronUnit
	case Icosahedron:
		return icosahedronUnit
	}
	return nil
}

// edges returns the shared edge table of the shape.
func (sh Shapes) edges() []Edge {
	switch sh {
	case Tetrahedron:
		return tetrahedronEdges
	case Cube:
		return cubeEdges
	case Octahedron:
		return octahedronEdges
	case Dodecahedron:
		return dodecahedronEdges
	case Icosahedron:
		return icosahedronEdges
	}
	return nil
}

// alternate corners of the cube
var tetrahedronUnit = []math32.Vector3{
	{X: 1, Y: 1, Z: 1}, {X: 1, Y: -1, Z: -1}, {X: -1, Y: 1, Z: -1}, {X: -1, Y: -1, Z: 1},
}

var tetrahedronEdges = []Edge{
	{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3},
}

var cubeUnit = []math32.Vector3{
	{X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: -1},
	{X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1},
}

var cubeEdges = []Edge{
	{0, 1}, {1, 2}, {2, 3}, {3, 0}, // front face
	{4, 5}, {5, 6}, {6, 7}, {7, 4}, // back face
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// right, left, top, bottom, front, back
var octahedronUnit = []math32.Vector3{
	{X: 1, Y: 0, Z: 0}, {X: -1, Y: 0, Z: 0},
	{X: 0, Y: 1, Z: 0}, {X: 0, Y: -1, Z: 0},
	{X: 0, Y: 0, Z: 1}, {X: 0, Y: 0, Z: -1},
}

var octahedronEdges = []Edge{
	{0, 2}, {0, 4}, {0, 3}, {0, 5},
	{1, 2}, {1, 4}, {1, 3}, {1, 5},
	{2, 4}, {2, 5}, {3, 4}, {3, 5},
}

// cube corners, then the three golden rectangles
var dodecahedronUnit = []math32.Vector3{
	{X: 1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: -1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: -1},
	{X: -1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: -1}, {X: -1, Y: -1, Z: 1}, {X: -1, Y: -1, Z: -1},
	{X: 0, Y: invPhi, Z: phi}, {X: 0, Y: invPhi, Z: -phi}, {X: 0, Y: -invPhi, Z: phi}, {X: 0, Y: -invPhi, Z: -phi},
	{X: invPhi, Y: phi, Z: 0}, {X: invPhi, Y: -phi, Z: 0}, {X: -invPhi, Y: phi, Z: 0}, {X: -invPhi, Y: -phi, Z: 0},
	{X: phi, Y: 0, Z: invPhi}, {X: phi, Y: 0, Z: -invPhi}, {X: -phi, Y: 0, Z: invPhi}, {X: -phi, Y: 0, Z: -invPhi},
}

var dodecahedronEdges = []Edge{
	{0, 8}, {0, 12}, {0, 16},
	{1, 9}, {1, 12}, {1, 17},
	{2, 10}, {2, 13}, {2, 16},
	{3, 11}, {3, 13}, {3, 17},
	{4, 8}, {4, 14}, {4, 18},
	{5, 9}, {5, 14}, {5, 19},
	{6, 10}, {6, 15}, {6, 18},
	{7, 11}, {7, 15}, {7, 19},
	{8, 10}, {9, 11}, {12, 14}, {13, 15}, {16, 17}, {18, 19},
}

var icosahedronUnit = []math32.Vector3{
	{X: 0, Y: 1, Z: phi}, {X: 0, Y: 1, Z: -phi}, {X: 0, Y: -1, Z: phi}, {X: 0, Y: -1, Z: -phi},
	{X: 1, Y: phi, Z: 0}, {X: 1, Y: -phi, Z: 0}, {X: -1, Y: phi, Z: 0}, {X: -1, Y: -phi, Z: 0},
	{X: phi, Y: 0, Z: 1}, {X: phi, Y: 0, Z: -1}, {X: -phi, Y: 0, Z: 1}, {X: -phi, Y: 0, Z: -1},
}

var icosahedronEdges = []Edge{
	{0, 2}, {0, 4}, {0, 6}, {0, 8}, {0, 10},
	{1, 3}, {1, 4}, {1, 6}, {1, 9}, {1, 11},
	{2, 5}, {2, 7}, {2, 8}, {2, 10},
	{3, 5}, {3, 7}, {3, 9}, {3, 11},
	{4, 6}, {4, 8}, {4, 9},
	{5, 7}, {5, 8}, {5, 9},
	{6, 10}, {6, 11},
	{7, 10}, {7, 11},
	{8, 9}, {10, 11},
}
