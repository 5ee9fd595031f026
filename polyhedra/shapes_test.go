// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package polyhedra

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/polygrid/math32"
)

func TestCounts(t *testing.T) {
	verts := map[Shapes]int{Tetrahedron: 4, Cube: 8, Octahedron: 6, Dodecahedron: 20, Icosahedron: 12}
	edges := map[Shapes]int{Tetrahedron: 6, Cube: 12, Octahedron: 12, Dodecahedron: 30, Icosahedron: 30}
	for _, sh := range All() {
		for _, size := range []float32{0.1, 1, 2.5} {
			assert.Len(t, sh.Vertices(size), verts[sh], sh.Name())
		}
		assert.Equal(t, verts[sh], sh.NumVertices())
		assert.Equal(t, edges[sh], sh.NumEdges())
		assert.Len(t, sh.Edges(), edges[sh])
	}
}

func TestEdgesInBoundsAndUnique(t *testing.T) {
	for _, sh := range All() {
		nv := sh.NumVertices()
		seen := map[Edge]bool{}
		for _, e := range sh.Edges() {
			assert.True(t, e.A >= 0 && e.A < nv, "%v edge %v", sh, e)
			assert.True(t, e.B >= 0 && e.B < nv, "%v edge %v", sh, e)
			assert.NotEqual(t, e.A, e.B)
			key := e
			if key.A > key.B {
				key.A, key.B = key.B, key.A
			}
			assert.False(t, seen[key], "%v duplicate edge %v", sh, e)
			seen[key] = true
		}
	}
}

// TestTopology checks that the edge tables are exactly the set of
// shortest vertex pairs, that all edges have the same length, and
// that every vertex has the degree of its shape.
func TestTopology(t *testing.T) {
	degree := map[Shapes]int{Tetrahedron: 3, Cube: 3, Octahedron: 4, Dodecahedron: 3, Icosahedron: 5}
	for _, sh := range All() {
		vs := sh.Vertices(1)
		es := sh.Edges()
		el := vs[es[0].A].DistanceTo(vs[es[0].B])
		deg := make([]int, len(vs))
		for _, e := range es {
			assert.InDelta(t, el, vs[e.A].DistanceTo(vs[e.B]), 1e-5, "%v edge %v", sh, e)
			deg[e.A]++
			deg[e.B]++
		}
		for i, d := range deg {
			assert.Equal(t, degree[sh], d, "%v vertex %d", sh, i)
		}
		nshort := 0
		for i := range vs {
			for j := i + 1; j < len(vs); j++ {
				d := vs[i].DistanceTo(vs[j])
				assert.GreaterOrEqual(t, d, el-1e-5)
				if math32.Abs(d-el) < 1e-5 {
					nshort++
				}
			}
		}
		assert.Equal(t, len(es), nshort, sh.Name())
	}
}

func TestLinearity(t *testing.T) {
	for _, sh := range All() {
		v1 := sh.Vertices(1.3)
		v2 := sh.Vertices(2.6)
		for i := range v1 {
			assert.InDelta(t, 2*v1[i].X, v2[i].X, 1e-6)
			assert.InDelta(t, 2*v1[i].Y, v2[i].Y, 1e-6)
			assert.InDelta(t, 2*v1[i].Z, v2[i].Z, 1e-6)
		}
		assert.InDelta(t, 2*maxSpan(v1), maxSpan(v2), 1e-5)
	}
}

// TestNormalization checks that all shapes at the same size
// have a comparable extent.
func TestNormalization(t *testing.T) {
	for _, sh := range All() {
		span := maxSpan(sh.Vertices(1))
		assert.True(t, span >= 0.9 && span <= 2, "%v span %g", sh, span)
	}
	assert.InDelta(t, 1, maxSpan(Dodecahedron.Vertices(1)), 1e-5)
	assert.InDelta(t, math32.Sqrt3, maxSpan(Cube.Vertices(1)), 1e-5)
	assert.InDelta(t, math32.Sqrt2, maxSpan(Octahedron.Vertices(1)), 1e-5)

	vs := Cube.Vertices(1)
	assert.Equal(t, math32.Vec3(-0.5, -0.5, -0.5), vs[0])
	assert.Equal(t, math32.Vec3(0.5, 0.5, 0.5), vs[6])
}

func maxSpan(vs []math32.Vector3) float32 {
	var mx float32
	for i := range vs {
		for j := i + 1; j < len(vs); j++ {
			mx = math32.Max(mx, vs[i].DistanceTo(vs[j]))
		}
	}
	return mx
}

func TestLookup(t *testing.T) {
	for _, id := range []int{4, 6, 8, 12, 20} {
		sh, err := Lookup(id)
		require.NoError(t, err)
		assert.Equal(t, id, int(sh))
		assert.True(t, sh.IsValid())
	}
	for _, id := range []int{0, 3, 5, 7, 10, 24, -6, 1<<32 + 4} {
		_, err := Lookup(id)
		var ise *InvalidShapeError
		require.True(t, errors.As(err, &ise), "id %d", id)
		assert.Equal(t, id, ise.ID)
	}

	_, err := Vertices(7, 1)
	assert.Error(t, err)
	_, err = Edges(9)
	assert.Error(t, err)
	vs, err := Vertices(12, 1)
	require.NoError(t, err)
	assert.Len(t, vs, 20)
	es, err := Edges(20)
	require.NoError(t, err)
	assert.Len(t, es, 30)

	assert.Nil(t, Shapes(5).Vertices(1))
	assert.Nil(t, Shapes(5).Edges())
	assert.Equal(t, "Shapes(5)", Shapes(5).String())
	assert.Equal(t, "Dodecahedron", Dodecahedron.String())
}

func TestEdgesCopy(t *testing.T) {
	es := Cube.Edges()
	es[0] = Edge{7, 7}
	assert.Equal(t, Edge{0, 1}, Cube.Edges()[0])
}
