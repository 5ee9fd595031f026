// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package control

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/polygrid/anim"
	"cogentcore.org/polygrid/colors"
	"cogentcore.org/polygrid/config"
	"cogentcore.org/polygrid/math32"
	"cogentcore.org/polygrid/polyhedra"
	"cogentcore.org/polygrid/pool"
	"cogentcore.org/polygrid/xyz"
)

func newController(t *testing.T) (*Controller, *xyz.Scene) {
	sc := xyz.NewScene()
	c, err := New(sc, config.Defaults())
	require.NoError(t, err)
	return c, sc
}

func TestDefaultCube(t *testing.T) {
	c, sc := newController(t)
	var insts []*pool.Instance
	c.Instances(func(is []*pool.Instance) { insts = append(insts, is...) })
	require.Len(t, insts, 1)
	in := insts[0]
	assert.Equal(t, math32.Vector3{}, in.Position)
	assert.Len(t, in.Wire.Segments, 12)
	assert.Nil(t, in.Wire.Points)
	assert.Equal(t, 12, sc.Segments())
	assert.Equal(t, colors.Black, sc.Background)
}

func TestNewInvalid(t *testing.T) {
	p := config.Defaults()
	p.Shape = 7
	_, err := New(xyz.NewScene(), p)
	var se *polyhedra.InvalidShapeError
	assert.True(t, errors.As(err, &se))
}

func TestClassify(t *testing.T) {
	base := config.Defaults()
	tests := []struct {
		name string
		edit func(p *config.Params)
		want Kinds
	}{
		{"none", func(p *config.Params) {}, None},
		{"count", func(p *config.Params) { p.Count = 4 }, Reconcile},
		{"shape", func(p *config.Params) { p.Shape = 20 }, Rebuild},
		{"size", func(p *config.Params) { p.Size = 2 }, Rebuild},
		{"gap", func(p *config.Params) { p.Gap = 0.1 }, Rebuild},
		{"color", func(p *config.Params) { p.Color = "#ff0000" }, Rebuild},
		{"spacing", func(p *config.Params) { p.Spacing = 3 }, Reposition},
		{"cycle on", func(p *config.Params) { p.ColorCycle.Enabled = true }, Recolor},
		{"cycle rate", func(p *config.Params) { p.ColorCycle.Rate = 2 }, Recolor},
		{"background", func(p *config.Params) { p.Background = "#ffffff" }, Recolor},
		{"spin rate", func(p *config.Params) { p.Spin.Rate = 0.05 }, Animate},
		{"spin axis", func(p *config.Params) { p.Spin.Z = true }, Animate},
		{"hue", func(p *config.Params) { p.ColorCycle.Hue = 90 }, None},
		{"gap and spacing", func(p *config.Params) { p.Gap = 0.1; p.Spacing = 3 }, Rebuild | Reposition},
	}
	for _, tt := range tests {
		np := base
		tt.edit(&np)
		assert.Equal(t, tt.want, Classify(&base, &np), tt.name)
	}

	on := base
	on.ColorCycle.Enabled = true
	assert.Equal(t, Rebuild, Classify(&on, &base))
}

func TestKindsString(t *testing.T) {
	assert.Equal(t, "None", None.String())
	assert.Equal(t, "Reconcile", Reconcile.String())
	assert.Equal(t, "Reposition|Rebuild", (Rebuild | Reposition).String())
}

func TestApplyCount(t *testing.T) {
	c, sc := newController(t)
	k, err := c.Update(func(p *config.Params) { p.Count = 5 })
	require.NoError(t, err)
	assert.Equal(t, Reconcile, k)
	assert.Equal(t, 6, sc.NumNodes())
	assert.Equal(t, 5*12, sc.Segments())

	var first pool.Handle
	c.Instances(func(is []*pool.Instance) { first = is[0].Node })
	require.NoError(t, c.SetCount(2))
	assert.Equal(t, 3, sc.NumNodes())
	c.Instances(func(is []*pool.Instance) {
		assert.Equal(t, first, is[0].Node)
		assert.Equal(t, float32(-0.75), is[0].Position.X)
		assert.Equal(t, float32(0.75), is[1].Position.X)
	})
}

func TestApplyInvalidKeepsState(t *testing.T) {
	c, sc := newController(t)
	require.NoError(t, c.SetCount(3))
	before := c.Params()

	err := c.SetShape(5)
	var se *polyhedra.InvalidShapeError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 5, se.ID)

	err = c.SetSize(-1)
	var pe *config.InvalidParameterError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "size", pe.Name)

	assert.Error(t, c.SetCount(0))
	assert.Error(t, c.SetGap(-0.5))
	assert.Error(t, c.SetSpacing(-1))
	assert.Error(t, c.SetColor("nope"))
	assert.Error(t, c.SetBackground("#12"))

	assert.Equal(t, before, c.Params())
	assert.Equal(t, 4, sc.NumNodes())
	assert.Equal(t, 3*12, sc.Segments())
}

func TestApplyRebuild(t *testing.T) {
	c, sc := newController(t)
	require.NoError(t, c.SetShape(20))
	assert.Equal(t, 30, sc.Segments())
	require.NoError(t, c.SetGap(0.1))
	c.Instances(func(is []*pool.Instance) {
		require.NotNil(t, is[0].Wire.Points)
		assert.Len(t, is[0].Wire.Points.Pos, 12)
	})
	require.NoError(t, c.SetColor("#ff0000"))
	c.Instances(func(is []*pool.Instance) {
		assert.Equal(t, "#ff0000", colors.AsHex(is[0].Wire.Segments[0].Color))
	})
}

func TestApplySpacingAndBackground(t *testing.T) {
	c, sc := newController(t)
	require.NoError(t, c.SetCount(2))
	require.NoError(t, c.SetSpacing(4))
	c.Instances(func(is []*pool.Instance) {
		assert.Equal(t, float32(-2), is[0].Position.X)
		assert.Equal(t, float32(2), is[1].Position.X)
		assert.Equal(t, is[0].Position, sc.Node(is[0].Node).Pos)
	})
	require.NoError(t, c.SetBackground("#ffffff"))
	assert.Equal(t, colors.White, sc.Background)
}

func TestTick(t *testing.T) {
	c, sc := newController(t)
	for range 3 {
		c.Tick()
	}
	assert.Equal(t, uint64(3), c.Frame())
	c.Instances(func(is []*pool.Instance) {
		nd := sc.Node(is[0].Node)
		assert.InDelta(t, 0.03, nd.Rot.X, 1e-6)
		assert.InDelta(t, 0.03, nd.Rot.Y, 1e-6)
		assert.Equal(t, float32(0), nd.Rot.Z)
		assert.Nil(t, nd.Color)
	})

	require.NoError(t, c.SetSpinAxis(math32.Z, true))
	require.NoError(t, c.SetSpinAxis(math32.X, false))
	require.NoError(t, c.SetSpinRate(0.1))
	c.Tick()
	c.Instances(func(is []*pool.Instance) {
		assert.InDelta(t, 0.03, is[0].Rotation.X, 1e-6)
		assert.InDelta(t, 0.13, is[0].Rotation.Y, 1e-6)
		assert.InDelta(t, 0.1, is[0].Rotation.Z, 1e-6)
	})
}

func TestColorCycle(t *testing.T) {
	c, sc := newController(t)
	require.NoError(t, c.SetColorCycleRate(10))
	require.NoError(t, c.SetColorCycle(true))
	c.Tick()
	c.Tick()
	assert.Equal(t, float32(20), c.Params().ColorCycle.Hue)
	var node pool.Handle
	c.Instances(func(is []*pool.Instance) {
		node = is[0].Node
		require.NotNil(t, is[0].ColorOverride)
		assert.Equal(t, anim.HueColor(20), *is[0].ColorOverride)
		// the manual color is untouched
		assert.Equal(t, colors.Green, is[0].Wire.Segments[0].Color)
	})
	require.NotNil(t, sc.Node(node).Color)

	// reloading params keeps the running hue
	_, err := c.Apply(c.Params())
	require.NoError(t, err)
	p := config.Defaults()
	p.ColorCycle.Enabled = true
	p.ColorCycle.Rate = 10
	_, err = c.Apply(p)
	require.NoError(t, err)
	assert.Equal(t, float32(20), c.Params().ColorCycle.Hue)

	k, err := c.Update(func(p *config.Params) { p.ColorCycle.Enabled = false })
	require.NoError(t, err)
	assert.Equal(t, Rebuild, k)
	assert.Nil(t, sc.Node(node).Color)
	c.Instances(func(is []*pool.Instance) {
		assert.Nil(t, is[0].ColorOverride)
	})
}

func TestManualColorDisablesCycle(t *testing.T) {
	c, sc := newController(t)
	require.NoError(t, c.SetColorCycle(true))
	c.Tick()
	require.NoError(t, c.SetColor("#0000ff"))
	p := c.Params()
	assert.False(t, p.ColorCycle.Enabled)
	assert.Equal(t, "#0000ff", p.Color)
	c.Instances(func(is []*pool.Instance) {
		assert.Nil(t, is[0].ColorOverride)
		assert.Nil(t, sc.Node(is[0].Node).Color)
	})
	c.Tick()
	c.Instances(func(is []*pool.Instance) {
		assert.Nil(t, is[0].ColorOverride)
	})
}

func TestView(t *testing.T) {
	c, sc := newController(t)
	n := 0
	c.View(func() { n = sc.NumNodes() })
	assert.Equal(t, 2, n)
}
