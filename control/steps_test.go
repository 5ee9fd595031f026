// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package control

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/polygrid/config"
	"cogentcore.org/polygrid/math32"
)

func TestStepParams(t *testing.T) {
	p := config.Defaults()
	StepParams(&p, Shape, 1)
	assert.Equal(t, 8, p.Shape)
	StepParams(&p, Shape, 2)
	assert.Equal(t, 20, p.Shape)
	StepParams(&p, Shape, 1)
	assert.Equal(t, 4, p.Shape)
	StepParams(&p, Shape, -1)
	assert.Equal(t, 20, p.Shape)

	StepParams(&p, Count, -1)
	assert.Equal(t, 1, p.Count)
	StepParams(&p, Count, 500)
	assert.Equal(t, config.MaxCount, p.Count)

	StepParams(&p, Size, 1)
	assert.InDelta(t, 1.1, p.Size, 1e-6)
	StepParams(&p, Size, -100)
	assert.Equal(t, float32(config.MinSize), p.Size)

	StepParams(&p, Spacing, -100)
	assert.Equal(t, float32(0), p.Spacing)
	StepParams(&p, Gap, -1)
	assert.Equal(t, float32(0), p.Gap)
	StepParams(&p, Gap, 1000)
	assert.Equal(t, float32(config.MaxGap), p.Gap)

	StepParams(&p, SpinRate, 1)
	assert.InDelta(t, 0.015, p.Spin.Rate, 1e-6)
	StepParams(&p, CycleRate, 100)
	assert.Equal(t, float32(config.MaxCycleRate), p.ColorCycle.Rate)

	require.NoError(t, p.Validate())
	assert.Equal(t, "spin rate", SpinRate.String())
}

func TestStep(t *testing.T) {
	c, sc := newController(t)
	k, err := c.Step(Count, 3)
	require.NoError(t, err)
	assert.Equal(t, Reconcile, k)
	assert.Equal(t, 5, sc.NumNodes())

	k, err = c.Step(Shape, 1)
	require.NoError(t, err)
	assert.Equal(t, Rebuild, k)
	assert.Equal(t, 4*12, sc.Segments())

	k, err = c.ToggleSpinAxis(math32.Y)
	require.NoError(t, err)
	assert.Equal(t, Animate, k)
	assert.False(t, c.Params().Spin.Y)

	k, err = c.ToggleColorCycle()
	require.NoError(t, err)
	assert.Equal(t, Recolor, k)
	k, err = c.ToggleColorCycle()
	require.NoError(t, err)
	assert.Equal(t, Rebuild, k)
}
