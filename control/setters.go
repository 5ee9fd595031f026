// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package control

import (
	"cogentcore.org/polygrid/config"
	"cogentcore.org/polygrid/math32"
)

// SetShape sets the shape by its number of faces.
func (c *Controller) SetShape(id int) error {
	_, err := c.Update(func(p *config.Params) { p.Shape = id })
	return err
}

// SetCount sets the number of polyhedra.
func (c *Controller) SetCount(n int) error {
	_, err := c.Update(func(p *config.Params) { p.Count = n })
	return err
}

// SetSize sets the size of each polyhedron.
func (c *Controller) SetSize(size float32) error {
	_, err := c.Update(func(p *config.Params) { p.Size = size })
	return err
}

// SetSpacing sets the grid spacing.
func (c *Controller) SetSpacing(spacing float32) error {
	_, err := c.Update(func(p *config.Params) { p.Spacing = spacing })
	return err
}

// SetGap sets the edge gap.
func (c *Controller) SetGap(gap float32) error {
	_, err := c.Update(func(p *config.Params) { p.Gap = gap })
	return err
}

// SetColor sets the manual color as a hex string,
// which also disables color cycling.
func (c *Controller) SetColor(hex string) error {
	_, err := c.Update(func(p *config.Params) { p.Color = hex })
	return err
}

// SetBackground sets the background color as a hex string.
func (c *Controller) SetBackground(hex string) error {
	_, err := c.Update(func(p *config.Params) { p.Background = hex })
	return err
}

// SetColorCycle enables or disables color cycling.
func (c *Controller) SetColorCycle(on bool) error {
	_, err := c.Update(func(p *config.Params) { p.ColorCycle.Enabled = on })
	return err
}

// SetColorCycleRate sets the hue added per tick, in degrees.
func (c *Controller) SetColorCycleRate(rate float32) error {
	_, err := c.Update(func(p *config.Params) { p.ColorCycle.Rate = rate })
	return err
}

// SetSpinRate sets the rotation per tick, in radians.
func (c *Controller) SetSpinRate(rate float32) error {
	_, err := c.Update(func(p *config.Params) { p.Spin.Rate = rate })
	return err
}

// SetSpinAxis enables or disables spinning around one axis.
func (c *Controller) SetSpinAxis(dim math32.Dims, on bool) error {
	_, err := c.Update(func(p *config.Params) {
		switch dim {
		case math32.X:
			p.Spin.X = on
		case math32.Y:
			p.Spin.Y = on
		case math32.Z:
			p.Spin.Z = on
		}
	})
	return err
}
