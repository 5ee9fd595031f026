// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package control

import (
	"fmt"
	"slices"

	"cogentcore.org/polygrid/config"
	"cogentcore.org/polygrid/math32"
	"cogentcore.org/polygrid/polyhedra"
)

// Options are the options that can be stepped up and down
// by interactive controls.
type Options int32

const (
	Shape Options = iota
	Count
	Size
	Spacing
	Gap
	SpinRate
	CycleRate
)

func (o Options) String() string {
	switch o {
	case Shape:
		return "shape"
	case Count:
		return "count"
	case Size:
		return "size"
	case Spacing:
		return "spacing"
	case Gap:
		return "gap"
	case SpinRate:
		return "spin rate"
	case CycleRate:
		return "cycle rate"
	}
	return fmt.Sprintf("Options(%d)", int(o))
}

// step sizes of the float options
const (
	SizeStep      = 0.1
	SpacingStep   = 0.1
	GapStep       = 0.01
	SpinRateStep  = 0.005
	CycleRateStep = 0.5
)

// StepParams moves the given option of p by dir steps, clamped to
// the range of the option. The shape steps through the polyhedra in
// order of their number of faces, wrapping around.
func StepParams(p *config.Params, opt Options, dir int) {
	d := float32(dir)
	switch opt {
	case Shape:
		all := polyhedra.All()
		i := slices.Index(all, polyhedra.Shapes(p.Shape))
		if i < 0 {
			i = 0
		}
		n := len(all)
		p.Shape = int(all[((i+dir)%n+n)%n])
	case Count:
		p.Count = math32.Clamp(p.Count+dir, 1, config.MaxCount)
	case Size:
		p.Size = math32.Clamp(p.Size+d*SizeStep, config.MinSize, config.MaxSize)
	case Spacing:
		p.Spacing = math32.Clamp(p.Spacing+d*SpacingStep, 0, config.MaxSpacing)
	case Gap:
		p.Gap = math32.Clamp(p.Gap+d*GapStep, 0, config.MaxGap)
	case SpinRate:
		p.Spin.Rate = math32.Clamp(p.Spin.Rate+d*SpinRateStep, 0, config.MaxSpinRate)
	case CycleRate:
		p.ColorCycle.Rate = math32.Clamp(p.ColorCycle.Rate+d*CycleRateStep, 0, config.MaxCycleRate)
	}
}

// Step moves the given option by dir steps. See [StepParams].
func (c *Controller) Step(opt Options, dir int) (Kinds, error) {
	return c.Update(func(p *config.Params) { StepParams(p, opt, dir) })
}

// ToggleSpinAxis toggles spinning around one axis.
func (c *Controller) ToggleSpinAxis(dim math32.Dims) (Kinds, error) {
	return c.Update(func(p *config.Params) {
		switch dim {
		case math32.X:
			p.Spin.X = !p.Spin.X
		case math32.Y:
			p.Spin.Y = !p.Spin.Y
		case math32.Z:
			p.Spin.Z = !p.Spin.Z
		}
	})
}

// ToggleColorCycle toggles color cycling.
func (c *Controller) ToggleColorCycle() (Kinds, error) {
	return c.Update(func(p *config.Params) { p.ColorCycle.Enabled = !p.ColorCycle.Enabled })
}
