// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package anim advances the per-frame state of the pool:
// spinning and color cycling. It never touches geometry
// or positions.
package anim

import (
	"image/color"

	"cogentcore.org/polygrid/colors"
	"cogentcore.org/polygrid/math32"
	"cogentcore.org/polygrid/pool"
)

// Spin are the spin settings.
type Spin struct {

	// Rate is the rotation added per tick to every enabled axis, in radians.
	Rate float32 `default:"0.01" toml:"rate" yaml:"rate"`

	// X is whether to spin around the X axis.
	X bool `default:"true" toml:"x" yaml:"x"`

	// Y is whether to spin around the Y axis.
	Y bool `default:"true" toml:"y" yaml:"y"`

	// Z is whether to spin around the Z axis.
	Z bool `default:"false" toml:"z" yaml:"z"`
}

// ColorCycle are the color cycling settings and state.
type ColorCycle struct {

	// Enabled is whether the hue is cycled, overriding the manual color.
	Enabled bool `default:"false" toml:"enabled" yaml:"enabled"`

	// Rate is the hue added per tick, in degrees.
	Rate float32 `default:"0.5" toml:"rate" yaml:"rate"`

	// Hue is the current hue in degrees, in [0, 360).
	Hue float32 `default:"0" toml:"hue" yaml:"hue"`
}

// Cycled returns the color for the current hue.
func (cc *ColorCycle) Cycled() color.RGBA {
	return HueColor(cc.Hue)
}

// HueColor returns the fully saturated, half lightness color
// of the given hue in degrees.
func HueColor(hue float32) color.RGBA {
	return colors.FromHSL(hue, 1, 0.5)
}

// Tick advances the animation by one frame. Every enabled spin axis
// of every instance is advanced by the spin rate; angles accumulate
// without wrapping. If color cycling is enabled, the hue is advanced
// by the cycle rate (modulo 360) and the resulting color is set as
// the color override of every instance.
func Tick(insts []*pool.Instance, spin Spin, cycle *ColorCycle) {
	for _, in := range insts {
		if spin.X {
			in.Rotation.X += spin.Rate
		}
		if spin.Y {
			in.Rotation.Y += spin.Rate
		}
		if spin.Z {
			in.Rotation.Z += spin.Rate
		}
	}
	if cycle == nil || !cycle.Enabled {
		return
	}
	cycle.Hue = math32.Wrap(cycle.Hue+cycle.Rate, 360)
	clr := cycle.Cycled()
	for _, in := range insts {
		c := clr
		in.ColorOverride = &c
	}
}

// Restore clears the color override of every instance, so that
// the stored manual color (baked into the geometry) is shown again.
func Restore(insts []*pool.Instance) {
	for _, in := range insts {
		in.ColorOverride = nil
	}
}
