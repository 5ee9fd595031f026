// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration parameters of the
// polyhedron grid, with their defaults, validation, and loading
// from and saving to TOML or YAML files.
package config

import (
	"fmt"
	"image/color"

	"cogentcore.org/polygrid/anim"
	"cogentcore.org/polygrid/colors"
	"cogentcore.org/polygrid/polyhedra"
	"cogentcore.org/polygrid/pool"
)

// Params is the complete live configuration of the polyhedron grid.
// It is owned by the control layer and passed explicitly to the
// functions that use it.
type Params struct {

	// Shape is the polyhedron, given by its number of faces: 4, 6, 8, 12 or 20.
	Shape int `default:"6" toml:"shape" yaml:"shape"`

	// Count is the number of polyhedra shown.
	Count int `default:"1" toml:"count" yaml:"count"`

	// Size is the size of each polyhedron.
	Size float32 `default:"1" toml:"size" yaml:"size"`

	// Spacing is the distance between neighboring grid cells.
	Spacing float32 `default:"1.5" toml:"spacing" yaml:"spacing"`

	// Gap is the distance by which every edge is shrunk from both ends.
	Gap float32 `default:"0" toml:"gap" yaml:"gap"`

	// Color is the manual wireframe color, as a hex string.
	Color string `default:"#00ff00" toml:"color" yaml:"color"`

	// Background is the background color, as a hex string.
	Background string `default:"#000000" toml:"background" yaml:"background"`

	// ColorCycle has the color cycling settings.
	ColorCycle anim.ColorCycle `toml:"colorCycle" yaml:"colorCycle"`

	// Spin has the spin settings.
	Spin anim.Spin `toml:"spin" yaml:"spin"`
}

// Ranges of the parameters, as offered by the interactive controls.
const (
	MaxCount     = 100
	MinSize      = 0.1
	MaxSize      = 5
	MaxSpacing   = 10
	MaxGap       = 1
	MaxSpinRate  = 0.1
	MaxCycleRate = 10
)

// InvalidParameterError is returned for a parameter value that is
// out of its valid domain.
type InvalidParameterError struct {
	Name   string
	Value  any
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("config: invalid %s %v: %s", e.Name, e.Value, e.Reason)
}

// Validate returns an error for the first parameter that is not
// valid: an [*polyhedra.InvalidShapeError] for an unknown shape, or
// an [*InvalidParameterError] otherwise.
func (p *Params) Validate() error {
	if _, err := polyhedra.Lookup(p.Shape); err != nil {
		return err
	}
	switch {
	case p.Count < 1:
		return &InvalidParameterError{"count", p.Count, "must be at least 1"}
	case !(p.Size > 0):
		return &InvalidParameterError{"size", p.Size, "must be positive"}
	case !(p.Spacing >= 0):
		return &InvalidParameterError{"spacing", p.Spacing, "must not be negative"}
	case !(p.Gap >= 0):
		return &InvalidParameterError{"gap", p.Gap, "must not be negative"}
	}
	if _, err := colors.FromHex(p.Color); err != nil {
		return &InvalidParameterError{"color", p.Color, err.Error()}
	}
	if _, err := colors.FromHex(p.Background); err != nil {
		return &InvalidParameterError{"background", p.Background, err.Error()}
	}
	return nil
}

// ManualColor returns the parsed manual color, or green if it is
// not a valid color.
func (p *Params) ManualColor() color.RGBA {
	c, err := colors.FromHex(p.Color)
	if err != nil {
		return colors.Green
	}
	return c
}

// BackgroundColor returns the parsed background color, or black if it
// is not a valid color.
func (p *Params) BackgroundColor() color.RGBA {
	c, err := colors.FromHex(p.Background)
	if err != nil {
		return colors.Black
	}
	return c
}

// PoolParams returns the parameters used to build the pool.
// It assumes that p has been validated.
func (p *Params) PoolParams() pool.Params {
	return pool.Params{
		Shape:   polyhedra.Shapes(p.Shape),
		Size:    p.Size,
		Spacing: p.Spacing,
		Gap:     p.Gap,
		Color:   p.ManualColor(),
	}
}
