// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides the color helpers used by the polyhedron
// grid: hex parsing and formatting, and HSL hue generation for
// color cycling.
package colors

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	// Black is pure opaque black.
	Black = color.RGBA{0, 0, 0, 255}

	// White is pure opaque white.
	White = color.RGBA{255, 255, 255, 255}

	// Green is the default wireframe color.
	Green = color.RGBA{0, 255, 0, 255}
)

// FromHex parses the given hex color string ("#rrggbb", "rrggbb" or
// "#rgb") and returns the resulting opaque color.
func FromHex(hex string) (color.RGBA, error) {
	h := strings.TrimSpace(hex)
	if !strings.HasPrefix(h, "#") {
		h = "#" + h
	}
	c, err := colorful.Hex(h)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colors.FromHex: invalid hex color %q: %w", hex, err)
	}
	return FromColorful(c), nil
}

// AsHex returns the given color as a lower-case "#rrggbb" hex string.
// Alpha is ignored.
func AsHex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// FromColorful converts the given [colorful.Color] into an opaque
// [color.RGBA], clamping out-of-gamut values.
func FromColorful(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{r, g, b, 255}
}

// FromHSL returns the opaque RGB color for the given hue in degrees
// (any value, wrapped to [0, 360)), and saturation and lightness in [0, 1].
func FromHSL(h, s, l float32) color.RGBA {
	hh := float64(h)
	if hh < 0 || hh >= 360 {
		hh = hh - 360*float64(int(hh/360))
		if hh < 0 {
			hh += 360
		}
	}
	return FromColorful(colorful.Hsl(hh, float64(s), float64(l)))
}

// ToHSL returns the hue in degrees and the saturation and
// lightness in [0, 1] of the given color.
func ToHSL(c color.RGBA) (h, s, l float32) {
	cf, _ := colorful.MakeColor(c)
	hh, ss, ll := cf.Hsl()
	return float32(hh), float32(ss), float32(ll)
}
