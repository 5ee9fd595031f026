// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"image"
	"image/draw"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/reflectx"
	"github.com/anthonynsimon/bild/transform"
	"golang.org/x/image/vector"

	"cogentcore.org/polygrid/math32"
	"cogentcore.org/polygrid/xyz"
)

// Options are the options for rendering a scene into an image.
type Options struct {

	// Width is the width of the image in pixels.
	Width int `default:"800"`

	// Height is the height of the image in pixels.
	Height int `default:"600"`

	// LineWidth is the width of the lines in pixels.
	LineWidth float32 `default:"1"`

	// Supersample, if more than 1, renders at that multiple of the
	// size and scales the result down, for smoother lines.
	Supersample int `default:"1"`
}

// Defaults sets the default options.
func (o *Options) Defaults() {
	errors.Log(reflectx.SetFromDefaultTags(o))
}

// Render renders the scene into a new image.
func Render(sc *xyz.Scene, o Options) *image.RGBA {
	ss := max(o.Supersample, 1)
	fr := Project(sc, o.Width*ss, o.Height*ss)
	img := Draw(fr, o.LineWidth*float32(ss))
	if ss == 1 {
		return img
	}
	return Downsample(img, o.Width, o.Height)
}

// Downsample scales a supersampled image down to the given size.
func Downsample(img *image.RGBA, width, height int) *image.RGBA {
	return transform.Resize(img, width, height, transform.Linear)
}

// Draw rasterizes the frame into a new image, with lines of the
// given width in pixels.
func Draw(fr *Frame, lineWidth float32) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fr.Width, fr.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(fr.Background), image.Point{}, draw.Src)
	if fr.Width <= 0 || fr.Height <= 0 {
		return img
	}
	rs := vector.NewRasterizer(fr.Width, fr.Height)
	hw := lineWidth / 2
	for _, ln := range fr.Lines {
		d := math32.Vec3(ln.X1-ln.X0, ln.Y1-ln.Y0, 0)
		l := d.Length()
		if l == 0 {
			continue
		}
		// perpendicular offset of half the line width
		nx, ny := -d.Y/l*hw, d.X/l*hw
		rs.Reset(fr.Width, fr.Height)
		rs.MoveTo(ln.X0+nx, ln.Y0+ny)
		rs.LineTo(ln.X1+nx, ln.Y1+ny)
		rs.LineTo(ln.X1-nx, ln.Y1-ny)
		rs.LineTo(ln.X0-nx, ln.Y0-ny)
		rs.ClosePath()
		rs.Draw(img, img.Bounds(), image.NewUniform(ln.Color), image.Point{})
	}
	for _, dt := range fr.Dots {
		h := dt.Size / 2
		rs.Reset(fr.Width, fr.Height)
		rs.MoveTo(dt.X-h, dt.Y-h)
		rs.LineTo(dt.X+h, dt.Y-h)
		rs.LineTo(dt.X+h, dt.Y+h)
		rs.LineTo(dt.X-h, dt.Y+h)
		rs.ClosePath()
		rs.Draw(img, img.Bounds(), image.NewUniform(dt.Color), image.Point{})
	}
	return img
}
