// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/mitchellh/go-homedir"
)

// CaptureDir is the default directory that captures are saved in.
const CaptureDir = "captures"

// CaptureName returns the file name for the capture with the given
// sequence number taken at the given time.
func CaptureName(seq int, now time.Time) string {
	return fmt.Sprintf("capture_%s_%04d.png", now.UTC().Format("2006-01-02T15-04-05"), seq)
}

// Capture saves the image as a PNG file named by [CaptureName] in
// the given directory, which is created if needed. It returns the
// path of the file.
func Capture(img image.Image, dir string, seq int, now time.Time) (string, error) {
	dir, err := homedir.Expand(dir)
	if err != nil {
		return "", fmt.Errorf("raster.Capture: %w", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("raster.Capture: %w", err)
	}
	fn := filepath.Join(dir, CaptureName(seq, now))
	if err := imgio.Save(fn, img, imgio.PNGEncoder()); err != nil {
		return "", fmt.Errorf("raster.Capture: %w", err)
	}
	return fn, nil
}

// Capturer saves numbered captures into one directory.
// The sequence starts at 0 and advances on every successful capture.
type Capturer struct {

	// Dir is the directory to save in.
	Dir string

	seq int
}

// Capture saves the image with the next sequence number and the
// current time. See [Capture].
func (cp *Capturer) Capture(img image.Image) (string, error) {
	fn, err := Capture(img, cp.Dir, cp.seq, time.Now())
	if err != nil {
		return "", err
	}
	cp.seq++
	return fn, nil
}

// Count returns the number of captures saved so far.
func (cp *Capturer) Count() int {
	return cp.seq
}
