// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/reflectx"

	"cogentcore.org/polygrid/math32"
)

// Camera is a perspective camera on the positive Z axis,
// looking at the origin down the negative Z axis.
type Camera struct {

	// Distance is the Z position of the camera.
	Distance float32 `default:"10"`

	// FOV is the vertical field of view in degrees.
	FOV float32 `default:"75"`

	// Near is the near clipping distance.
	Near float32 `default:"0.1"`

	// Far is the far clipping distance.
	Far float32 `default:"1000"`
}

// Defaults sets the default camera.
func (cm *Camera) Defaults() {
	errors.Log(reflectx.SetFromDefaultTags(cm))
}

// Pos returns the position of the camera.
func (cm *Camera) Pos() math32.Vector3 {
	return math32.Vec3(0, 0, cm.Distance)
}

// Focal returns the distance from the camera to the projection plane
// at which the view spans from -1 to 1 vertically.
func (cm *Camera) Focal() float32 {
	return 1 / math32.Tan(math32.DegToRad(cm.FOV)/2)
}

// Project projects the given world point into normalized device
// coordinates: X right and Y up, within [-1, 1] vertically for a
// visible point, with X scaled by the given aspect ratio (width over
// height) so that [-1, 1] spans the width. It returns false if the
// point is outside the near and far clipping distances.
func (cm *Camera) Project(p math32.Vector3, aspect float32) (x, y float32, ok bool) {
	depth := cm.Distance - p.Z
	if depth < cm.Near || depth > cm.Far {
		return 0, 0, false
	}
	f := cm.Focal() / depth
	if aspect <= 0 {
		aspect = 1
	}
	return p.X * f / aspect, p.Y * f, true
}

// ViewHeight returns the visible height in world units at the
// given depth from the camera.
func (cm *Camera) ViewHeight(depth float32) float32 {
	return 2 * depth / cm.Focal()
}
