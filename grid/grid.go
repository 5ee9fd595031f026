// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grid lays out a number of instances on a square grid
// in the XY plane, centered on the origin.
package grid

import (
	"cogentcore.org/polygrid/math32"
)

// Size returns the number of cells along each side of the square
// grid needed to hold total instances: ceil(sqrt(total)).
func Size(total int) int {
	if total <= 1 {
		return 1
	}
	n := int(math32.Ceil(math32.Sqrt(float32(total))))
	// guard against float rounding for large perfect squares
	for n*n < total {
		n++
	}
	for n > 1 && (n-1)*(n-1) >= total {
		n--
	}
	return n
}

// Position returns the position of the instance at the given index
// out of total instances, with the given spacing between neighboring
// cells. Cells are filled row-major from the top left, and the full
// grid is centered on the origin, so a grid that is not full leaves
// its trailing cells empty. A single instance is at the origin.
func Position(index, total int, spacing float32) math32.Vector3 {
	if total == 1 {
		return math32.Vector3{}
	}
	n := Size(total)
	row := index / n
	col := index % n
	offset := float32(n-1) * spacing / 2
	return math32.Vec3(float32(col)*spacing-offset, -float32(row)*spacing+offset, 0)
}
