// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Matrix3 is 3x3 matrix organized internally as column matrix.
type Matrix3 [9]float32

// Identity3 returns a new identity [Matrix3] matrix.
func Identity3() Matrix3 {
	return Matrix3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Mul returns this matrix times the other matrix (m * other).
func (m *Matrix3) Mul(other *Matrix3) Matrix3 {
	var r Matrix3
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			var s float32
			for k := 0; k < 3; k++ {
				s += m[k*3+row] * other[col*3+k]
			}
			r[col*3+row] = s
		}
	}
	return r
}

// Matrix3RotationX returns a rotation matrix of angle radians around the X axis.
func Matrix3RotationX(angle float32) Matrix3 {
	c, s := Cos(angle), Sin(angle)
	return Matrix3{
		1, 0, 0,
		0, c, s,
		0, -s, c,
	}
}

// Matrix3RotationY returns a rotation matrix of angle radians around the Y axis.
func Matrix3RotationY(angle float32) Matrix3 {
	c, s := Cos(angle), Sin(angle)
	return Matrix3{
		c, 0, -s,
		0, 1, 0,
		s, 0, c,
	}
}

// Matrix3RotationZ returns a rotation matrix of angle radians around the Z axis.
func Matrix3RotationZ(angle float32) Matrix3 {
	c, s := Cos(angle), Sin(angle)
	return Matrix3{
		c, s, 0,
		-s, c, 0,
		0, 0, 1,
	}
}

// Matrix3FromEuler returns the rotation matrix for the given
// euler angles in radians, applied in XYZ order: the result is
// Rx * Ry * Rz, so a vector is rotated around Z first.
func Matrix3FromEuler(euler Vector3) Matrix3 {
	rx := Matrix3RotationX(euler.X)
	ry := Matrix3RotationY(euler.Y)
	rz := Matrix3RotationZ(euler.Z)
	rxy := rx.Mul(&ry)
	return rxy.Mul(&rz)
}
