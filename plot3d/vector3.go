// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot3d

// Vector3 is a point in the logical [0,1] cube of a 3D graph.
type Vector3 struct {
	X float64
	Y float64
	Z float64
}

// Vec3 returns a new [Vector3] with the given x, y and z components.
func Vec3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// SetDim sets this vector component value by dimension index.
func (v *Vector3) SetDim(dim Dims, value float64) {
	switch dim {
	case X:
		v.X = value
	case Y:
		v.Y = value
	case Z:
		v.Z = value
	default:
		panic("dim is out of range")
	}
}

// ToArray copies this vector's components to array starting at offset.
func (v Vector3) ToArray(array []float64, offset int) {
	array[offset] = v.X
	array[offset+1] = v.Y
	array[offset+2] = v.Z
}

// perpDims returns the two dimensions perpendicular to dim,
// in the order the other positions of an axis refer to them.
func perpDims(dim Dims) (Dims, Dims) {
	switch dim {
	case X:
		return Y, Z
	case Y:
		return X, Z
	default:
		return X, Y
	}
}
