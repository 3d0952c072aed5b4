package dxf

import (
	"errors"

	"github.com/LeiYangGH/dxf/internal/linalg"
	"github.com/ungerik/go3d/float64/mat3"
	"github.com/ungerik/go3d/float64/mat4"
	"github.com/ungerik/go3d/float64/vec3"
)

var ErrSingularMatrix = errors.New("dxf: transformation is not invertible")

// transformPoint returns linear*p + translation.
func transformPoint(linear *mat3.T, translation *vec3.T, p *vec3.T) vec3.T {
	q := linear.MulVec3(p)
	return *q.Add(translation)
}

// transformNormal returns linear*n. When the image is the zero vector the
// mapping has collapsed the normal's direction and n is kept.
func transformNormal(linear *mat3.T, n vec3.T) vec3.T {
	m := linear.MulVec3(&n)
	if m.IsZero() {
		return n
	}
	return m
}

// AffineFromMat4 splits an affine 4x4 matrix into its linear part and its
// translation. The projective row is ignored.
func AffineFromMat4(m *mat4.T) (mat3.T, vec3.T) {
	linear := mat3.T{
		vec3.T{m[0][0], m[0][1], m[0][2]},
		vec3.T{m[1][0], m[1][1], m[1][2]},
		vec3.T{m[2][0], m[2][1], m[2][2]},
	}
	return linear, vec3.T{m[3][0], m[3][1], m[3][2]}
}

// Compute the transformation undoing linear*p + translation
//
// **params**
// + linear part, column major
// + translation
//
// **returns**
// + the inverse linear part and translation, or ErrSingularMatrix
func InverseTransform(linear *mat3.T, translation *vec3.T) (mat3.T, vec3.T, error) {
	a := linalg.Matrix{
		{linear[0][0], linear[1][0], linear[2][0]},
		{linear[0][1], linear[1][1], linear[2][1]},
		{linear[0][2], linear[1][2], linear[2][2]},
	}
	inv, ok := a.Inverse()
	if !ok {
		return mat3.T{}, vec3.T{}, ErrSingularMatrix
	}

	var result mat3.T
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			result[col][row] = inv[row][col]
		}
	}

	t := result.MulVec3(translation)
	return result, t.Scaled(-1), nil
}
