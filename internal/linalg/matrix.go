package linalg

import "math"

// Pivots smaller than this are treated as zero.
const Epsilon = 1e-12

// Matrix is a dense row-major square matrix.
type Matrix [][]float64

func (this Matrix) Clone() Matrix {
	clone := make(Matrix, len(this))
	for i := range clone {
		clone[i] = append([]float64(nil), this[i]...)
	}

	return clone
}

// Solve returns x such that this * x = vec, or false if the matrix is
// singular.
func (this Matrix) Solve(vec []float64) ([]float64, bool) {
	lu, ok := newLUdecomp(this)
	if !ok {
		return nil, false
	}
	return lu.solve(vec), true
}

// Inverse returns the inverse matrix, or false if the matrix is singular.
func (this Matrix) Inverse() (Matrix, bool) {
	lu, ok := newLUdecomp(this)
	if !ok {
		return nil, false
	}

	n := len(this)
	inv := make(Matrix, n)
	for i := range inv {
		inv[i] = make([]float64, n)
	}

	unit := make([]float64, n)
	for col := 0; col < n; col++ {
		for i := range unit {
			unit[i] = 0
		}
		unit[col] = 1

		x := lu.solve(unit)
		for row := 0; row < n; row++ {
			inv[row][col] = x[row]
		}
	}

	return inv, true
}

type luDecomp struct {
	LU [][]float64
	P  []int
}

// LU decomposition with partial pivoting
//
// **params**
// + square matrix
//
// **returns**
// + the packed L and U factors with the row permutation, or false when a
// pivot vanishes
func newLUdecomp(mat Matrix) (*luDecomp, bool) {
	mat = mat.Clone()

	n := len(mat)
	P := make([]int, n)

	for k := 0; k < n; k++ {
		Pk := k
		max := math.Abs(mat[k][k])

		for j := k + 1; j < n; j++ {
			if absAjk := math.Abs(mat[j][k]); max < absAjk {
				max = absAjk
				Pk = j
			}
		}
		P[k] = Pk

		if max < Epsilon {
			return nil, false
		}

		if Pk != k {
			mat[k], mat[Pk] = mat[Pk], mat[k]
		}

		Ak := mat[k]
		Akk := Ak[k]

		for i := k + 1; i < n; i++ {
			mat[i][k] /= Akk
		}

		for i := k + 1; i < n; i++ {
			Ai := mat[i]
			for j := k + 1; j < n; j++ {
				Ai[j] -= Ai[k] * Ak[j]
			}
		}
	}

	return &luDecomp{mat, P}, true
}

func (this *luDecomp) solve(vec []float64) []float64 {
	x := append([]float64(nil), vec...)
	LU, P := this.LU, this.P

	n := len(LU)

	for i := 0; i < n; i++ {
		if Pi := P[i]; Pi != i {
			x[i], x[Pi] = x[Pi], x[i]
		}
	}

	for i := 0; i < n; i++ {
		LUi := LU[i]
		for j := 0; j < i; j++ {
			x[i] -= x[j] * LUi[j]
		}
	}

	for i := n - 1; i >= 0; i-- {
		LUi := LU[i]
		for j := i + 1; j < n; j++ {
			x[i] -= x[j] * LUi[j]
		}

		x[i] /= LUi[i]
	}

	return x
}
