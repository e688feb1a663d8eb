package clp

import "math"

// Inf returns positive infinity, suitable for unbounded variable bounds.
func Inf() float64 {
	return math.Inf(1)
}

// NegInf returns negative infinity, suitable for unbounded variable bounds.
func NegInf() float64 {
	return math.Inf(-1)
}

// nonzerosToCOO splits nonzeros into coordinate triplets, keeping their
// order and any duplicates.
func nonzerosToCOO(nz []Nonzero) Matrix {
	if len(nz) == 0 {
		return Matrix{}
	}
	a := Matrix{
		RowIndex: make([]int, len(nz)),
		ColIndex: make([]int, len(nz)),
		Coeffs:   make([]float64, len(nz)),
	}
	for k, n := range nz {
		a.RowIndex[k] = n.Row
		a.ColIndex[k] = n.Col
		a.Coeffs[k] = n.Val
	}
	return a
}

// expandSlice expands a slice to length n if it's empty, filling with fillValue.
// Returns the original slice if it already has length n.
// Returns an error if the slice has a non-zero length that differs from n.
func expandSlice(field string, n int, slice []float64, fillValue float64) ([]float64, error) {
	if len(slice) == n {
		return slice, nil
	}
	if len(slice) == 0 {
		result := make([]float64, n)
		for i := range result {
			result[i] = fillValue
		}
		return result, nil
	}
	return nil, lengthError("Model.Problem", field, len(slice), n)
}

// maxRowCol finds the maximum row and column indices from a slice of nonzeros.
func maxRowCol(nz []Nonzero) (maxRow, maxCol int) {
	maxRow, maxCol = -1, -1
	for _, n := range nz {
		if n.Row > maxRow {
			maxRow = n.Row
		}
		if n.Col > maxCol {
			maxCol = n.Col
		}
	}
	return maxRow, maxCol
}
