package clp

import "math"

// Matrix is a sparse constraint matrix in coordinate (COO) form.
// Entry k is A[RowIndex[k]][ColIndex[k]] = Coeffs[k]. Duplicate
// (row, col) pairs are handed to the engine unchanged and summed there.
type Matrix struct {
	RowIndex []int
	ColIndex []int
	Coeffs   []float64
}

// Len returns the number of stored entries.
func (a Matrix) Len() int {
	return len(a.Coeffs)
}

// Problem is a linear program in the standard form solved by CLP:
//
//	Minimize:   Cost · x
//	Subject to: RowLower ≤ A·x ≤ RowUpper
//	And:        ColLower ≤ x ≤ ColUpper
//
// Rows and Cols give the shape (m, n) of A explicitly; it is never
// inferred from the indices. Infinite bounds (math.Inf) mean "unbounded".
// Whether each lower bound is below its upper bound is not checked here;
// the engine reports such problems as infeasible.
type Problem struct {
	Rows int
	Cols int

	Matrix Matrix

	Cost     []float64
	RowLower []float64
	RowUpper []float64
	ColLower []float64
	ColUpper []float64
}

// Validate checks the preconditions Solve checks, without an engine.
// It returns the same error Solve would return for the same problem.
func (p *Problem) Validate() error {
	_, err := p.pack(Primal)
	return err
}

// packed is the transient representation handed across the native
// boundary. Index slices are fresh int32 copies; float slices alias the
// caller's data, which the engine only reads. X is the output buffer.
type packed struct {
	rows    int32
	cols    int32
	entries int32

	rowIndex []int32
	colIndex []int32
	coeffs   []float64

	cost     []float64
	rowLower []float64
	rowUpper []float64
	colLower []float64
	colUpper []float64

	mode Mode
	x    []float64
}

// pack validates p in a fixed order and converts it to the native layout.
// Nothing is allocated for the engine unless every check passes.
func (p *Problem) pack(mode Mode) (*packed, error) {
	const op = "Solve"

	if !mode.Valid() {
		return nil, newError(op, "mode", ErrInvalidMode, "mode %d is neither primal nor dual", int32(mode))
	}
	if p == nil {
		return nil, newError(op, "problem", ErrBadShape, "nil problem")
	}

	rows, err := toInt32(op, "Rows", p.Rows)
	if err != nil {
		return nil, err
	}
	cols, err := toInt32(op, "Cols", p.Cols)
	if err != nil {
		return nil, err
	}

	a := p.Matrix
	if len(a.RowIndex) != len(a.Coeffs) || len(a.ColIndex) != len(a.Coeffs) {
		return nil, newError(op, "Matrix", ErrLengthMismatch, "%d row indices, %d column indices, %d coefficients",
			len(a.RowIndex), len(a.ColIndex), len(a.Coeffs))
	}
	entries, err := toInt32(op, "Matrix", a.Len())
	if err != nil {
		return nil, err
	}

	for _, v := range []struct {
		field string
		data  []float64
		want  int
	}{
		{"Cost", p.Cost, p.Cols},
		{"ColLower", p.ColLower, p.Cols},
		{"ColUpper", p.ColUpper, p.Cols},
		{"RowLower", p.RowLower, p.Rows},
		{"RowUpper", p.RowUpper, p.Rows},
	} {
		if len(v.data) != v.want {
			return nil, lengthError(op, v.field, len(v.data), v.want)
		}
	}

	rowIndex, err := toIndices(op, "Matrix.RowIndex", a.RowIndex, p.Rows)
	if err != nil {
		return nil, err
	}
	colIndex, err := toIndices(op, "Matrix.ColIndex", a.ColIndex, p.Cols)
	if err != nil {
		return nil, err
	}

	return &packed{
		rows:     rows,
		cols:     cols,
		entries:  entries,
		rowIndex: rowIndex,
		colIndex: colIndex,
		coeffs:   a.Coeffs,
		cost:     p.Cost,
		rowLower: p.RowLower,
		rowUpper: p.RowUpper,
		colLower: p.ColLower,
		colUpper: p.ColUpper,
		mode:     mode,
		x:        make([]float64, p.Cols),
	}, nil
}

func lengthError(op, field string, got, want int) error {
	return newError(op, field, ErrLengthMismatch, "length %d, want %d", got, want)
}

// toInt32 converts a non-negative dimension, refusing to truncate.
func toInt32(op, field string, v int) (int32, error) {
	if v < 0 {
		return 0, newError(op, field, ErrBadShape, "negative dimension %d", v)
	}
	if v > math.MaxInt32 {
		return 0, newError(op, field, ErrOverflow, "%d exceeds %d", v, math.MaxInt32)
	}
	return int32(v), nil
}

// toIndices copies idx into int32 storage, checking each value is in [0, limit).
// limit itself has already been checked to fit in int32.
func toIndices(op, field string, idx []int, limit int) ([]int32, error) {
	if len(idx) == 0 {
		return nil, nil
	}
	out := make([]int32, len(idx))
	for k, v := range idx {
		if v < 0 || v >= limit {
			return nil, newError(op, field, ErrIndexOutOfRange, "entry %d has index %d, want [0, %d)", k, v, limit)
		}
		out[k] = int32(v)
	}
	return out, nil
}
