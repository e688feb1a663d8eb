package clp

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackTrivial(t *testing.T) {
	p := trivialProblem()
	pk, err := p.pack(Dual)
	require.NoError(t, err)

	assert.Equal(t, int32(1), pk.rows)
	assert.Equal(t, int32(1), pk.cols)
	assert.Equal(t, int32(1), pk.entries)
	assert.Equal(t, []int32{0}, pk.rowIndex)
	assert.Equal(t, []int32{0}, pk.colIndex)
	assert.Equal(t, Dual, pk.mode)
	assert.Equal(t, []float64{0}, pk.x)

	// The output buffer is never the caller's memory.
	pk.x[0] = 42
	assert.Equal(t, []float64{1}, p.Cost)
}

func TestPackEmpty(t *testing.T) {
	pk, err := (&Problem{}).pack(Primal)
	require.NoError(t, err)

	assert.Zero(t, pk.rows)
	assert.Zero(t, pk.cols)
	assert.Zero(t, pk.entries)
	assert.Nil(t, pk.rowIndex)
	assert.Nil(t, pk.colIndex)
	assert.Empty(t, pk.x)
}

func TestPackColumnsWithoutRows(t *testing.T) {
	p := &Problem{
		Cols:     3,
		Cost:     []float64{1, 2, 3},
		ColLower: []float64{0, 0, 0},
		ColUpper: []float64{1, 1, 1},
	}
	pk, err := p.pack(Primal)
	require.NoError(t, err)
	assert.Len(t, pk.x, 3)
}

func TestPackKeepsDuplicates(t *testing.T) {
	p := trivialProblem()
	p.Matrix = Matrix{
		RowIndex: []int{0, 0},
		ColIndex: []int{0, 0},
		Coeffs:   []float64{0.5, 0.5},
	}
	pk, err := p.pack(Primal)
	require.NoError(t, err)
	assert.Equal(t, int32(2), pk.entries)
	assert.Equal(t, []float64{0.5, 0.5}, pk.coeffs)
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Problem)
		want   error
		field  string
	}{
		{"negative rows", func(p *Problem) { p.Rows = -1 }, ErrBadShape, "Rows"},
		{"negative cols", func(p *Problem) { p.Cols = -1 }, ErrBadShape, "Cols"},
		{"row index extra", func(p *Problem) { p.Matrix.RowIndex = append(p.Matrix.RowIndex, 0) }, ErrLengthMismatch, "Matrix"},
		{"col index short", func(p *Problem) { p.Matrix.ColIndex = nil }, ErrLengthMismatch, "Matrix"},
		{"coeffs extra", func(p *Problem) { p.Matrix.Coeffs = append(p.Matrix.Coeffs, 1) }, ErrLengthMismatch, "Matrix"},
		{"cost short", func(p *Problem) { p.Cost = nil }, ErrLengthMismatch, "Cost"},
		{"cost long", func(p *Problem) { p.Cost = []float64{1, 2} }, ErrLengthMismatch, "Cost"},
		{"col lower short", func(p *Problem) { p.ColLower = nil }, ErrLengthMismatch, "ColLower"},
		{"col upper long", func(p *Problem) { p.ColUpper = []float64{5, 5} }, ErrLengthMismatch, "ColUpper"},
		{"row lower short", func(p *Problem) { p.RowLower = nil }, ErrLengthMismatch, "RowLower"},
		{"row upper long", func(p *Problem) { p.RowUpper = []float64{10, 10} }, ErrLengthMismatch, "RowUpper"},
		{"row index too large", func(p *Problem) { p.Matrix.RowIndex = []int{1} }, ErrIndexOutOfRange, "Matrix.RowIndex"},
		{"row index negative", func(p *Problem) { p.Matrix.RowIndex = []int{-1} }, ErrIndexOutOfRange, "Matrix.RowIndex"},
		{"col index too large", func(p *Problem) { p.Matrix.ColIndex = []int{1} }, ErrIndexOutOfRange, "Matrix.ColIndex"},
		{"col index negative", func(p *Problem) { p.Matrix.ColIndex = []int{-3} }, ErrIndexOutOfRange, "Matrix.ColIndex"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := trivialProblem()
			tt.mutate(p)

			err := p.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrContractViolation)
			assert.ErrorIs(t, err, tt.want)

			var cerr *Error
			require.True(t, errors.As(err, &cerr))
			assert.Equal(t, "Solve", cerr.Op)
			assert.Equal(t, tt.field, cerr.Field)
		})
	}
}

func TestValidateNilProblem(t *testing.T) {
	var p *Problem
	assert.ErrorIs(t, p.Validate(), ErrBadShape)
}

func TestPackRejectsInvalidMode(t *testing.T) {
	for _, m := range []Mode{-1, 2, 7} {
		_, err := trivialProblem().pack(m)
		assert.ErrorIs(t, err, ErrInvalidMode, "mode %d", m)
		assert.ErrorIs(t, err, ErrContractViolation)
	}
}

func TestPackRejectsOverflow(t *testing.T) {
	if strconv.IntSize == 32 {
		t.Skip("int cannot exceed int32 on this platform")
	}
	big := int64(math.MaxInt32)
	big++

	p := &Problem{Rows: int(big)}
	err := p.Validate()
	assert.ErrorIs(t, err, ErrOverflow)

	var cerr *Error
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "Rows", cerr.Field)
}

func TestToIndicesNeverTruncates(t *testing.T) {
	if strconv.IntSize == 32 {
		t.Skip("int cannot exceed int32 on this platform")
	}
	wide := int64(1) << 32 // truncates to 0 as int32
	_, err := toIndices("Solve", "Matrix.RowIndex", []int{int(wide)}, 1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestErrorMessage(t *testing.T) {
	p := trivialProblem()
	p.Cost = nil
	assert.EqualError(t, p.Validate(), "clp: Solve failed: Cost: length 0, want 1")

	e := &Error{Op: "Solve", Err: ErrClosed}
	assert.Equal(t, "clp: Solve failed: clp: library closed", e.Error())
}
