package clp

import "math"

// Nonzero represents a non-zero entry in a sparse matrix.
// Row and Col are zero-indexed.
type Nonzero struct {
	Row int
	Col int
	Val float64
}

// Model is a row-oriented way to build a Problem.
//
// The model describes:
//
//	Minimize (or Maximize): ColCosts · x + Offset
//	Subject to:             RowLower ≤ A·x ≤ RowUpper
//	And:                    ColLower ≤ x ≤ ColUpper
//
// Where A is the constraint matrix specified by ConstMatrix.
type Model struct {
	// Maximize indicates whether to maximize (true) or minimize (false).
	Maximize bool

	// Offset is a constant added to the objective function.
	Offset float64

	// ColCosts are the objective function coefficients for each variable.
	// If empty, all costs are 0.
	ColCosts []float64

	// ColLower are the lower bounds for each variable.
	// If empty, defaults to 0.
	ColLower []float64

	// ColUpper are the upper bounds for each variable.
	// If empty, defaults to +∞.
	ColUpper []float64

	// RowLower are the lower bounds for each constraint.
	// Use NegInf() for no lower bound.
	RowLower []float64

	// RowUpper are the upper bounds for each constraint.
	// Use Inf() for no upper bound.
	RowUpper []float64

	// ConstMatrix defines the constraint matrix as a list of non-zero entries.
	// Repeated (row, column) entries are summed by the engine.
	ConstMatrix []Nonzero
}

// AddDenseRow adds a constraint to the model using a dense coefficient vector.
// Zero coefficients are automatically filtered out.
//
// Example:
//
//	model.AddDenseRow(1.0, []float64{1.0, 2.0, 0.0, 3.0}, 10.0)
//	// Adds constraint: 1.0 <= x0 + 2*x1 + 3*x3 <= 10.0
func (m *Model) AddDenseRow(lower float64, coeffs []float64, upper float64) {
	row := len(m.RowLower)
	m.RowLower = append(m.RowLower, lower)
	m.RowUpper = append(m.RowUpper, upper)

	for col, val := range coeffs {
		if val != 0.0 {
			m.ConstMatrix = append(m.ConstMatrix, Nonzero{Row: row, Col: col, Val: val})
		}
	}
}

// AddSparseRow adds a constraint using sparse coefficient representation.
// It panics if cols and vals differ in length.
//
// Example:
//
//	model.AddSparseRow(1.0, []int{0, 1, 3}, []float64{1.0, 2.0, 3.0}, 10.0)
//	// Adds constraint: 1.0 <= x0 + 2*x1 + 3*x3 <= 10.0
func (m *Model) AddSparseRow(lower float64, cols []int, vals []float64, upper float64) {
	if len(cols) != len(vals) {
		panic("clp: AddSparseRow: cols and vals must have same length")
	}
	row := len(m.RowLower)
	m.RowLower = append(m.RowLower, lower)
	m.RowUpper = append(m.RowUpper, upper)

	for i, col := range cols {
		if vals[i] != 0.0 {
			m.ConstMatrix = append(m.ConstMatrix, Nonzero{Row: row, Col: col, Val: vals[i]})
		}
	}
}

// AddEqRow adds an equality constraint: sum(coeffs * x) = rhs.
func (m *Model) AddEqRow(coeffs []float64, rhs float64) {
	m.AddDenseRow(rhs, coeffs, rhs)
}

// AddLeRow adds a less-than-or-equal constraint: sum(coeffs * x) <= rhs.
func (m *Model) AddLeRow(coeffs []float64, rhs float64) {
	m.AddDenseRow(math.Inf(-1), coeffs, rhs)
}

// AddGeRow adds a greater-than-or-equal constraint: sum(coeffs * x) >= rhs.
func (m *Model) AddGeRow(coeffs []float64, rhs float64) {
	m.AddDenseRow(rhs, coeffs, math.Inf(1))
}

// NumVars returns the number of variables in the model.
func (m *Model) NumVars() int {
	_, maxCol := maxRowCol(m.ConstMatrix)
	n := maxCol + 1
	for _, s := range [][]float64{m.ColCosts, m.ColLower, m.ColUpper} {
		if len(s) > n {
			n = len(s)
		}
	}
	return n
}

// NumConstraints returns the number of constraints in the model.
func (m *Model) NumConstraints() int {
	maxRow, _ := maxRowCol(m.ConstMatrix)
	n := maxRow + 1
	for _, s := range [][]float64{m.RowLower, m.RowUpper} {
		if len(s) > n {
			n = len(s)
		}
	}
	return n
}

// Problem builds the Problem described by the model, filling in default
// costs and bounds. For a maximization model the costs are negated, so
// the engine's minimum is the model's maximum.
func (m *Model) Problem() (*Problem, error) {
	numCol := m.NumVars()
	numRow := m.NumConstraints()

	colCosts, err := expandSlice("ColCosts", numCol, m.ColCosts, 0.0)
	if err != nil {
		return nil, err
	}
	colLower, err := expandSlice("ColLower", numCol, m.ColLower, 0.0)
	if err != nil {
		return nil, err
	}
	colUpper, err := expandSlice("ColUpper", numCol, m.ColUpper, math.Inf(1))
	if err != nil {
		return nil, err
	}
	rowLower, err := expandSlice("RowLower", numRow, m.RowLower, math.Inf(-1))
	if err != nil {
		return nil, err
	}
	rowUpper, err := expandSlice("RowUpper", numRow, m.RowUpper, math.Inf(1))
	if err != nil {
		return nil, err
	}

	if m.Maximize {
		negated := make([]float64, numCol)
		for i, c := range colCosts {
			negated[i] = -c
		}
		colCosts = negated
	}

	return &Problem{
		Rows:     numRow,
		Cols:     numCol,
		Matrix:   nonzerosToCOO(m.ConstMatrix),
		Cost:     colCosts,
		RowLower: rowLower,
		RowUpper: rowUpper,
		ColLower: colLower,
		ColUpper: colUpper,
	}, nil
}

// Solve builds the model and solves it once with lib.
func (m *Model) Solve(lib *Library, mode Mode) (*Result, error) {
	p, err := m.Problem()
	if err != nil {
		return nil, err
	}
	return lib.Solve(p, mode)
}

// Objective returns the model's objective at res.X, in the model's own
// sense and including Offset. Missing costs count as 0.
func (m *Model) Objective(res *Result) float64 {
	z := m.Offset
	for i, x := range res.X {
		if i < len(m.ColCosts) {
			z += m.ColCosts[i] * x
		}
	}
	return z
}
