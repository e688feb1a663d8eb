package clp

import "fmt"

// Result contains the outcome of a single solve.
//
// The four flags are copied verbatim from the engine's status record and
// are not mutually exclusive. X is meaningful only when ProvenOptimal is
// set; otherwise it holds whatever point the engine stopped at.
type Result struct {
	// ProvenOptimal is set when the engine proved X optimal.
	ProvenOptimal bool

	// ProvenPrimalInfeasible is set when no x satisfies the constraints.
	ProvenPrimalInfeasible bool

	// ProvenDualInfeasible is set when the dual is infeasible, which for a
	// feasible primal means the objective is unbounded.
	ProvenDualInfeasible bool

	// Abandoned is set when the engine gave up without a proof either way,
	// for example on an iteration limit or numerical trouble.
	Abandoned bool

	// X contains the column values, one per variable.
	X []float64
}

// HasDefinitiveOutcome returns true if any of the proven flags is set.
func (r *Result) HasDefinitiveOutcome() bool {
	return r.ProvenOptimal || r.ProvenPrimalInfeasible || r.ProvenDualInfeasible
}

// Objective returns cost · X. It panics if the lengths differ.
func (r *Result) Objective(cost []float64) float64 {
	if len(cost) != len(r.X) {
		panic(fmt.Sprintf("clp: Objective: cost has length %d, X has %d", len(cost), len(r.X)))
	}
	var z float64
	for i, c := range cost {
		z += c * r.X[i]
	}
	return z
}

// Value returns the solution value for a variable by index.
// Returns 0 if the index is out of range.
func (r *Result) Value(index int) float64 {
	if index < 0 || index >= len(r.X) {
		return 0
	}
	return r.X[index]
}

// outcome names the most specific flag set, for labels and logs.
// Flags can co-occur; the order below decides which one is reported.
func (r *Result) outcome() string {
	switch {
	case r.ProvenOptimal:
		return "optimal"
	case r.ProvenPrimalInfeasible:
		return "primal_infeasible"
	case r.ProvenDualInfeasible:
		return "dual_infeasible"
	case r.Abandoned:
		return "abandoned"
	default:
		return "undetermined"
	}
}

// rawStatus mirrors clp_result_t: four C ints, nonzero meaning true.
type rawStatus struct {
	provenOptimal          int32
	provenPrimalInfeasible int32
	provenDualInfeasible   int32
	abandoned              int32
}

func (s rawStatus) result(x []float64) *Result {
	return &Result{
		ProvenOptimal:          s.provenOptimal != 0,
		ProvenPrimalInfeasible: s.provenPrimalInfeasible != 0,
		ProvenDualInfeasible:   s.provenDualInfeasible != 0,
		Abandoned:              s.abandoned != 0,
		X:                      x,
	}
}
