// Package clp provides Go bindings for solving linear programs with the
// COIN-OR CLP simplex solver through a small C entry point, clp_solve.
//
// The solver is not linked into the binary. Instead a shared library that
// exports clp_solve (see internal/clp for its header and source) is loaded
// at run time from a path chosen by the caller, so several solver builds
// can be used side by side.
//
// # Example
//
//	lib, err := clp.Open("/usr/local/lib/libclpsolve.so")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer lib.Close()
//
//	// Minimize x subject to 0 <= x <= 10, 0 <= x <= 5
//	res, err := lib.Solve(&clp.Problem{
//		Rows:     1,
//		Cols:     1,
//		Matrix:   clp.Matrix{RowIndex: []int{0}, ColIndex: []int{0}, Coeffs: []float64{1}},
//		Cost:     []float64{1},
//		RowLower: []float64{0},
//		RowUpper: []float64{10},
//		ColLower: []float64{0},
//		ColUpper: []float64{5},
//	}, clp.Primal)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if res.ProvenOptimal {
//		fmt.Println("x =", res.X)
//	}
//
// # Errors and outcomes
//
// Solve returns an error only when the call itself is malformed: mismatched
// lengths, indices outside the shape, values that do not fit the 32-bit
// native types, an unknown mode, or a library that cannot be loaded. Such
// errors are reported before the engine is invoked. Whether the problem is
// optimal, infeasible, unbounded or abandoned is reported through the
// Result flags and is never an error.
package clp
