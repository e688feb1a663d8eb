//go:build cgo && (linux || darwin)

package clp

/*
#cgo CFLAGS: -I${SRCDIR}/../internal/clp/include
#cgo linux LDFLAGS: -ldl

#include <dlfcn.h>
#include <stdlib.h>
#include <string.h>
#include "clp_solve.h"

// dlerror state is per thread, so each helper reads it in the same C call.

static char *clp_dlerror(void) {
	const char *msg = dlerror();
	return msg ? strdup(msg) : NULL;
}

static void *clp_dlopen(const char *path, char **err) {
	void *handle = dlopen(path, RTLD_NOW | RTLD_LOCAL);
	if (handle == NULL) {
		*err = clp_dlerror();
	}
	return handle;
}

static void *clp_dlsym(void *handle, const char *name, char **err) {
	dlerror();
	void *sym = dlsym(handle, name);
	if (sym == NULL) {
		*err = clp_dlerror();
	}
	return sym;
}

static int clp_dlclose(void *handle, char **err) {
	int rc = dlclose(handle);
	if (rc != 0) {
		*err = clp_dlerror();
	}
	return rc;
}

static clp_result_t clp_invoke(void *fn, const coo_matrix_t *mat_a,
		const double *vec_c, const double *vec_b_lo, const double *vec_b_up,
		const double *vec_x_lo, const double *vec_x_up,
		const clp_params_t *params, double *vec_x_soln) {
	return ((clp_solve_fn)fn)(mat_a, vec_c, vec_b_lo, vec_b_up,
		vec_x_lo, vec_x_up, params, vec_x_soln);
}
*/
import "C"
import (
	"errors"
	"runtime"
	"unsafe"

	"go.uber.org/zap"
)

// Open loads the shared library at path and resolves its solve entry point.
// The path is passed to dlopen unchanged, so a bare file name is searched
// for on the loader path.
//
// The library must be closed with Close when no longer needed.
func Open(path string, opts ...Option) (*Library, error) {
	cfg := newLibraryConfig(opts)
	if path == "" {
		return nil, &Error{Op: "Open", Field: "path", Msg: "empty library path", Err: ErrLoad}
	}

	cPath := C.CString(path)
	defer C.free(unsafe.Pointer(cPath))

	var cErr *C.char
	handle := C.clp_dlopen(cPath, &cErr)
	if handle == nil {
		return nil, &Error{Op: "Open", Field: "path", Msg: dlMessage(cErr, path), Err: ErrLoad}
	}

	cSym := C.CString(cfg.symbol)
	defer C.free(unsafe.Pointer(cSym))

	fn := C.clp_dlsym(handle, cSym, &cErr)
	if fn == nil {
		msg := dlMessage(cErr, cfg.symbol)
		var closeErr *C.char
		if C.clp_dlclose(handle, &closeErr) != 0 {
			C.free(unsafe.Pointer(closeErr))
		}
		return nil, &Error{Op: "Open", Field: "symbol", Msg: msg, Err: ErrLoad}
	}

	lib := newLibrary(path, &dlSolver{handle: handle, fn: fn}, cfg)
	runtime.SetFinalizer(lib, (*Library).Close)

	cfg.logger.Info("Opened solver library",
		zap.String("path", path),
		zap.String("symbol", cfg.symbol),
		zap.Bool("reentrant", cfg.reentrant))
	return lib, nil
}

// dlMessage converts and frees a message from clp_dlerror.
func dlMessage(msg *C.char, fallback string) string {
	if msg == nil {
		return fallback
	}
	defer C.free(unsafe.Pointer(msg))
	return C.GoString(msg)
}

// dlSolver is a clp_solve entry point resolved with dlsym.
type dlSolver struct {
	handle unsafe.Pointer
	fn     unsafe.Pointer
}

func (s *dlSolver) call(p *packed) rawStatus {
	// The matrix record lives in Go memory and points at Go slices, which
	// cgo only allows while those slices are pinned.
	var pinner runtime.Pinner
	defer pinner.Unpin()

	mat := C.coo_matrix_t{
		n_rows:      C.int32_t(p.rows),
		n_cols:      C.int32_t(p.cols),
		n_entries:   C.int32_t(p.entries),
		row_indices: int32Ptr(&pinner, p.rowIndex),
		col_indices: int32Ptr(&pinner, p.colIndex),
		coeffs:      doublePtr(&pinner, p.coeffs),
	}
	params := C.clp_params_t{optimisation_mode: C.int32_t(p.mode)}

	r := C.clp_invoke(s.fn, &mat,
		doublePtr(&pinner, p.cost),
		doublePtr(&pinner, p.rowLower), doublePtr(&pinner, p.rowUpper),
		doublePtr(&pinner, p.colLower), doublePtr(&pinner, p.colUpper),
		&params,
		doublePtr(&pinner, p.x))

	return rawStatus{
		provenOptimal:          int32(r.proven_optimal),
		provenPrimalInfeasible: int32(r.proven_primal_infeasible),
		provenDualInfeasible:   int32(r.proven_dual_infeasible),
		abandoned:              int32(r.abandoned),
	}
}

func (s *dlSolver) close() error {
	var cErr *C.char
	if C.clp_dlclose(s.handle, &cErr) != 0 {
		return errors.New(dlMessage(cErr, "dlclose failed"))
	}
	return nil
}

// int32Ptr returns a pinned pointer to the first element, or nil if empty.
func int32Ptr(pinner *runtime.Pinner, s []int32) *C.int32_t {
	if len(s) == 0 {
		return nil
	}
	pinner.Pin(&s[0])
	return (*C.int32_t)(unsafe.Pointer(&s[0]))
}

// doublePtr returns a pinned pointer to the first element, or nil if empty.
func doublePtr(pinner *runtime.Pinner, s []float64) *C.double {
	if len(s) == 0 {
		return nil
	}
	pinner.Pin(&s[0])
	return (*C.double)(unsafe.Pointer(&s[0]))
}
