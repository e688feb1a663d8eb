package clp

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// nativeSolver is one loaded engine entry point.
type nativeSolver interface {
	// call runs the engine once, writing the solution into p.x.
	call(p *packed) rawStatus
	close() error
}

// Library is a loaded solver shared library.
//
// A Library serializes its own Solve calls, because the engine is not
// assumed to be re-entrant (see WithReentrant). Libraries opened on the
// same path share the engine's process-wide state, so callers that open
// several must serialize across them.
//
// Always call Close when done to release the library:
//
//	lib, _ := clp.Open("/usr/local/lib/libclpsolve.so")
//	defer lib.Close()
type Library struct {
	path string
	cfg  *libraryConfig

	callMu sync.Mutex

	mu     sync.RWMutex
	native nativeSolver
}

func newLibrary(path string, native nativeSolver, cfg *libraryConfig) *Library {
	return &Library{path: path, cfg: cfg, native: native}
}

// Path returns the path the library was opened from.
func (l *Library) Path() string {
	return l.path
}

// Close releases the library. It is safe to call Close multiple times.
func (l *Library) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.native == nil {
		return nil
	}
	err := l.native.close()
	l.native = nil
	l.cfg.logger.Info("Closed solver library", zap.String("path", l.path))
	if err != nil {
		return &Error{Op: "Close", Msg: err.Error(), Err: ErrLoad}
	}
	return nil
}

// Solve validates p, runs the engine once in the given mode and returns
// its result. Errors are contract violations only; an infeasible or
// abandoned solve is reported through the Result flags.
func (l *Library) Solve(p *Problem, mode Mode) (*Result, error) {
	return l.SolveContext(context.Background(), p, mode)
}

// SolveContext is Solve with a context for tracing. If ctx is already done
// the engine is not invoked and the returned *Error wraps ctx.Err(). A call
// that has reached the engine always runs to completion.
func (l *Library) SolveContext(ctx context.Context, p *Problem, mode Mode) (*Result, error) {
	ctx, span := l.cfg.tracer.Start(ctx, "clp.Solve",
		trace.WithAttributes(attribute.String("clp.mode", mode.String())))
	defer span.End()

	pk, err := p.pack(mode)
	if err != nil {
		l.reject(span, err)
		return nil, err
	}
	span.SetAttributes(
		attribute.Int("clp.rows", int(pk.rows)),
		attribute.Int("clp.cols", int(pk.cols)),
		attribute.Int("clp.entries", int(pk.entries)),
	)
	if err := ctx.Err(); err != nil {
		err = &Error{Op: "Solve", Msg: err.Error(), Err: err}
		l.reject(span, err)
		return nil, err
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.native == nil {
		err := &Error{Op: "Solve", Msg: l.path, Err: ErrClosed}
		l.reject(span, err)
		return nil, err
	}

	if !l.cfg.reentrant {
		l.callMu.Lock()
		defer l.callMu.Unlock()
	}

	l.cfg.logger.Debug("Solving",
		zap.String("mode", mode.String()),
		zap.Int32("rows", pk.rows),
		zap.Int32("cols", pk.cols),
		zap.Int32("entries", pk.entries))

	start := time.Now()
	res := l.native.call(pk).result(pk.x)
	elapsed := time.Since(start)

	outcome := res.outcome()
	l.cfg.metrics.observeSolve(mode, outcome, elapsed)
	span.SetAttributes(
		attribute.Bool("clp.proven_optimal", res.ProvenOptimal),
		attribute.Bool("clp.proven_primal_infeasible", res.ProvenPrimalInfeasible),
		attribute.Bool("clp.proven_dual_infeasible", res.ProvenDualInfeasible),
		attribute.Bool("clp.abandoned", res.Abandoned),
	)
	l.cfg.logger.Debug("Solved",
		zap.String("mode", mode.String()),
		zap.String("outcome", outcome),
		zap.Bool("proven_optimal", res.ProvenOptimal),
		zap.Bool("proven_primal_infeasible", res.ProvenPrimalInfeasible),
		zap.Bool("proven_dual_infeasible", res.ProvenDualInfeasible),
		zap.Bool("abandoned", res.Abandoned),
		zap.Duration("elapsed", elapsed))

	return res, nil
}

func (l *Library) reject(span trace.Span, err error) {
	op, field := "Solve", ""
	var cerr *Error
	if errors.As(err, &cerr) {
		op, field = cerr.Op, cerr.Field
	}
	l.cfg.metrics.observeRejected(op, field)
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	l.cfg.logger.Warn("Rejected solve", zap.String("path", l.path), zap.Error(err))
}

// Solve opens the library at path, solves p once and closes the library.
// The problem is validated before the library is loaded.
func Solve(path string, p *Problem, mode Mode, opts ...Option) (*Result, error) {
	if _, err := p.pack(mode); err != nil {
		return nil, err
	}
	lib, err := Open(path, opts...)
	if err != nil {
		return nil, err
	}
	defer lib.Close()
	return lib.Solve(p, mode)
}
