//go:build !cgo || !(linux || darwin)

package clp

import "runtime"

// Open always fails on this build: loading a solver library needs cgo and
// dlopen, which are only wired up for linux and darwin.
func Open(path string, opts ...Option) (*Library, error) {
	cfg := newLibraryConfig(opts)
	cfg.logger.Warn("Solver libraries are not supported on this build")
	return nil, newError("Open", "path", ErrLoad, "cannot load %q on %s/%s without cgo and dlopen",
		path, runtime.GOOS, runtime.GOARCH)
}
