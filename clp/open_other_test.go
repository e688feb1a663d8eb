//go:build !cgo || !(linux || darwin)

package clp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpenUnsupported(t *testing.T) {
	lib, err := Open("libclpsolve.so")
	assert.Nil(t, lib)
	assert.ErrorIs(t, err, ErrLoad)
	assert.ErrorIs(t, err, ErrContractViolation)
}
