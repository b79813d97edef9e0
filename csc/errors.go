// SPDX-License-Identifier: MIT

package csc

import (
	"errors"
	"fmt"
)

// Field names reported in BufferError.Field.
const (
	FieldRowIdx = "rowind"
	FieldColPtr = "colptr"
	FieldValues = "nz"
	FieldRHS    = "b"
)

var (
	// ErrBadOrder is returned when the matrix order N is not positive.
	ErrBadOrder = errors.New("csc: order must be > 0")

	// ErrNilBuffer indicates a required slice is nil.
	ErrNilBuffer = errors.New("csc: nil buffer")

	// ErrLength indicates a slice whose length contradicts N or nnz.
	ErrLength = errors.New("csc: length mismatch")

	// ErrRHSLength indicates a right-hand side whose length is not a positive
	// multiple of N.
	ErrRHSLength = errors.New("csc: right-hand side length is not a multiple of n")

	// ErrNonContiguous indicates a strided buffer where a contiguous one is
	// required.
	ErrNonContiguous = errors.New("csc: buffer is not contiguous")
)

// BufferError reports a caller buffer that cannot be used as given.
type BufferError struct {
	Field string // "rowind", "colptr", "nz" or "b"
	Err   error  // underlying cause, one of the package sentinels
}

func (e *BufferError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *BufferError) Unwrap() error { return e.Err }

func bufferErrorf(field string, err error, format string, args ...any) error {
	return &BufferError{Field: field, Err: fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)}
}
