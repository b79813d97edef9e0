// SPDX-License-Identifier: MIT

package klu

import (
	"errors"
	"strconv"
)

// Status is the raw result code an engine leaves in Common.Status.
// Values mirror KLU_OK, KLU_SINGULAR, KLU_OUT_OF_MEMORY, KLU_INVALID and
// KLU_TOO_LARGE so a native engine can store its code unchanged.
type Status int

const (
	StatusOK          Status = 0
	StatusSingular    Status = 1
	StatusOutOfMemory Status = -2
	StatusInvalid     Status = -3
	StatusTooLarge    Status = -4
)

// Status sentinels. Every message is prefixed with "klu: ".
var (
	// ErrSingular reports a structurally or numerically singular matrix.
	ErrSingular = errors.New("klu: singular matrix")

	// ErrOutOfMemory reports an engine allocation failure.
	ErrOutOfMemory = errors.New("klu: out of memory")

	// ErrInvalid reports invalid input detected by the engine (bad column
	// pointers, row indices out of range, duplicate entries, bad nrhs).
	ErrInvalid = errors.New("klu: invalid input")

	// ErrTooLarge reports an integer overflow inside the engine.
	ErrTooLarge = errors.New("klu: problem too large")

	// ErrUnknownStatus reports a status code outside the documented set.
	ErrUnknownStatus = errors.New("klu: unknown status")
)

// String returns the KLU constant name for s.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "KLU_OK"
	case StatusSingular:
		return "KLU_SINGULAR"
	case StatusOutOfMemory:
		return "KLU_OUT_OF_MEMORY"
	case StatusInvalid:
		return "KLU_INVALID"
	case StatusTooLarge:
		return "KLU_TOO_LARGE"
	default:
		return "KLU_STATUS(" + strconv.Itoa(int(s)) + ")"
	}
}

// Err maps s to its sentinel. StatusOK maps to nil.
func (s Status) Err() error {
	switch s {
	case StatusOK:
		return nil
	case StatusSingular:
		return ErrSingular
	case StatusOutOfMemory:
		return ErrOutOfMemory
	case StatusInvalid:
		return ErrInvalid
	case StatusTooLarge:
		return ErrTooLarge
	default:
		return ErrUnknownStatus
	}
}
