// SPDX-License-Identifier: MIT

// Package interleave converts complex128 slices to and from the interleaved
// float64 layout expected by complex sparse engines:
//
//	[re0, im0, re1, im1, ...]
//
// Element k of the complex slice occupies positions 2k (real part) and 2k+1
// (imaginary part) of the float64 slice. Real parts are never stored as one
// contiguous half followed by the imaginary parts.
package interleave

import (
	"errors"
	"fmt"
)

// ErrOddLength is returned by Unpack when the interleaved buffer cannot hold
// a whole number of complex values.
var ErrOddLength = errors.New("interleave: odd-length buffer")

// ErrShort is returned when the destination is too small for the source.
var ErrShort = errors.New("interleave: destination too short")

// Pack appends the interleaved form of src to dst and returns the extended
// slice. Pass nil (or dst[:0]) to get a fresh buffer of length 2*len(src).
// Complexity: O(len(src)).
func Pack(dst []float64, src []complex128) []float64 {
	if cap(dst)-len(dst) < 2*len(src) {
		grown := make([]float64, len(dst), len(dst)+2*len(src))
		copy(grown, dst)
		dst = grown
	}
	for _, z := range src {
		dst = append(dst, real(z), imag(z))
	}

	return dst
}

// Unpack writes consecutive (re, im) pairs of src into dst, in order.
// len(src) must be even and dst must hold at least len(src)/2 elements;
// nothing is written when either check fails.
func Unpack(dst []complex128, src []float64) error {
	if len(src)%2 != 0 {
		return fmt.Errorf("Unpack: len=%d: %w", len(src), ErrOddLength)
	}
	if len(dst) < len(src)/2 {
		return fmt.Errorf("Unpack: need %d, have %d: %w", len(src)/2, len(dst), ErrShort)
	}
	for k := 0; k < len(src)/2; k++ {
		dst[k] = complex(src[2*k], src[2*k+1])
	}

	return nil
}
