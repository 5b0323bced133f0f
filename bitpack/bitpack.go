/*
NAME
  bitpack.go

DESCRIPTION
  bitpack.go implements fixed-width signed/unsigned field insertion and
  extraction within a 64-bit word. This is the primitive that the
  codeword coder (package codeword) builds on to pack the six quantized
  fields of a 2x2 pixel block into a 32-bit wire word.

AUTHOR
  Saltmarsh Systems

LICENSE
  Copyright (C) 2026 Saltmarsh Systems. All Rights Reserved.
*/

// Package bitpack provides safe fixed-width bit-field packing and
// unpacking over a 64-bit word.
package bitpack

import (
	"github.com/pkg/errors"

	"github.com/saltmarsh/vcimage/vcerr"
)

// shiftLeft shifts n left by shift bits, returning 0 if shift >= 64.
// Go defines shifts of the operand width as the zero value for unsigned
// shift counts, but relying on that is a portability trap the original C
// implementation explicitly worked around; we keep the explicit guard so
// the behavior is documented rather than incidental.
func shiftLeft(n uint64, shift uint) uint64 {
	if shift >= 64 {
		return 0
	}
	return n << shift
}

// shiftRightU shifts n right by shift bits (logical), returning 0 if
// shift >= 64.
func shiftRightU(n uint64, shift uint) uint64 {
	if shift >= 64 {
		return 0
	}
	return n >> shift
}

// shiftRightS shifts n right by shift bits (arithmetic), returning 0 if
// shift >= 64 and n >= 0, or all-ones if shift >= 64 and n < 0.
func shiftRightS(n int64, shift uint) int64 {
	if shift >= 64 {
		if n < 0 {
			return -1
		}
		return 0
	}
	return n >> shift
}

// FitsU reports whether n can be represented in width unsigned bits.
// A width of 64 always fits, since n is already at most 64 bits wide.
func FitsU(n uint64, width uint) bool {
	limit := shiftLeft(1, width)
	return n < limit || limit == 0
}

// FitsS reports whether n can be represented in width two's-complement
// signed bits. A width of 64 always fits.
func FitsS(n int64, width uint) bool {
	if width >= 64 {
		return true
	}
	limit := shiftLeft(1, width-1)
	if limit == 0 {
		return true
	}
	return n < int64(limit) && n >= -int64(limit)
}

func checkField(width, lsb uint) error {
	if width > 64 || width+lsb > 64 {
		return errors.Wrapf(vcerr.ErrFieldOutOfRange, "width=%d lsb=%d", width, lsb)
	}
	return nil
}

// GetU extracts width bits starting at lsb from word, zero-extended.
// Fails with ErrFieldOutOfRange when width > 64 or width+lsb > 64.
func GetU(word uint64, width, lsb uint) (uint64, error) {
	if err := checkField(width, lsb); err != nil {
		return 0, err
	}
	mask := shiftLeft(shiftLeft(1, width)-1, lsb)
	return shiftRightU(word&mask, lsb), nil
}

// GetS extracts width bits starting at lsb from word and sign-extends
// from bit lsb+width-1. Fails with ErrFieldOutOfRange on the same
// constraint as GetU.
func GetS(word uint64, width, lsb uint) (int64, error) {
	if err := checkField(width, lsb); err != nil {
		return 0, err
	}
	mask := shiftLeft(shiftLeft(1, width)-1, lsb)
	offset := 64 - width - lsb
	shifted := shiftLeft(word&mask, offset)
	return shiftRightS(int64(shifted), lsb+offset), nil
}

// NewU returns a copy of word with the width-bit field at lsb replaced by
// value, all other bits preserved. Fails with ErrOverflow if value does
// not fit in width bits, or ErrFieldOutOfRange under the GetU/GetS
// constraint.
func NewU(word uint64, width, lsb uint, value uint64) (uint64, error) {
	if err := checkField(width, lsb); err != nil {
		return 0, err
	}
	if !FitsU(value, width) {
		return 0, errors.Wrapf(vcerr.ErrOverflow, "value=%d does not fit in %d unsigned bits", value, width)
	}
	mask := shiftLeft(shiftLeft(1, width)-1, lsb)
	return (word &^ mask) | shiftLeft(value, lsb), nil
}

// NewS returns a copy of word with the width-bit signed field at lsb
// replaced by value, all other bits preserved. Fails with ErrOverflow if
// value does not fit in width signed bits, or ErrFieldOutOfRange under
// the GetU/GetS constraint.
func NewS(word uint64, width, lsb uint, value int64) (uint64, error) {
	if err := checkField(width, lsb); err != nil {
		return 0, err
	}
	if !FitsS(value, width) {
		return 0, errors.Wrapf(vcerr.ErrOverflow, "value=%d does not fit in %d signed bits", value, width)
	}
	mask := shiftLeft(shiftLeft(1, width)-1, lsb)
	field := mask & shiftLeft(uint64(value), lsb)
	return (word &^ mask) | field, nil
}
