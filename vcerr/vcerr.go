/*
NAME
  vcerr.go

DESCRIPTION
  vcerr.go defines the sentinel error kinds shared across the codec
  pipeline, so that callers can classify failures with errors.Is rather
  than matching on message text.

LICENSE
  Copyright (C) 2026 Saltmarsh Systems. All Rights Reserved.
*/

// Package vcerr defines the error kinds used across the vcimage codec.
package vcerr

import "errors"

// Sentinel error kinds. See spec §7 for the policy governing each kind.
var (
	// ErrBadArguments indicates an invalid CLI invocation: unknown flag,
	// more than one filename, or conflicting inputs.
	ErrBadArguments = errors.New("vcimage: bad arguments")

	// ErrIO indicates a file open/read/write failure.
	ErrIO = errors.New("vcimage: i/o error")

	// ErrInvalidPPM indicates a malformed PPM on input.
	ErrInvalidPPM = errors.New("vcimage: invalid ppm")

	// ErrTruncatedStream indicates a compressed stream ended before the
	// expected codeword count was read.
	ErrTruncatedStream = errors.New("vcimage: truncated stream")

	// ErrBadHeader indicates a compressed stream whose header does not
	// match the required literal string.
	ErrBadHeader = errors.New("vcimage: bad header")

	// ErrFieldOutOfRange indicates a programmer error in a bit-pack
	// invocation: width > 64 or width+lsb > 64. This is a fatal contract
	// violation, never a recoverable condition.
	ErrFieldOutOfRange = errors.New("vcimage: field out of range")

	// ErrOverflow indicates a value that does not fit in its target field
	// width. In the pipeline, quantization guarantees values fit, so this
	// should be unreachable; if reached, it is fatal.
	ErrOverflow = errors.New("vcimage: field overflow")

	// ErrSizeMismatch indicates two rasters differ in width or height by
	// more than one, as reported by the diff tool.
	ErrSizeMismatch = errors.New("vcimage: image size differs by more than 1")
)
