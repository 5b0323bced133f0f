/*
NAME
  bitstream.go

DESCRIPTION
  bitstream.go serializes and deserializes 32-bit codewords to/from a
  byte stream in big-endian order (most-significant byte first). This
  fixes the shift-amount ambiguity noted in the original project's
  readwrite.c, whose applyPrintCodewords/applyRead used `i << 2`
  (a bug producing 4-bit strides instead of 8-bit byte strides); the correct
  big-endian serialization uses shift amounts 24, 16, 8, 0.

LICENSE
  Copyright (C) 2026 Saltmarsh Systems. All Rights Reserved.
*/

// Package bitstream serializes 32-bit codewords to and from a
// big-endian byte stream.
package bitstream

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"

	"github.com/saltmarsh/vcimage/vcerr"
)

// WriteCodeword writes a single 32-bit codeword to w as four bytes,
// most-significant byte first.
func WriteCodeword(w io.Writer, codeword uint32) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], codeword)
	_, err := w.Write(buf[:])
	if err != nil {
		return errors.Wrap(err, "bitstream: write codeword")
	}
	return nil
}

// WriteCodewords writes codewords in order, each as 4 big-endian bytes.
func WriteCodewords(w io.Writer, codewords []uint32) error {
	for _, c := range codewords {
		if err := WriteCodeword(w, c); err != nil {
			return err
		}
	}
	return nil
}

// ReadCodeword reads a single 32-bit codeword from r. A short read
// (including a clean EOF before any bytes) fails with
// ErrTruncatedStream.
func ReadCodeword(r io.Reader) (uint32, error) {
	var buf [4]byte
	_, err := io.ReadFull(r, buf[:])
	if err != nil {
		return 0, errors.Wrap(vcerr.ErrTruncatedStream, err.Error())
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}

// ReadCodewords reads exactly n codewords from r. Fails with
// ErrTruncatedStream if the stream ends early.
func ReadCodewords(r io.Reader, n int) ([]uint32, error) {
	out := make([]uint32, n)
	for i := range out {
		c, err := ReadCodeword(r)
		if err != nil {
			return nil, errors.Wrapf(err, "codeword %d of %d", i, n)
		}
		out[i] = c
	}
	return out, nil
}
