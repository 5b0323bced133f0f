/*
NAME
  codeword.go

DESCRIPTION
  codeword.go packs a quantized block's six fields into a 32-bit wire
  codeword and unpacks it back, at the fixed bit positions mandated by
  spec §3. Ported from blockPack.c's packCodeword/unPackCodeword, which
  called Bitpack_newu/Bitpack_news at exactly these (width, lsb) pairs.

LICENSE
  Copyright (C) 2026 Saltmarsh Systems. All Rights Reserved.
*/

// Package codeword packs and unpacks the 32-bit per-block codeword that
// is this codec's wire unit.
package codeword

import (
	"github.com/saltmarsh/vcimage/bitpack"
	"github.com/saltmarsh/vcimage/block"
)

// Field bit positions, per spec §3. These are a wire-format contract and
// must not vary.
const (
	prWidth, prLSB = 4, 0
	pbWidth, pbLSB = 4, 4
	dWidth, dLSB   = 5, 8
	cWidth, cLSB   = 5, 13
	bWidth, bLSB   = 5, 18
	aWidth, aLSB   = 9, 23
)

// Pack installs q's six fields into a new 32-bit codeword. The zero word
// is the starting point; each field occupies disjoint bits, so ordering
// of the New* calls does not matter.
func Pack(q block.Quantized) (uint32, error) {
	var word uint64
	var err error

	word, err = bitpack.NewU(word, aWidth, aLSB, uint64(q.A))
	if err != nil {
		return 0, err
	}
	word, err = bitpack.NewS(word, bWidth, bLSB, int64(q.B))
	if err != nil {
		return 0, err
	}
	word, err = bitpack.NewS(word, cWidth, cLSB, int64(q.C))
	if err != nil {
		return 0, err
	}
	word, err = bitpack.NewS(word, dWidth, dLSB, int64(q.D))
	if err != nil {
		return 0, err
	}
	word, err = bitpack.NewU(word, pbWidth, pbLSB, uint64(q.PbIdx))
	if err != nil {
		return 0, err
	}
	word, err = bitpack.NewU(word, prWidth, prLSB, uint64(q.PrIdx))
	if err != nil {
		return 0, err
	}

	return uint32(word), nil
}

// Unpack extracts a Quantized block from a 32-bit codeword.
func Unpack(codeword uint32) (block.Quantized, error) {
	word := uint64(codeword)

	a, err := bitpack.GetU(word, aWidth, aLSB)
	if err != nil {
		return block.Quantized{}, err
	}
	b, err := bitpack.GetS(word, bWidth, bLSB)
	if err != nil {
		return block.Quantized{}, err
	}
	c, err := bitpack.GetS(word, cWidth, cLSB)
	if err != nil {
		return block.Quantized{}, err
	}
	d, err := bitpack.GetS(word, dWidth, dLSB)
	if err != nil {
		return block.Quantized{}, err
	}
	pb, err := bitpack.GetU(word, pbWidth, pbLSB)
	if err != nil {
		return block.Quantized{}, err
	}
	pr, err := bitpack.GetU(word, prWidth, prLSB)
	if err != nil {
		return block.Quantized{}, err
	}

	return block.Quantized{
		A: uint32(a), B: int32(b), C: int32(c), D: int32(d),
		PbIdx: uint8(pb), PrIdx: uint8(pr),
	}, nil
}
