/*
NAME
  block.go

DESCRIPTION
  block.go implements the 2x2 block transform: a 4-point Hadamard-like
  DCT of the block's four Y values producing coefficients (a,b,c,d), the
  averaging of Pb/Pr across the block (chroma subsampling), and
  quantization of all six values into fixed-width integer fields. Ported
  from blockPack.c's discreteTrans/discreteDetrans/quantabcd/unQuantabcd.

LICENSE
  Copyright (C) 2026 Saltmarsh Systems. All Rights Reserved.
*/

// Package block implements the forward and inverse 2x2 block transform
// and the quantization of its coefficients.
package block

import (
	"github.com/saltmarsh/vcimage/chroma"
	"github.com/saltmarsh/vcimage/colorspace"
)

// Quantized holds the six fixed-width integer fields of a compressed
// 2x2 block: a is unsigned 9-bit, b/c/d are signed 5-bit, and
// PbIdx/PrIdx are unsigned 4-bit chroma indices.
type Quantized struct {
	A            uint32
	B, C, D      int32
	PbIdx, PrIdx uint8
}

// clamp restricts f to [lo, hi].
func clamp(f, lo, hi float64) float64 {
	if f < lo {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}

// abcd are the four cosine coefficients of a block's forward transform.
type abcd struct{ a, b, c, d float64 }

// forwardDCT computes the forward 4-point transform of the block's four
// Y values, labeled top-left, top-right, bottom-left, bottom-right as
// Y1..Y4 per spec §4.4.
func forwardDCT(y1, y2, y3, y4 float64) abcd {
	return abcd{
		a: (y4 + y3 + y2 + y1) / 4,
		b: (y4 + y3 - y2 - y1) / 4,
		c: (y4 - y3 + y2 - y1) / 4,
		d: (y4 - y3 - y2 + y1) / 4,
	}
}

// inverseDCT reverses forwardDCT, returning (Y1, Y2, Y3, Y4).
func inverseDCT(v abcd) (y1, y2, y3, y4 float64) {
	y1 = v.a - v.b - v.c + v.d
	y2 = v.a - v.b + v.c - v.d
	y3 = v.a + v.b - v.c - v.d
	y4 = v.a + v.b + v.c + v.d
	return
}

// quantizeABCD scales and clamps the cosine coefficients into their
// wire-format integer ranges. a is assumed to lie in [0,1] in practice;
// it is clamped defensively since float rounding can push it slightly
// outside that range (see spec Open Questions). b, c, d are clamped to
// [-0.3, 0.3] before scaling by 50, which is the only way their 5-bit
// signed field cannot overflow. Conversion to int truncates toward zero
// (Go's float-to-int conversion), matching blockPack.c's quantabcd,
// which relies on C's truncating int cast rather than floor.
func quantizeABCD(v abcd) (a uint32, b, c, d int32) {
	av := clamp(v.a, 0, 1)
	a = uint32(av * 511)
	b = int32(clamp(v.b, -0.3, 0.3) * 50)
	c = int32(clamp(v.c, -0.3, 0.3) * 50)
	d = int32(clamp(v.d, -0.3, 0.3) * 50)
	return
}

// dequantizeABCD reverses quantizeABCD.
func dequantizeABCD(a uint32, b, c, d int32) abcd {
	return abcd{
		a: float64(a) / 511,
		b: float64(b) / 50,
		c: float64(c) / 50,
		d: float64(d) / 50,
	}
}

// Forward computes the quantized block for a 2x2 group of video-
// component pixels, laid out top-left, top-right, bottom-left,
// bottom-right.
func Forward(p1, p2, p3, p4 colorspace.VC) Quantized {
	coeffs := forwardDCT(p1.Y, p2.Y, p3.Y, p4.Y)
	a, b, c, d := quantizeABCD(coeffs)

	avgPb := (p1.Pb + p2.Pb + p3.Pb + p4.Pb) / 4
	avgPr := (p1.Pr + p2.Pr + p3.Pr + p4.Pr) / 4

	return Quantized{
		A: a, B: b, C: c, D: d,
		PbIdx: chroma.IndexOf(avgPb),
		PrIdx: chroma.IndexOf(avgPr),
	}
}

// Inverse expands a quantized block back into its four video-component
// pixels, in top-left, top-right, bottom-left, bottom-right order. All
// four receive the block's single (lossy) Pb/Pr pair.
func Inverse(q Quantized) (p1, p2, p3, p4 colorspace.VC) {
	coeffs := dequantizeABCD(q.A, q.B, q.C, q.D)
	y1, y2, y3, y4 := inverseDCT(coeffs)

	pb := chroma.ValueOf(q.PbIdx)
	pr := chroma.ValueOf(q.PrIdx)

	p1 = colorspace.VC{Y: y1, Pb: pb, Pr: pr}
	p2 = colorspace.VC{Y: y2, Pb: pb, Pr: pr}
	p3 = colorspace.VC{Y: y3, Pb: pb, Pr: pr}
	p4 = colorspace.VC{Y: y4, Pb: pb, Pr: pr}
	return
}
