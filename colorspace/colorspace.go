/*
NAME
  colorspace.go

DESCRIPTION
  colorspace.go implements per-pixel conversion between RGB and the
  Y/Pb/Pr video-component color space, ported from the coefficients in
  the original floating.c (toVideoComponent/toRGB), normalized by a
  caller-supplied denominator (the PPM maxval).

LICENSE
  Copyright (C) 2026 Saltmarsh Systems. All Rights Reserved.
*/

// Package colorspace converts pixels between RGB and Y/Pb/Pr (luma and
// blue/red chroma difference) representations.
package colorspace

// RGB is an integer pixel with channels in [0, maxval].
type RGB struct {
	Red, Green, Blue int
}

// VC is a video-component pixel: luma Y in [0,1] and chroma Pb, Pr in
// [-0.5, 0.5]. Values may momentarily fall outside these ranges due to
// float rounding; callers that need strict ranges (package block) clamp
// explicitly.
type VC struct {
	Y, Pb, Pr float64
}

// toFloat normalizes an integer channel value by denom.
func toFloat(n, denom int) float64 {
	return float64(n) / float64(denom)
}

// unFloat denormalizes a video-component value by denom, truncating
// toward zero exactly as the original C implementation's float-to-int
// cast does.
func unFloat(f float64, denom int) int {
	return int(f * float64(denom))
}

// ToVC converts an RGB pixel to video-component space, normalizing each
// channel by denom (the image's maxval).
func ToVC(p RGB, denom int) VC {
	r := toFloat(p.Red, denom)
	g := toFloat(p.Green, denom)
	b := toFloat(p.Blue, denom)
	return VC{
		Y:  0.299*r + 0.587*g + 0.114*b,
		Pb: -0.168736*r - 0.331264*g + 0.5*b,
		Pr: 0.5*r - 0.418688*g - 0.081312*b,
	}
}

// ToRGB converts a video-component pixel back to RGB, scaling by denom.
// Output channels are not clamped here; the PPM writer collaborator
// saturates them to [0, denom] on output.
func ToRGB(v VC, denom int) RGB {
	return RGB{
		Red:   unFloat(v.Y+0.0*v.Pb+1.402*v.Pr, denom),
		Green: unFloat(v.Y-0.344136*v.Pb-0.714136*v.Pr, denom),
		Blue:  unFloat(v.Y+1.772*v.Pb+0.0*v.Pr, denom),
	}
}
