/*
NAME
  pipeline.go

DESCRIPTION
  pipeline.go composes the codec stages into the two end-to-end
  operations a caller actually wants: Compress (PPM -> byte stream) and
  Decompress (byte stream -> PPM). Ported from compress40.c's
  compress40/decompress40/trim, generalized to operate over the Array2
  abstraction instead of a fixed A2Methods_T suite.

LICENSE
  Copyright (C) 2026 Saltmarsh Systems. All Rights Reserved.
*/

// Package pipeline implements the compress and decompress drivers that
// tie together color transform, block transform, codeword packing, and
// byte serialization.
package pipeline

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/saltmarsh/vcimage/array2"
	"github.com/saltmarsh/vcimage/bitstream"
	"github.com/saltmarsh/vcimage/block"
	"github.com/saltmarsh/vcimage/codeword"
	"github.com/saltmarsh/vcimage/colorspace"
	"github.com/saltmarsh/vcimage/ppm"
	"github.com/saltmarsh/vcimage/vcerr"
)

// headerMagic is the literal compressed-stream header string required
// by spec §6. Decompression accepts only this exact literal; any other
// string, including a differing trailing digit, fails with
// ErrBadHeader (spec §8 scenario 5).
const headerMagic = "COMP40 Compressed image format 2"

// decompressedMaxval is the fixed maxval used when writing a
// decompressed PPM, since the compressed stream carries no maxval (spec
// §9 Open Questions: this is an intentional, if undocumented, property
// of the original format).
const decompressedMaxval = 255

// trim copies the retained pixels of an odd-dimensioned raster into a
// new even-dimensioned raster (spec §4.2 step 2). If both dimensions
// are already even, the input raster is returned unchanged (ground:
// spec P7, trim idempotence — "no copy required is acceptable").
func trim(pixels array2.Array2[colorspace.RGB]) array2.Array2[colorspace.RGB] {
	w, h := pixels.Width(), pixels.Height()
	newW, newH := w-w%2, h-h%2
	if newW == w && newH == h {
		return pixels
	}
	out := array2.NewPlain[colorspace.RGB](newW, newH)
	for y := 0; y < newH; y++ {
		for x := 0; x < newW; x++ {
			out.Set(x, y, pixels.At(x, y))
		}
	}
	return out
}

// Compress reads a PPM image from r, trims it to even dimensions,
// converts it through the full codec pipeline, and writes the
// compressed stream to w.
func Compress(w io.Writer, r io.Reader) error {
	image, err := ppm.Read(r)
	if err != nil {
		return err
	}

	pixels := trim(image.Pixels)
	width, height := pixels.Width(), pixels.Height()

	// The block stage only ever touches one 2x2 tile at a time, so its
	// working raster uses Blocked storage at blockSize 2 (the Go analogue
	// of the original's blocked uarray2b driving 2x2 iteration) rather
	// than Plain.
	vc := array2.NewBlocked[colorspace.VC](width, height, 2)
	pixels.MapRowMajor(func(col, row int, p colorspace.RGB) {
		vc.Set(col, row, colorspace.ToVC(p, image.Maxval))
	})

	codewords := make([]uint32, (width/2)*(height/2))
	idx := 0
	for row := 0; row < height; row += 2 {
		for col := 0; col < width; col += 2 {
			q := block.Forward(
				vc.At(col, row), vc.At(col+1, row),
				vc.At(col, row+1), vc.At(col+1, row+1),
			)
			word, err := codeword.Pack(q)
			if err != nil {
				// Quantization guarantees values fit; reaching here is a
				// fatal contract violation, not a recoverable stream error.
				panic(errors.Wrap(err, "pipeline: quantized block failed to pack"))
			}
			codewords[idx] = word
			idx++
		}
	}

	if _, err := fmt.Fprintf(w, "%s\n%d %d\n", headerMagic, width, height); err != nil {
		return errors.Wrap(err, "pipeline: writing header")
	}
	return bitstream.WriteCodewords(w, codewords)
}

// Decompress reads a compressed stream from r and writes the
// reconstructed PPM (maxval 255) to w.
func Decompress(w io.Writer, r io.Reader) error {
	br := bufio.NewReader(r)

	width, height, err := readHeader(br)
	if err != nil {
		return err
	}

	blockW, blockH := width/2, height/2
	codewords, err := bitstream.ReadCodewords(br, blockW*blockH)
	if err != nil {
		return err
	}

	vc := array2.NewBlocked[colorspace.VC](width, height, 2)
	idx := 0
	for row := 0; row < height; row += 2 {
		for col := 0; col < width; col += 2 {
			q, err := codeword.Unpack(codewords[idx])
			if err != nil {
				panic(errors.Wrap(err, "pipeline: codeword failed to unpack"))
			}
			idx++
			p1, p2, p3, p4 := block.Inverse(q)
			vc.Set(col, row, p1)
			vc.Set(col+1, row, p2)
			vc.Set(col, row+1, p3)
			vc.Set(col+1, row+1, p4)
		}
	}

	pixels := array2.NewPlain[colorspace.RGB](width, height)
	vc.MapRowMajor(func(col, row int, v colorspace.VC) {
		pixels.Set(col, row, colorspace.ToRGB(v, decompressedMaxval))
	})

	return ppm.Write(w, &ppm.Image{Maxval: decompressedMaxval, Pixels: pixels})
}

// readHeader parses and validates the compressed-stream header from br,
// returning the declared width and height. br must be positioned at the
// very start of the stream; on return it is positioned at the first
// codeword byte.
func readHeader(br *bufio.Reader) (width, height int, err error) {
	magic := make([]byte, len(headerMagic))
	if _, err := io.ReadFull(br, magic); err != nil {
		return 0, 0, errors.Wrap(vcerr.ErrTruncatedStream, "reading header magic")
	}
	if string(magic) != headerMagic {
		return 0, 0, errors.Wrapf(vcerr.ErrBadHeader, "got %q", magic)
	}

	if err := expectByte(br, '\n'); err != nil {
		return 0, 0, errors.Wrap(vcerr.ErrBadHeader, "missing newline after magic")
	}

	widthTok, err := readDecimalToken(br)
	if err != nil {
		return 0, 0, errors.Wrap(vcerr.ErrBadHeader, "reading width")
	}
	if err := expectByte(br, ' '); err != nil {
		return 0, 0, errors.Wrap(vcerr.ErrBadHeader, "missing space between dimensions")
	}
	heightTok, err := readDecimalToken(br)
	if err != nil {
		return 0, 0, errors.Wrap(vcerr.ErrBadHeader, "reading height")
	}
	if err := expectByte(br, '\n'); err != nil {
		return 0, 0, errors.Wrap(vcerr.ErrBadHeader, "missing newline after dimensions")
	}

	if _, err := fmt.Sscanf(widthTok, "%d", &width); err != nil {
		return 0, 0, errors.Wrapf(vcerr.ErrBadHeader, "invalid width %q", widthTok)
	}
	if _, err := fmt.Sscanf(heightTok, "%d", &height); err != nil {
		return 0, 0, errors.Wrapf(vcerr.ErrBadHeader, "invalid height %q", heightTok)
	}

	if width <= 0 || height <= 0 || width%2 != 0 || height%2 != 0 {
		return 0, 0, errors.Wrapf(vcerr.ErrBadHeader, "invalid dimensions %dx%d", width, height)
	}

	return width, height, nil
}

// expectByte reads a single byte from br and fails unless it equals want.
func expectByte(br *bufio.Reader, want byte) error {
	b, err := br.ReadByte()
	if err != nil {
		return err
	}
	if b != want {
		return fmt.Errorf("got %q, want %q", b, want)
	}
	return nil
}

// readDecimalToken reads consecutive ASCII digits from br.
func readDecimalToken(br *bufio.Reader) (string, error) {
	var tok []byte
	for {
		b, err := br.ReadByte()
		if err != nil {
			return "", err
		}
		if b < '0' || b > '9' {
			br.UnreadByte()
			break
		}
		tok = append(tok, b)
	}
	if len(tok) == 0 {
		return "", fmt.Errorf("expected decimal digits")
	}
	return string(tok), nil
}
