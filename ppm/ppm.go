/*
NAME
  ppm.go

DESCRIPTION
  ppm.go implements the PPM (Portable Pixmap) reader/writer collaborator
  described in spec §6: it reads the binary "P6" PPM variant into a
  width/height/maxval/raster tuple and writes the same tuple back out,
  saturating output channels to [0, maxval]. The original project's
  Pnm_ppmread/Pnm_ppmwrite (pnm.h) are an external library there; here
  they are implemented directly in the style of the teacher's own
  hand-rolled lexers (codec/codecutil/bytescanner.go's token-scanning
  approach to a textual-then-binary header).

LICENSE
  Copyright (C) 2026 Saltmarsh Systems. All Rights Reserved.
*/

// Package ppm reads and writes binary (P6) Portable Pixmap images.
package ppm

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/saltmarsh/vcimage/array2"
	"github.com/saltmarsh/vcimage/colorspace"
	"github.com/saltmarsh/vcimage/vcerr"
)

// Image is a decoded PPM: its declared maxval (denominator) and its
// pixel raster.
type Image struct {
	Maxval int
	Pixels array2.Array2[colorspace.RGB]
}

func (im *Image) Width() int  { return im.Pixels.Width() }
func (im *Image) Height() int { return im.Pixels.Height() }

// readToken reads whitespace-delimited ASCII tokens from a P6 header,
// skipping "#"-prefixed comment lines, matching the libnetpbm behavior
// the original pnm.h collaborator wraps.
func readToken(r *bufio.Reader) (string, error) {
	var tok []byte
	skipSpace := true
	for {
		b, err := r.ReadByte()
		if err != nil {
			if len(tok) > 0 {
				return string(tok), nil
			}
			return "", err
		}
		if b == '#' {
			for {
				c, err := r.ReadByte()
				if err != nil || c == '\n' {
					break
				}
			}
			continue
		}
		isSpace := b == ' ' || b == '\t' || b == '\n' || b == '\r'
		if skipSpace {
			if isSpace {
				continue
			}
			skipSpace = false
		}
		if isSpace {
			r.UnreadByte()
			return string(tok), nil
		}
		tok = append(tok, b)
	}
}

// Read parses a binary PPM (P6) image from r.
func Read(r io.Reader) (*Image, error) {
	br := bufio.NewReader(r)

	magic, err := readToken(br)
	if err != nil {
		return nil, errors.Wrap(vcerr.ErrInvalidPPM, "reading magic number")
	}
	if magic != "P6" {
		return nil, errors.Wrapf(vcerr.ErrInvalidPPM, "unsupported magic %q, want P6", magic)
	}

	var width, height, maxval int
	for _, dst := range []*int{&width, &height, &maxval} {
		tok, err := readToken(br)
		if err != nil {
			return nil, errors.Wrap(vcerr.ErrInvalidPPM, "reading header field")
		}
		if _, err := fmt.Sscanf(tok, "%d", dst); err != nil {
			return nil, errors.Wrapf(vcerr.ErrInvalidPPM, "invalid header field %q", tok)
		}
	}

	if width < 2 || height < 2 {
		return nil, errors.Wrapf(vcerr.ErrInvalidPPM, "image too small: %dx%d (need >= 2x2)", width, height)
	}
	if maxval <= 0 || maxval > 65535 {
		return nil, errors.Wrapf(vcerr.ErrInvalidPPM, "invalid maxval %d", maxval)
	}

	// Exactly one whitespace byte separates the header from the binary
	// raster; it was already consumed by the final readToken call's
	// trailing UnreadByte/skip logic only if a token followed, so consume
	// the single separator explicitly here.
	if _, err := br.ReadByte(); err != nil {
		return nil, errors.Wrap(vcerr.ErrInvalidPPM, "reading header/raster separator")
	}

	pixels := array2.NewPlain[colorspace.RGB](width, height)
	bytesPerSample := 1
	if maxval > 255 {
		bytesPerSample = 2
	}
	row := make([]byte, width*3*bytesPerSample)
	for y := 0; y < height; y++ {
		if _, err := io.ReadFull(br, row); err != nil {
			return nil, errors.Wrapf(vcerr.ErrInvalidPPM, "truncated raster at row %d: %v", y, err)
		}
		for x := 0; x < width; x++ {
			var r, g, b int
			if bytesPerSample == 1 {
				off := x * 3
				r, g, b = int(row[off]), int(row[off+1]), int(row[off+2])
			} else {
				off := x * 6
				r = int(row[off])<<8 | int(row[off+1])
				g = int(row[off+2])<<8 | int(row[off+3])
				b = int(row[off+4])<<8 | int(row[off+5])
			}
			pixels.Set(x, y, colorspace.RGB{Red: r, Green: g, Blue: b})
		}
	}

	return &Image{Maxval: maxval, Pixels: pixels}, nil
}

// saturate clamps n to [0, maxval], the PPM writer's contract per §4.3:
// "output channels are not clamped by this stage; they may temporarily
// fall outside [0, D] and are clamped (saturated) by the PPM writer
// collaborator."
func saturate(n, maxval int) int {
	if n < 0 {
		return 0
	}
	if n > maxval {
		return maxval
	}
	return n
}

// Write encodes im as a binary PPM (P6), saturating each channel to
// [0, im.Maxval].
func Write(w io.Writer, im *Image) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n%d\n", im.Width(), im.Height(), im.Maxval); err != nil {
		return errors.Wrap(err, "ppm: writing header")
	}

	width, height := im.Width(), im.Height()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := im.Pixels.At(x, y)
			if im.Maxval > 255 {
				hi := func(v int) (byte, byte) { return byte(v >> 8), byte(v) }
				rh, rl := hi(saturate(p.Red, im.Maxval))
				gh, gl := hi(saturate(p.Green, im.Maxval))
				bh, bl := hi(saturate(p.Blue, im.Maxval))
				if _, err := bw.Write([]byte{rh, rl, gh, gl, bh, bl}); err != nil {
					return errors.Wrap(err, "ppm: writing raster")
				}
			} else {
				buf := []byte{
					byte(saturate(p.Red, im.Maxval)),
					byte(saturate(p.Green, im.Maxval)),
					byte(saturate(p.Blue, im.Maxval)),
				}
				if _, err := bw.Write(buf); err != nil {
					return errors.Wrap(err, "ppm: writing raster")
				}
			}
		}
	}

	return bw.Flush()
}
