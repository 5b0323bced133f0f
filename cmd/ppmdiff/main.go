/*
NAME
  main.go

DESCRIPTION
  ppmdiff prints the root-mean-square pixel difference between two PPM
  images, ported from ppmdiff.c's CLI. At most one of the two filename
  arguments may be "-" to read that image from stdin.

LICENSE
  Copyright (C) 2026 Saltmarsh Systems. All Rights Reserved.
*/

// Command ppmdiff reports the RMS difference between two PPM images.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/saltmarsh/vcimage/diff"
	"github.com/saltmarsh/vcimage/ppm"
	"github.com/saltmarsh/vcimage/vcerr"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("ppmdiff", flag.ContinueOnError)
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 2 {
		fmt.Fprintln(stderr, "usage: ppmdiff A B (either may be \"-\" for stdin)")
		return 1
	}
	nameA, nameB := fs.Arg(0), fs.Arg(1)
	if nameA == "-" && nameB == "-" {
		fmt.Fprintln(stderr, "only one of A or B may be \"-\"")
		return 1
	}

	rasterA, err := loadRaster(nameA, stdin)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	rasterB, err := loadRaster(nameB, stdin)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	e, err := diff.RMS(rasterA, rasterB)
	if err != nil {
		if errors.Is(err, vcerr.ErrSizeMismatch) {
			fmt.Fprintln(stdout, "1.0")
			fmt.Fprintln(stderr, err)
			return 1
		}
		fmt.Fprintln(stderr, err)
		return 1
	}

	fmt.Fprintf(stdout, "%.4f\n", e)
	return 0
}

func loadRaster(name string, stdin io.Reader) (diff.Raster, error) {
	var r io.Reader
	if name == "-" {
		r = stdin
	} else {
		f, err := os.Open(name)
		if err != nil {
			return diff.Raster{}, err
		}
		defer f.Close()
		r = f
	}

	image, err := ppm.Read(r)
	if err != nil {
		return diff.Raster{}, err
	}
	return diff.Raster{Maxval: image.Maxval, Pixels: image.Pixels}, nil
}
