/*
NAME
  main.go

DESCRIPTION
  image is the compress/decompress CLI for the vcimage codec: "-c"
  reads a PPM and writes a compressed stream; "-d" reads a compressed
  stream and writes a PPM. Argument handling and logger construction
  follow cmd/rv/main.go's flag + lumberjack pattern.

LICENSE
  Copyright (C) 2026 Saltmarsh Systems. All Rights Reserved.
*/

// Command image compresses and decompresses PPM images using the
// vcimage codec.
package main

import (
	"flag"
	"io"
	"os"

	"github.com/saltmarsh/vcimage/internal/vclog"
	"github.com/saltmarsh/vcimage/pipeline"
	"github.com/saltmarsh/vcimage/vcerr"
)

// Logging configuration.
const (
	logMaxSize   = 10 // MB
	logMaxBackup = 5
	logMaxAge    = 28 // days
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

func run(args []string, stdin io.Reader, stdout io.Writer) (code int) {
	fs := flag.NewFlagSet("image", flag.ContinueOnError)
	compress := fs.Bool("c", false, "compress a PPM image to the vcimage format")
	decompress := fs.Bool("d", false, "decompress a vcimage stream to PPM")
	logFile := fs.String("log", "", "optional path to a rotated log file")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	log := vclog.New(vclog.Config{
		LogFile:    *logFile,
		MaxSizeMB:  logMaxSize,
		MaxBackups: logMaxBackup,
		MaxAgeDays: logMaxAge,
	})
	defer log.Sync()

	// pipeline panics on a fatal contract violation (quantized data that
	// cannot fit its wire field); recover it here into a diagnostic and a
	// nonzero exit rather than letting it escape as a bare stack trace.
	defer func() {
		if r := recover(); r != nil {
			log.Error("fatal codec error", "panic", r)
			code = 1
		}
	}()

	if *compress == *decompress {
		log.Error("exactly one of -c or -d is required", "compress", *compress, "decompress", *decompress)
		return exitFor(vcerr.ErrBadArguments)
	}
	if fs.NArg() > 1 {
		log.Error("too many arguments", "args", fs.Args())
		return exitFor(vcerr.ErrBadArguments)
	}

	in := stdin
	if fs.NArg() == 1 && fs.Arg(0) != "-" {
		f, err := os.Open(fs.Arg(0))
		if err != nil {
			log.Error("opening input file", "file", fs.Arg(0), "err", err)
			return exitFor(vcerr.ErrIO)
		}
		defer f.Close()
		in = f
	}

	var op func(io.Writer, io.Reader) error
	if *compress {
		op = pipeline.Compress
	} else {
		op = pipeline.Decompress
	}

	if err := op(stdout, in); err != nil {
		log.Error("processing image", "err", err)
		return exitFor(err)
	}
	return 0
}

// exitFor maps any non-nil error to the process's nonzero exit code.
func exitFor(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
