package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempPPM(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "in.ppm")
	data := []byte("P6\n2 2\n255\n" + strings.Repeat("\x80\x80\x80", 4))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunRejectsNeitherFlag(t *testing.T) {
	var out bytes.Buffer
	code := run(nil, strings.NewReader(""), &out)
	if code == 0 {
		t.Errorf("expected nonzero exit with neither -c nor -d")
	}
}

func TestRunRejectsBothFlags(t *testing.T) {
	var out bytes.Buffer
	code := run([]string{"-c", "-d"}, strings.NewReader(""), &out)
	if code == 0 {
		t.Errorf("expected nonzero exit with both -c and -d")
	}
}

func TestRunRejectsTooManyArgs(t *testing.T) {
	var out bytes.Buffer
	code := run([]string{"-c", "a", "b"}, strings.NewReader(""), &out)
	if code == 0 {
		t.Errorf("expected nonzero exit with more than one positional argument")
	}
}

func TestRunCompressesFileArgument(t *testing.T) {
	dir := t.TempDir()
	path := writeTempPPM(t, dir)

	var out bytes.Buffer
	code := run([]string{"-c", path}, nil, &out)
	if code != 0 {
		t.Fatalf("run() = %d, want 0; output: %q", code, out.String())
	}
	if !strings.HasPrefix(out.String(), "COMP40 Compressed image format 2\n") {
		t.Errorf("missing compressed header, got %q", out.String()[:40])
	}
}

func TestRunCompressesStdin(t *testing.T) {
	src := "P6\n2 2\n255\n" + strings.Repeat("\x80\x80\x80", 4)
	var out bytes.Buffer
	code := run([]string{"-c"}, strings.NewReader(src), &out)
	if code != 0 {
		t.Fatalf("run() = %d, want 0; output: %q", code, out.String())
	}
	if !strings.HasPrefix(out.String(), "COMP40 Compressed image format 2\n") {
		t.Errorf("missing compressed header for stdin input")
	}
}

func TestRunRejectsMissingFile(t *testing.T) {
	var out bytes.Buffer
	code := run([]string{"-c", "/nonexistent/path.ppm"}, nil, &out)
	if code == 0 {
		t.Errorf("expected nonzero exit for missing input file")
	}
}
