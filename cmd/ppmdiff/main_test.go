package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writePPMFile(t *testing.T, dir, name string, r, g, b byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	data := append([]byte("P6\n2 2\n255\n"), bytes.Repeat([]byte{r, g, b}, 4)...)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunIdenticalImagesReportsZero(t *testing.T) {
	dir := t.TempDir()
	a := writePPMFile(t, dir, "a.ppm", 10, 20, 30)
	b := writePPMFile(t, dir, "b.ppm", 10, 20, 30)

	var out, errOut bytes.Buffer
	code := run([]string{a, b}, nil, &out, &errOut)
	if code != 0 {
		t.Fatalf("run() = %d, want 0; stderr: %q", code, errOut.String())
	}
	if strings.TrimSpace(out.String()) != "0.0000" {
		t.Errorf("output = %q, want 0.0000", out.String())
	}
}

func TestRunRejectsBothStdin(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"-", "-"}, strings.NewReader(""), &out, &errOut)
	if code == 0 {
		t.Errorf("expected nonzero exit when both arguments are stdin")
	}
}

func TestRunRejectsWrongArgCount(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"onlyone.ppm"}, nil, &out, &errOut)
	if code == 0 {
		t.Errorf("expected nonzero exit with one argument")
	}
}

func TestRunReportsOneOnSizeMismatch(t *testing.T) {
	dir := t.TempDir()
	aPath := filepath.Join(dir, "a.ppm")
	bPath := filepath.Join(dir, "b.ppm")

	aData := append([]byte("P6\n100 100\n255\n"), bytes.Repeat([]byte{0, 0, 0}, 100*100)...)
	bData := append([]byte("P6\n102 100\n255\n"), bytes.Repeat([]byte{0, 0, 0}, 102*100)...)
	if err := os.WriteFile(aPath, aData, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bPath, bData, 0o644); err != nil {
		t.Fatal(err)
	}

	var out, errOut bytes.Buffer
	code := run([]string{aPath, bPath}, nil, &out, &errOut)
	if code == 0 {
		t.Errorf("expected nonzero exit on size mismatch")
	}
	if strings.TrimSpace(out.String()) != "1.0" {
		t.Errorf("stdout = %q, want 1.0", out.String())
	}
}

func TestRunOneSideFromStdin(t *testing.T) {
	dir := t.TempDir()
	a := writePPMFile(t, dir, "a.ppm", 5, 5, 5)
	stdinData := "P6\n2 2\n255\n" + strings.Repeat("\x05\x05\x05", 4)

	var out, errOut bytes.Buffer
	code := run([]string{a, "-"}, strings.NewReader(stdinData), &out, &errOut)
	if code != 0 {
		t.Fatalf("run() = %d, want 0; stderr: %q", code, errOut.String())
	}
	if strings.TrimSpace(out.String()) != "0.0000" {
		t.Errorf("output = %q, want 0.0000", out.String())
	}
}
