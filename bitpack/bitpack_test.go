package bitpack

import (
	"errors"
	"testing"

	"github.com/saltmarsh/vcimage/vcerr"
)

func TestRoundTripUnsigned(t *testing.T) {
	cases := []struct {
		width, lsb uint
		value      uint64
	}{
		{9, 23, 511},
		{9, 23, 0},
		{4, 0, 15},
		{4, 4, 0},
		{64, 0, 0xFFFFFFFFFFFFFFFF},
		{1, 63, 1},
	}
	for _, c := range cases {
		word, err := NewU(0, c.width, c.lsb, c.value)
		if err != nil {
			t.Fatalf("NewU(%d,%d,%d): %v", c.width, c.lsb, c.value, err)
		}
		got, err := GetU(word, c.width, c.lsb)
		if err != nil {
			t.Fatalf("GetU: %v", err)
		}
		if got != c.value {
			t.Errorf("round trip width=%d lsb=%d: got %d want %d", c.width, c.lsb, got, c.value)
		}
	}
}

func TestRoundTripSigned(t *testing.T) {
	cases := []struct {
		width, lsb uint
		value      int64
	}{
		{5, 18, -15},
		{5, 18, 15},
		{5, 8, -1},
		{5, 13, 0},
		{64, 0, -1},
	}
	for _, c := range cases {
		word, err := NewS(0, c.width, c.lsb, c.value)
		if err != nil {
			t.Fatalf("NewS(%d,%d,%d): %v", c.width, c.lsb, c.value, err)
		}
		got, err := GetS(word, c.width, c.lsb)
		if err != nil {
			t.Fatalf("GetS: %v", err)
		}
		if got != c.value {
			t.Errorf("round trip width=%d lsb=%d: got %d want %d", c.width, c.lsb, got, c.value)
		}
	}
}

func TestNonInterference(t *testing.T) {
	// Two disjoint fields: a 9-bit unsigned at lsb 23, a 5-bit signed at lsb 18.
	word, err := NewU(0, 9, 23, 511)
	if err != nil {
		t.Fatal(err)
	}
	word, err = NewS(word, 5, 18, -1)
	if err != nil {
		t.Fatal(err)
	}
	a, err := GetU(word, 9, 23)
	if err != nil {
		t.Fatal(err)
	}
	if a != 511 {
		t.Errorf("field a clobbered: got %d want 511", a)
	}
}

func TestOverflow(t *testing.T) {
	if _, err := NewU(0, 4, 0, 16); !errors.Is(err, vcerr.ErrOverflow) {
		t.Errorf("expected ErrOverflow, got %v", err)
	}
	if _, err := NewS(0, 5, 0, 16); !errors.Is(err, vcerr.ErrOverflow) {
		t.Errorf("expected ErrOverflow, got %v", err)
	}
	if _, err := NewS(0, 5, 0, -17); !errors.Is(err, vcerr.ErrOverflow) {
		t.Errorf("expected ErrOverflow, got %v", err)
	}
}

func TestFieldOutOfRange(t *testing.T) {
	if _, err := GetU(0, 65, 0); !errors.Is(err, vcerr.ErrFieldOutOfRange) {
		t.Errorf("expected ErrFieldOutOfRange, got %v", err)
	}
	if _, err := GetS(0, 32, 40); !errors.Is(err, vcerr.ErrFieldOutOfRange) {
		t.Errorf("expected ErrFieldOutOfRange, got %v", err)
	}
	if _, err := NewU(0, 32, 40, 0); !errors.Is(err, vcerr.ErrFieldOutOfRange) {
		t.Errorf("expected ErrFieldOutOfRange, got %v", err)
	}
}

// Concrete scenario from spec §8.4.
func TestBitpackEdgeScenario(t *testing.T) {
	word, err := NewU(0, 5, 8, 15)
	if err != nil {
		t.Fatal(err)
	}
	if word != 0x0F00 {
		t.Errorf("NewU(0,5,8,15) = %#x, want 0xF00", word)
	}

	word, err = NewS(0, 5, 8, -1)
	if err != nil {
		t.Fatal(err)
	}
	if word != 0x1F00 {
		t.Errorf("NewS(0,5,8,-1) = %#x, want 0x1F00", word)
	}

	s, err := GetS(0x1F00, 5, 8)
	if err != nil {
		t.Fatal(err)
	}
	if s != -1 {
		t.Errorf("GetS(0x1F00,5,8) = %d, want -1", s)
	}

	u, err := GetU(0x1F00, 5, 8)
	if err != nil {
		t.Fatal(err)
	}
	if u != 31 {
		t.Errorf("GetU(0x1F00,5,8) = %d, want 31", u)
	}
}

func TestFitsHelpers(t *testing.T) {
	if !FitsU(15, 4) || FitsU(16, 4) {
		t.Errorf("FitsU width=4 boundary wrong")
	}
	if !FitsS(-16, 5) || FitsS(16, 5) || !FitsS(15, 5) {
		t.Errorf("FitsS width=5 boundary wrong")
	}
	if !FitsU(1<<63, 64) {
		t.Errorf("FitsU width=64 must always be true")
	}
}
