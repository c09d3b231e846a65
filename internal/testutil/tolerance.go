package testutil

import (
	"math"
	"strconv"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireFixed2 fails t unless s is a plain decimal with exactly two
// fractional digits, e.g. "6.63".
func RequireFixed2(t *testing.T, s string) {
	t.Helper()
	dot := -1
	for i, r := range s {
		switch {
		case r == '.' && dot < 0 && i > 0:
			dot = i
		case r >= '0' && r <= '9':
		default:
			t.Fatalf("%q is not a fixed-point decimal", s)
		}
	}
	if dot < 0 || len(s)-dot-1 != 2 {
		t.Fatalf("%q does not have exactly two fractional digits", s)
	}
}

// ParseValue parses a formatted component value.
func ParseValue(t *testing.T, s string) float64 {
	t.Helper()
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return v
}

// RequireValueNear fails t if the formatted value s differs from want by
// more than eps.
func RequireValueNear(t *testing.T, s string, want, eps float64) {
	t.Helper()
	got := ParseValue(t, s)
	if diff := math.Abs(got - want); diff > eps {
		t.Fatalf("value %s: want %v (diff %v > eps %v)", s, want, diff, eps)
	}
}
