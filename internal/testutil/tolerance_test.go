package testutil

import "testing"

func TestParseValue(t *testing.T) {
	if got := ParseValue(t, "6.63"); got != 6.63 {
		t.Fatalf("ParseValue = %v, want 6.63", got)
	}
}

func TestRequireValueNear(t *testing.T) {
	RequireValueNear(t, "0.42", 0.4244, 0.005)
	RequireValueNear(t, "10.00", 10, 0)
}

func TestRequireFixed2(t *testing.T) {
	for _, s := range []string{"0.00", "6.63", "1234.50"} {
		RequireFixed2(t, s)
	}
}

func TestRequireSliceNearlyEqual(t *testing.T) {
	RequireSliceNearlyEqual(t, []float64{1, 2.0001}, []float64{1, 2}, 1e-3)
}

func TestRequireFinite(t *testing.T) {
	RequireFinite(t, []float64{0, -1, 1e300})
}
