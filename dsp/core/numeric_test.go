package core

import (
	"math"
	"testing"
)

func TestAngularFrequency(t *testing.T) {
	if got := AngularFrequency(1); !NearlyEqual(got, 2*math.Pi, 1e-15) {
		t.Fatalf("AngularFrequency(1) = %v, want 2π", got)
	}
	if got := AngularFrequency(0); got != 0 {
		t.Fatalf("AngularFrequency(0) = %v, want 0", got)
	}
}

func TestIsFinitePositive(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want bool
	}{
		{name: "positive", x: 8, want: true},
		{name: "tiny", x: 1e-300, want: true},
		{name: "zero", x: 0, want: false},
		{name: "negative", x: -4, want: false},
		{name: "inf", x: math.Inf(1), want: false},
		{name: "nan", x: math.NaN(), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFinitePositive(tt.x); got != tt.want {
				t.Fatalf("IsFinitePositive(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values to be nearly equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-3) {
		t.Fatal("expected values to differ")
	}
}

func TestDBConversions(t *testing.T) {
	linear := DBToLinear(-6)
	db := LinearToDB(linear)
	if !NearlyEqual(db, -6, 1e-10) {
		t.Fatalf("LinearToDB(DBToLinear(-6)) = %v, want -6", db)
	}
	if !math.IsInf(LinearToDB(0), -1) {
		t.Fatal("expected -Inf for zero")
	}
	if !math.IsNaN(LinearToDB(-1)) {
		t.Fatal("expected NaN for negative amplitude")
	}
}

func TestLogSpace(t *testing.T) {
	f := LogSpace(10, 10000, 4)
	want := []float64{10, 100, 1000, 10000}
	if len(f) != len(want) {
		t.Fatalf("len = %d, want %d", len(f), len(want))
	}
	for i := range want {
		if !NearlyEqual(f[i], want[i], 1e-9) {
			t.Fatalf("index %d: got %v, want %v", i, f[i], want[i])
		}
	}

	for _, bad := range [][3]float64{{10, 10, 4}, {100, 10, 4}, {0, 10, 4}, {10, 100, 1}} {
		if got := LogSpace(bad[0], bad[1], int(bad[2])); got != nil {
			t.Fatalf("LogSpace(%v, %v, %v) = %v, want nil", bad[0], bad[1], bad[2], got)
		}
	}
}
