// Package core provides the unit conversions and numeric helpers shared by
// the crossover design and measurement packages.
package core

import "math"

const defaultEpsilon = 1e-12

// Scale factors between SI units and the display units used for passive
// components.
const (
	FaradsToMicrofarads   = 1e6
	HenriesToMillihenries = 1e3
)

// AngularFrequency returns ω = 2πf for a frequency in Hz.
func AngularFrequency(freq float64) float64 {
	return 2 * math.Pi * freq
}

// IsFinitePositive reports whether x is a finite number strictly greater
// than zero.
func IsFinitePositive(x float64) bool {
	return x > 0 && !math.IsInf(x, 0) && !math.IsNaN(x)
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// DBToLinear converts dB to linear amplitude (20*log10 convention).
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}

// LogSpace returns n frequencies spaced logarithmically from start to stop,
// both inclusive. It returns nil if n < 2 or the range is not positive and
// ascending.
func LogSpace(start, stop float64, n int) []float64 {
	if n < 2 || !IsFinitePositive(start) || !IsFinitePositive(stop) || start >= stop {
		return nil
	}

	out := make([]float64, n)
	ratio := math.Log(stop / start)
	for i := range out {
		out[i] = start * math.Exp(ratio*float64(i)/float64(n-1))
	}
	// Pin the end points against rounding.
	out[0] = start
	out[n-1] = stop

	return out
}
