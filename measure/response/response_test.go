package response

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-xover/dsp/filter/passive"
	"github.com/cwbudde/algo-xover/internal/testutil"
)

const tolerance = 0.05 // dB

func design(t *testing.T, typ passive.Type, freq float64) passive.Network {
	t.Helper()
	n, err := passive.Design(8, 8, freq, typ)
	if err != nil {
		t.Fatal(err)
	}
	return n
}

// TestFirstOrder_CrossoverPoint checks the textbook -3.01 dB point of a
// first order network, where both branches are exact RC/RL dividers.
func TestFirstOrder_CrossoverPoint(t *testing.T) {
	n := design(t, passive.TypeButterworth1, 3000)
	freqs := []float64{3000}

	for name, b := range map[string]passive.Branch{"hp": n.HighPass, "lp": n.LowPass} {
		r, err := Evaluate(b, freqs)
		if err != nil {
			t.Fatal(err)
		}
		got := r.MagnitudeDB()[0]
		if math.Abs(got-(-3.0103)) > tolerance {
			t.Errorf("%s at fc: %.3f dB, want -3.01 dB", name, got)
		}
	}

	hp, _ := Evaluate(n.HighPass, freqs)
	lp, _ := Evaluate(n.LowPass, freqs)
	if d := hp.PhaseDeg()[0] - lp.PhaseDeg()[0]; math.Abs(d-90) > 1e-6 {
		t.Errorf("phase difference at fc = %.4f°, want 90°", d)
	}
}

func TestLinkwitzRiley2_CrossoverPoint(t *testing.T) {
	n := design(t, passive.TypeLinkwitzRiley2, 2500)
	for name, b := range map[string]passive.Branch{"hp": n.HighPass, "lp": n.LowPass} {
		r, err := Evaluate(b, []float64{2500})
		if err != nil {
			t.Fatal(err)
		}
		if got := r.MagnitudeDB()[0]; math.Abs(got-(-6.0206)) > tolerance {
			t.Errorf("%s at fc: %.3f dB, want -6.02 dB", name, got)
		}
	}
}

func TestFirstOrder_FlatSum(t *testing.T) {
	n := design(t, passive.TypeButterworth1, 2000)
	hp, err := Analyze(n.HighPass)
	if err != nil {
		t.Fatal(err)
	}
	lp, err := Analyze(n.LowPass)
	if err != nil {
		t.Fatal(err)
	}
	sum, err := Sum(hp, lp)
	if err != nil {
		t.Fatal(err)
	}

	db := sum.MagnitudeDB()
	testutil.RequireFinite(t, db)
	for i, v := range db {
		if math.Abs(v) > tolerance {
			t.Fatalf("sum at %.1f Hz: %.3f dB, want 0", sum.Freqs[i], v)
		}
	}
}

// TestAsymptotes checks pass-band and stop-band behavior two decades away
// from the crossover for every topology.
func TestAsymptotes(t *testing.T) {
	const fc = 1000.0
	freqs := []float64{fc / 100, fc * 100}

	for _, typ := range passive.Types() {
		n := design(t, typ, fc)

		hp, err := Evaluate(n.HighPass, freqs)
		if err != nil {
			t.Fatal(err)
		}
		lp, err := Evaluate(n.LowPass, freqs)
		if err != nil {
			t.Fatal(err)
		}

		hpDB, lpDB := hp.MagnitudeDB(), lp.MagnitudeDB()
		if hpDB[0] > -20 || math.Abs(hpDB[1]) > 0.5 {
			t.Errorf("%v high-pass: %.2f dB at 10 Hz, %.2f dB at 100 kHz", typ, hpDB[0], hpDB[1])
		}
		if lpDB[1] > -20 || math.Abs(lpDB[0]) > 0.5 {
			t.Errorf("%v low-pass: %.2f dB at 10 Hz, %.2f dB at 100 kHz", typ, lpDB[0], lpDB[1])
		}
	}
}

func TestSweep(t *testing.T) {
	f, err := Sweep(20, 20000, 31)
	if err != nil {
		t.Fatal(err)
	}
	if len(f) != 31 || f[0] != 20 || f[30] != 20000 {
		t.Fatalf("unexpected sweep %v", f)
	}
	for i := 1; i < len(f); i++ {
		if f[i] <= f[i-1] {
			t.Fatalf("sweep not ascending at %d", i)
		}
	}

	if _, err := Sweep(20, 20000, 1); !errors.Is(err, ErrInvalidPoints) {
		t.Errorf("err = %v, want ErrInvalidPoints", err)
	}
	if _, err := Sweep(2000, 20, 10); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("err = %v, want ErrInvalidRange", err)
	}
}

func TestAnalyze_Options(t *testing.T) {
	n := design(t, passive.TypeLinkwitzRiley2, 2500)
	r, err := Analyze(n.HighPass, WithRange(100, 10000), WithPoints(5))
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Freqs) != 5 || r.Freqs[0] != 100 || r.Freqs[4] != 10000 {
		t.Fatalf("grid = %v", r.Freqs)
	}
	if f, _ := r.At(1100); math.Abs(f-1000) > 1e-6 {
		t.Errorf("At(1100) picked %v Hz, want 1000", f)
	}

	if _, err := Analyze(n.HighPass, WithRange(0, 100)); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("err = %v, want ErrInvalidRange", err)
	}
}

func TestEvaluate_Errors(t *testing.T) {
	if _, err := Evaluate(passive.Branch{Load: 8}, []float64{1000}); !errors.Is(err, ErrEmptyBranch) {
		t.Errorf("err = %v, want ErrEmptyBranch", err)
	}

	n := design(t, passive.TypeButterworth2, 2000)
	b := n.HighPass
	b.Load = 0
	if _, err := Evaluate(b, []float64{1000}); !errors.Is(err, ErrInvalidLoad) {
		t.Errorf("err = %v, want ErrInvalidLoad", err)
	}
	if _, err := Evaluate(n.HighPass, []float64{1000, 0}); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("err = %v, want ErrInvalidRange", err)
	}
}

func TestSum_GridMismatch(t *testing.T) {
	n := design(t, passive.TypeButterworth2, 2000)
	a, _ := Evaluate(n.HighPass, []float64{100, 1000})
	b, _ := Evaluate(n.LowPass, []float64{100, 2000})
	c, _ := Evaluate(n.LowPass, []float64{100})

	if _, err := Sum(a, b); !errors.Is(err, ErrGridMismatch) {
		t.Errorf("err = %v, want ErrGridMismatch", err)
	}
	if _, err := Sum(a, c); !errors.Is(err, ErrGridMismatch) {
		t.Errorf("err = %v, want ErrGridMismatch", err)
	}
}

func TestMagnitude(t *testing.T) {
	n := design(t, passive.TypeButterworth3, 1800)
	r, err := Analyze(n.LowPass, WithPoints(17))
	if err != nil {
		t.Fatal(err)
	}

	want := make([]float64, len(r.H))
	for i, h := range r.H {
		want[i] = cmplx.Abs(h)
	}
	testutil.RequireSliceNearlyEqual(t, r.Magnitude(), want, 1e-12)

	if (Response{}).Magnitude() != nil {
		t.Error("empty response should have nil magnitude")
	}
}
