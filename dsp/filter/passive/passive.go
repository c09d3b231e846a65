package passive

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-xover/dsp/core"
)

// Fitted 4th order Linkwitz-Riley constants. Capacitor constants are in
// µF·Hz·Ω (C = k/(f·R)), inductor constants in mH·Hz/Ω (L = k·R/f).
const (
	lr4HPC1 = 84400.0
	lr4HPC2 = 168800.0
	lr4HPL3 = 100.0
	lr4HPL4 = 200.0
	lr4LPL1 = 318.0
	lr4LPL2 = 159.0
	lr4LPC3 = 212000.0
	lr4LPC4 = 106000.0
)

// secondOrderCoeffs scales a second order section: C = 1/(c·ω·R) and
// L = l·R/ω.
type secondOrderCoeffs struct {
	c, l float64
}

var secondOrder = map[Type]secondOrderCoeffs{
	TypeButterworth2:   {c: math.Sqrt2, l: 1 / math.Sqrt2},
	TypeLinkwitzRiley2: {c: 2, l: 1 / 0.5},
	TypeBessel2:        {c: math.Sqrt(3), l: math.Sqrt(3)},
}

// Calculate returns the formatted component lists of a two-way crossover
// of type t at freq Hz, with rh the tweeter (high-pass) load and rl the
// woofer (low-pass) load in ohms.
func Calculate(rh, rl, freq float64, t Type) (Result, error) {
	n, err := Design(rh, rl, freq, t)
	if err != nil {
		return Result{}, err
	}

	return n.Result(), nil
}

// Design computes a two-way crossover network with exact element values.
//
// Returns ErrUnknownType for a type outside the catalog and ErrDegenerate
// if any parameter is not finite and positive or a value would overflow.
func Design(rh, rl, freq float64, t Type) (Network, error) {
	if !t.Valid() {
		return Network{}, fmt.Errorf("%w: %d", ErrUnknownType, int(t))
	}
	if err := requirePositive("rh", rh); err != nil {
		return Network{}, err
	}
	if err := requirePositive("rl", rl); err != nil {
		return Network{}, err
	}
	if err := requirePositive("freq", freq); err != nil {
		return Network{}, err
	}

	w := core.AngularFrequency(freq)
	n := Network{
		Type:     t,
		Freq:     freq,
		HighPass: Branch{Load: rh},
		LowPass:  Branch{Load: rl},
	}

	switch t {
	case TypeButterworth1:
		n.HighPass.Elements = []Element{
			capacitor("C1", 1/(w*rh), 0),
		}
		n.LowPass.Elements = []Element{
			inductor("L1", rl/w, 0),
		}

	case TypeButterworth2, TypeLinkwitzRiley2, TypeBessel2:
		k := secondOrder[t]
		n.HighPass.Elements = []Element{
			capacitor("C1", 1/(k.c*w*rh), 0),
			inductor("L1", k.l*rh/w, 1),
		}
		n.LowPass.Elements = []Element{
			capacitor("C2", 1/(k.c*w*rl), 1),
			inductor("L2", k.l*rl/w, 0),
		}

	case TypeButterworth3:
		n.HighPass.Elements = []Element{
			capacitor("C1", 1/(1.5*w*rh), 0),
			inductor("L2", rh/(1.333*w), 1),
			capacitor("C3", 1/(0.5*w*rh), 2),
		}
		n.LowPass.Elements = []Element{
			inductor("L1", 1.5*rl/w, 0),
			capacitor("C2", 1/(1.333*w*rl), 1),
			inductor("L3", 0.5*rl/w, 2),
		}

	case TypeLinkwitzRiley4:
		n.HighPass.Elements = []Element{
			{Name: "C1", Kind: Capacitor, Value: lr4HPC1 / (freq * rh), Position: 0},
			{Name: "C2", Kind: Capacitor, Value: lr4HPC2 / (freq * rh), Position: 2},
			{Name: "L3", Kind: Inductor, Value: lr4HPL3 * rh / freq, Position: 1},
			{Name: "L4", Kind: Inductor, Value: lr4HPL4 * rh / freq, Position: 3},
		}
		n.LowPass.Elements = []Element{
			{Name: "L1", Kind: Inductor, Value: lr4LPL1 * rl / freq, Position: 0},
			{Name: "L2", Kind: Inductor, Value: lr4LPL2 * rl / freq, Position: 2},
			{Name: "C3", Kind: Capacitor, Value: lr4LPC3 / (freq * rl), Position: 1},
			{Name: "C4", Kind: Capacitor, Value: lr4LPC4 / (freq * rl), Position: 3},
		}
	}

	for _, b := range []Branch{n.HighPass, n.LowPass} {
		for _, e := range b.Elements {
			if !core.IsFinitePositive(e.Value) {
				return Network{}, fmt.Errorf("%w: %s evaluates to %v %s", ErrDegenerate, e.Name, e.Value, e.Kind.Unit())
			}
		}
	}

	return n, nil
}

func capacitor(name string, farads float64, pos int) Element {
	return Element{Name: name, Kind: Capacitor, Value: farads * core.FaradsToMicrofarads, Position: pos}
}

func inductor(name string, henries float64, pos int) Element {
	return Element{Name: name, Kind: Inductor, Value: henries * core.HenriesToMillihenries, Position: pos}
}

func requirePositive(name string, v float64) error {
	if !core.IsFinitePositive(v) {
		return fmt.Errorf("%w: %s = %v", ErrDegenerate, name, v)
	}

	return nil
}
