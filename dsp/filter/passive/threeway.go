package passive

import "fmt"

// ThreeWayResult holds the formatted component lists of a three-way
// crossover. Midrange is a band-pass: the high-pass section at the low
// crossover point followed by the low-pass section at the high one.
type ThreeWayResult struct {
	Woofer   []Component `json:"woofer"`
	Midrange []Component `json:"midrange"`
	Tweeter  []Component `json:"tweeter"`
}

// ThreeWay computes a three-way crossover from two-way sections of the
// same type t. rw, rm and rt are the woofer, midrange and tweeter loads in
// ohms; flz and fhz the low and high crossover frequencies in Hz.
//
// Returns ErrFrequencyOrder unless flz < fhz.
func ThreeWay(rw, rm, rt, flz, fhz float64, t Type) (ThreeWayResult, error) {
	if err := requirePositive("flz", flz); err != nil {
		return ThreeWayResult{}, err
	}
	if err := requirePositive("fhz", fhz); err != nil {
		return ThreeWayResult{}, err
	}
	if flz >= fhz {
		return ThreeWayResult{}, fmt.Errorf("%w: %.1f Hz >= %.1f Hz", ErrFrequencyOrder, flz, fhz)
	}

	woofer, err := Calculate(rw, rw, flz, t)
	if err != nil {
		return ThreeWayResult{}, fmt.Errorf("passive: woofer: %w", err)
	}
	midLow, err := Calculate(rm, rm, flz, t)
	if err != nil {
		return ThreeWayResult{}, fmt.Errorf("passive: midrange: %w", err)
	}
	midHigh, err := Calculate(rm, rm, fhz, t)
	if err != nil {
		return ThreeWayResult{}, fmt.Errorf("passive: midrange: %w", err)
	}
	tweeter, err := Calculate(rt, rt, fhz, t)
	if err != nil {
		return ThreeWayResult{}, fmt.Errorf("passive: tweeter: %w", err)
	}

	mid := make([]Component, 0, len(midLow.HighPass)+len(midHigh.LowPass))
	mid = append(mid, midLow.HighPass...)
	mid = append(mid, midHigh.LowPass...)

	return ThreeWayResult{
		Woofer:   woofer.LowPass,
		Midrange: mid,
		Tweeter:  tweeter.HighPass,
	}, nil
}
