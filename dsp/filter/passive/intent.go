package passive

// Guidance returns voicing advice for a design intent.
func Guidance(i Intent) string {
	switch i {
	case IntentWarm:
		return "Warm: pad the tweeter down 1.5-2.0 dB with an L-Pad to soften the top end."
	case IntentBright:
		return "Bright: reduce tweeter attenuation or lower the tweeter crossover point for more presence."
	case IntentVocalForward:
		return "Vocal Forward: keep the midrange and the crossover overlap region flat so voices stay centered."
	default:
		return "Flat/Reference: standard reference alignment, no voicing adjustments."
	}
}
