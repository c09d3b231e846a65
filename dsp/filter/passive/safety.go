package passive

import "fmt"

// Severity grades a safety warning.
type Severity string

const (
	SeverityHazard  Severity = "hazard"
	SeverityWarning Severity = "warning"
)

// Shallow-slope protection threshold for first order networks, in Hz.
const firstOrderMinFreq = 3000.0

// Warning is an advisory produced by Validate.
type Warning struct {
	Severity Severity `json:"type"`
	Message  string   `json:"message"`
}

// Validate checks a two-way design against driver-safety heuristics and
// returns zero or more advisories. fs is the tweeter resonance in Hz; zero
// means unknown and skips the resonance checks. rh and rl are currently
// unused.
//
// Rules:
//   - f < 2·fs is a hazard, else f < 2.5·fs is a warning;
//   - a first order network below 3 kHz is a hazard.
func Validate(rh, rl, f, fs float64, t Type) []Warning {
	var out []Warning

	switch {
	case fs > 0 && f < 2*fs:
		msg := fmt.Sprintf("Crossover frequency (%gHz) is below 2x tweeter resonance (%gHz). Risk of tweeter damage.", f, fs)
		out = append(out, Warning{Severity: SeverityHazard, Message: msg})
	case fs > 0 && f < 2.5*fs:
		msg := fmt.Sprintf("Crossover frequency (%gHz) is close to tweeter resonance (%gHz). "+
			"Consider a steeper slope or a higher crossover point.", f, fs)
		out = append(out, Warning{Severity: SeverityWarning, Message: msg})
	}

	if t == TypeButterworth1 && f < firstOrderMinFreq {
		msg := fmt.Sprintf("1st order slope (6 dB/octave) at %gHz gives the tweeter minimal protection. "+
			"Use a higher order or cross above %gHz.", f, firstOrderMinFreq)
		out = append(out, Warning{Severity: SeverityHazard, Message: msg})
	}

	return out
}
