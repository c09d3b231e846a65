package passive

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-xover/dsp/core"
)

// LPadResult holds the resistor values of an L-Pad attenuator in ohms.
// R1 is the series resistor, R2 the resistor across the driver.
type LPadResult struct {
	R1 string `json:"r1"`
	R2 string `json:"r2"`
}

// ZobelResult holds a Zobel network: Rz in ohms and Cz in µF.
type ZobelResult struct {
	Rz string `json:"rz"`
	Cz string `json:"cz"`
}

// LPad computes an L-Pad that attenuates a driver of impedance rh by db
// decibels while presenting rh to the crossover.
//
//	k  = 10^(db/20)
//	R1 = rh·(k−1)/k
//	R2 = rh/(k−1)
func LPad(rh, db float64) (LPadResult, error) {
	if err := requirePositive("rh", rh); err != nil {
		return LPadResult{}, err
	}
	if err := requirePositive("db", db); err != nil {
		return LPadResult{}, err
	}

	k := core.DBToLinear(db)
	r1 := rh * (k - 1) / k
	r2 := rh / (k - 1)
	if math.IsInf(r2, 0) || math.IsInf(k, 0) {
		return LPadResult{}, fmt.Errorf("%w: %v dB is out of range", ErrDegenerate, db)
	}

	return LPadResult{R1: formatValue(r1), R2: formatValue(r2)}, nil
}

// Zobel computes the impedance compensation network for a driver with DC
// resistance re (ohms) and voice-coil inductance le (mH).
//
//	Rz = 1.25·re
//	Cz = le/Rz²
func Zobel(re, le float64) (ZobelResult, error) {
	if err := requirePositive("re", re); err != nil {
		return ZobelResult{}, err
	}
	if err := requirePositive("le", le); err != nil {
		return ZobelResult{}, err
	}

	rz := 1.25 * re
	cz := (le / core.HenriesToMillihenries) / (rz * rz) * core.FaradsToMicrofarads
	if math.IsInf(cz, 0) || math.IsInf(rz, 0) {
		return ZobelResult{}, fmt.Errorf("%w: zobel values out of range", ErrDegenerate)
	}

	return ZobelResult{Rz: formatValue(rz), Cz: formatValue(cz)}, nil
}
