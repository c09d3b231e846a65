package passive

import "errors"

// Errors returned by the calculators.
var (
	ErrUnknownType    = errors.New("passive: unknown crossover type")
	ErrUnknownIntent  = errors.New("passive: unknown design intent")
	ErrDegenerate     = errors.New("passive: parameter must be finite and positive")
	ErrFrequencyOrder = errors.New("passive: low crossover frequency must be below high crossover frequency")
)
