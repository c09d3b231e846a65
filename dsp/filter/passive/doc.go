// Package passive computes component values for passive loudspeaker
// crossover networks.
//
// A two-way network is described by a crossover [Type] (order and
// alignment), the tweeter and woofer impedances and the crossover
// frequency. [Calculate] returns the formatted high-pass and low-pass
// component lists; [Design] returns the same network with exact values and
// ladder positions for analysis (see package measure/response).
//
// All formulas are closed-form. First to third order alignments derive
// from ω = 2πf:
//
//	1st order Butterworth:  C = 1/(ωR),       L = R/ω
//	2nd order Butterworth:  C = 1/(√2·ωR),    L = R/(√2·ω)
//	2nd order L-R:          C = 1/(2ωR),      L = R/(0.5ω)
//	2nd order Bessel:       C = 1/(√3·ωR),    L = √3·R/ω
//
// The 4th order Linkwitz-Riley branch uses constants fitted to standard
// passive LR4 tables, expressed directly in µF·Hz·Ω and mH·Hz/Ω.
//
// Helpers cover the usual companions of a crossover: [LPad] attenuators,
// [Zobel] impedance compensation, [ThreeWay] networks built from two-way
// sections, a narrow set of driver-safety heuristics ([Validate]) and
// voicing advice for a design [Intent] ([Guidance]).
//
// Invalid inputs never produce Inf or NaN values: non-positive or
// non-finite parameters fail with [ErrDegenerate], unknown topologies with
// [ErrUnknownType].
//
// Example:
//
//	res, _ := passive.Calculate(8, 8, 3000, passive.TypeButterworth1)
//	fmt.Println(res.HighPass[0]) // C1 6.63 uF
//
// Every function is pure and safe for concurrent use.
package passive
