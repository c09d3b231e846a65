// Package response evaluates the frequency and impulse response of passive
// crossover branches designed by package passive.
//
// A branch is treated as an LC ladder driven by an ideal voltage source and
// terminated by the driver's nominal impedance as a pure resistance. The
// transfer function H(jω) = V_load/V_source is obtained by walking the
// ladder from the load back to the source: shunt elements add their
// current, series elements add their voltage drop.
//
// # Usage
//
//	n, _ := passive.Design(8, 8, 3000, passive.TypeLinkwitzRiley2)
//	hp, _ := response.Analyze(n.HighPass)
//	lp, _ := response.Analyze(n.LowPass)
//	sum, _ := response.Sum(hp, lp)
//	db := sum.MagnitudeDB()
//
// Real drivers are neither resistive nor flat, so these curves show the
// electrical behavior of the network only.
package response
