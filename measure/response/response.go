package response

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"sort"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-xover/dsp/core"
	"github.com/cwbudde/algo-xover/dsp/filter/passive"
)

// Errors returned by response functions.
var (
	ErrInvalidRange  = errors.New("response: frequency range must be positive and ascending")
	ErrInvalidPoints = errors.New("response: at least two points are required")
	ErrEmptyBranch   = errors.New("response: branch has no elements")
	ErrInvalidLoad   = errors.New("response: load must be positive")
	ErrGridMismatch  = errors.New("response: responses use different frequency grids")
	ErrInvalidSize   = errors.New("response: size must be a power of two >= 2")
	ErrInvalidRate   = errors.New("response: sample rate must be positive")
)

// Option configures a frequency sweep.
type Option func(*config)

type config struct {
	start  float64
	stop   float64
	points int
}

func defaultConfig() config {
	return config{
		start:  20,
		stop:   20000,
		points: 200,
	}
}

// WithRange sets the sweep range in Hz.
func WithRange(start, stop float64) Option {
	return func(c *config) {
		c.start = start
		c.stop = stop
	}
}

// WithPoints sets the number of log-spaced sweep points.
func WithPoints(n int) Option {
	return func(c *config) {
		c.points = n
	}
}

// Response is a complex frequency response sampled at Freqs.
type Response struct {
	Freqs []float64
	H     []complex128
}

// Sweep returns points log-spaced frequencies from start to stop inclusive.
func Sweep(start, stop float64, points int) ([]float64, error) {
	if points < 2 {
		return nil, ErrInvalidPoints
	}
	f := core.LogSpace(start, stop, points)
	if f == nil {
		return nil, fmt.Errorf("%w: %v..%v Hz", ErrInvalidRange, start, stop)
	}

	return f, nil
}

// Analyze evaluates b over a log-spaced sweep (20 Hz to 20 kHz, 200 points
// unless overridden).
func Analyze(b passive.Branch, opts ...Option) (Response, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	freqs, err := Sweep(cfg.start, cfg.stop, cfg.points)
	if err != nil {
		return Response{}, err
	}

	return Evaluate(b, freqs)
}

// Evaluate computes the transfer function of b at each frequency in Hz.
func Evaluate(b passive.Branch, freqs []float64) (Response, error) {
	ladder, err := ladderOf(b)
	if err != nil {
		return Response{}, err
	}

	h := make([]complex128, len(freqs))
	for i, f := range freqs {
		if !core.IsFinitePositive(f) {
			return Response{}, fmt.Errorf("%w: %v Hz", ErrInvalidRange, f)
		}
		h[i] = ladder.transfer(core.AngularFrequency(f))
	}

	return Response{Freqs: append([]float64(nil), freqs...), H: h}, nil
}

// Sum returns the complex sum of a and b, which must share a grid.
func Sum(a, b Response) (Response, error) {
	if len(a.Freqs) != len(b.Freqs) || len(a.H) != len(b.H) {
		return Response{}, ErrGridMismatch
	}
	for i := range a.Freqs {
		if a.Freqs[i] != b.Freqs[i] {
			return Response{}, fmt.Errorf("%w: point %d is %v Hz vs %v Hz", ErrGridMismatch, i, a.Freqs[i], b.Freqs[i])
		}
	}

	h := make([]complex128, len(a.H))
	for i := range h {
		h[i] = a.H[i] + b.H[i]
	}

	return Response{Freqs: append([]float64(nil), a.Freqs...), H: h}, nil
}

// Magnitude returns |H| at each point.
func (r Response) Magnitude() []float64 {
	n := len(r.H)
	if n == 0 {
		return nil
	}

	re := make([]float64, n)
	im := make([]float64, n)
	for i, c := range r.H {
		re[i] = real(c)
		im[i] = imag(c)
	}

	out := make([]float64, n)
	vecmath.Magnitude(out, re, im)
	return out
}

// MagnitudeDB returns 20·log10|H| at each point.
func (r Response) MagnitudeDB() []float64 {
	mag := r.Magnitude()
	for i, m := range mag {
		mag[i] = core.LinearToDB(m)
	}
	return mag
}

// PhaseDeg returns the phase of H in degrees, wrapped to (-180, 180].
func (r Response) PhaseDeg() []float64 {
	out := make([]float64, len(r.H))
	for i, c := range r.H {
		out[i] = cmplx.Phase(c) * 180 / math.Pi
	}
	return out
}

// At returns the response at the grid point closest to freq on a log
// scale.
func (r Response) At(freq float64) (float64, complex128) {
	if len(r.Freqs) == 0 || freq <= 0 {
		return 0, 0
	}

	best := 0
	bestDist := math.Inf(1)
	for i, f := range r.Freqs {
		d := math.Abs(math.Log(f / freq))
		if d < bestDist {
			best, bestDist = i, d
		}
	}

	return r.Freqs[best], r.H[best]
}

type rung struct {
	kind   passive.Kind
	value  float64 // SI
	series bool
}

type ladder struct {
	load  float64
	rungs []rung // source to load
}

func ladderOf(b passive.Branch) (ladder, error) {
	if len(b.Elements) == 0 {
		return ladder{}, ErrEmptyBranch
	}
	if !core.IsFinitePositive(b.Load) {
		return ladder{}, fmt.Errorf("%w: %v ohm", ErrInvalidLoad, b.Load)
	}

	elems := append([]passive.Element(nil), b.Elements...)
	sort.SliceStable(elems, func(i, j int) bool { return elems[i].Position < elems[j].Position })

	l := ladder{load: b.Load, rungs: make([]rung, len(elems))}
	for i, e := range elems {
		l.rungs[i] = rung{kind: e.Kind, value: e.SI(), series: e.Series()}
	}

	return l, nil
}

func (r rung) impedance(w float64) complex128 {
	if r.kind == passive.Inductor {
		return complex(0, w*r.value)
	}

	return complex(0, -1/(w*r.value))
}

// transfer returns V_load/V_source at angular frequency w > 0. Starting
// from 1 V across the load it accumulates current through shunt rungs and
// voltage across series rungs back to the source.
func (l ladder) transfer(w float64) complex128 {
	v := complex(1, 0)
	i := v / complex(l.load, 0)
	for k := len(l.rungs) - 1; k >= 0; k-- {
		z := l.rungs[k].impedance(w)
		if l.rungs[k].series {
			v += i * z
		} else {
			i += v / z
		}
	}

	return 1 / v
}

// dcGain is the transfer function limit at 0 Hz: a series capacitor or a
// shunt inductor blocks DC, anything else passes it.
func (l ladder) dcGain() float64 {
	for _, r := range l.rungs {
		if r.series == (r.kind == passive.Capacitor) {
			return 0
		}
	}

	return 1
}
