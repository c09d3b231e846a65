// Package batch evaluates crossover designs listed in a TOML file.
//
// A design file holds one [[design]] table per network:
//
//	[[design]]
//	name = "tweeter"
//	kind = "two-way"   # two-way (default), three-way, lpad, zobel
//	type = "lr2"
//	intent = "warm"
//	rh = 8.0
//	rl = 8.0
//	freq = 3000.0
//	fs = 900.0
//
// Three-way designs use rw, rm, rt, flz and fhz; L-Pads use rh and db;
// Zobel networks use re and le (mH).
package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-xover/dsp/filter/passive"
	"github.com/cwbudde/algo-xover/internal/logging"
)

// Design kinds.
const (
	KindTwoWay   = "two-way"
	KindThreeWay = "three-way"
	KindLPad     = "lpad"
	KindZobel    = "zobel"
)

// ErrUnknownKind is recorded for a design with an unsupported kind.
var ErrUnknownKind = errors.New("batch: unknown design kind")

// Design is one entry of a design file.
type Design struct {
	Name   string `toml:"name"`
	Kind   string `toml:"kind"`
	Type   string `toml:"type"`
	Intent string `toml:"intent"`

	RH   float64 `toml:"rh"`
	RL   float64 `toml:"rl"`
	Freq float64 `toml:"freq"`
	Fs   float64 `toml:"fs"`

	RW    float64 `toml:"rw"`
	RM    float64 `toml:"rm"`
	RT    float64 `toml:"rt"`
	FLow  float64 `toml:"flz"`
	FHigh float64 `toml:"fhz"`

	DB float64 `toml:"db"`
	RE float64 `toml:"re"`
	LE float64 `toml:"le"`
}

// File is a parsed design file.
type File struct {
	Designs []Design `toml:"design"`
}

// Outcome is the evaluation of one design. Exactly one result field is
// set on success; Err is set on failure.
type Outcome struct {
	Name     string                  `json:"name"`
	Kind     string                  `json:"kind"`
	TwoWay   *passive.Result         `json:"twoWay,omitempty"`
	ThreeWay *passive.ThreeWayResult `json:"threeWay,omitempty"`
	LPad     *passive.LPadResult     `json:"lpad,omitempty"`
	Zobel    *passive.ZobelResult    `json:"zobel,omitempty"`
	Warnings []passive.Warning       `json:"warnings,omitempty"`
	Guidance string                  `json:"guidance,omitempty"`
	Error    string                  `json:"error,omitempty"`

	Err error `json:"-"`
}

// Load reads and parses a design file.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("batch: read %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return File{}, fmt.Errorf("batch: %s: %w", path, err)
	}

	return f, nil
}

// Parse decodes a design file and fills in default names and kinds.
func Parse(data []byte) (File, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parse: %w", err)
	}

	for i := range f.Designs {
		d := &f.Designs[i]
		if d.Name == "" {
			d.Name = fmt.Sprintf("design %d", i+1)
		}
		if d.Kind == "" {
			d.Kind = KindTwoWay
		}
	}

	return f, nil
}

// Run evaluates every design of f using up to workers goroutines
// (GOMAXPROCS when workers <= 0). Outcomes keep file order. A failing
// design records its error in its Outcome; only cancellation of ctx
// aborts the run. log may be nil.
func Run(ctx context.Context, f File, workers int, log *slog.Logger) ([]Outcome, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if log == nil {
		log = logging.Discard()
	}

	results := make([]Outcome, len(f.Designs))
	if len(results) == 0 {
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(workers, len(f.Designs)))

	for i, d := range f.Designs {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			// Each goroutine owns results[i].
			results[i] = Evaluate(d)
			if results[i].Err != nil {
				log.Debug("design failed", "name", d.Name, "kind", d.Kind, "error", results[i].Err)
			} else {
				log.Debug("design evaluated", "name", d.Name, "kind", d.Kind, "warnings", len(results[i].Warnings))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	log.Info("batch complete", "designs", len(results), "failed", failed)

	return results, nil
}

// Evaluate computes a single design.
func Evaluate(d Design) Outcome {
	out := Outcome{Name: d.Name, Kind: d.Kind}
	if err := evaluate(d, &out); err != nil {
		out.Err = err
		out.Error = err.Error()
	}

	return out
}

func evaluate(d Design, out *Outcome) error {
	switch d.Kind {
	case KindTwoWay:
		t, err := passive.ParseType(d.Type)
		if err != nil {
			return err
		}
		res, err := passive.Calculate(d.RH, d.RL, d.Freq, t)
		if err != nil {
			return err
		}
		out.TwoWay = &res
		out.Warnings = passive.Validate(d.RH, d.RL, d.Freq, d.Fs, t)
		if d.Intent != "" {
			intent, err := passive.ParseIntent(d.Intent)
			if err != nil {
				return err
			}
			out.Guidance = passive.Guidance(intent)
		}

	case KindThreeWay:
		t, err := passive.ParseType(d.Type)
		if err != nil {
			return err
		}
		res, err := passive.ThreeWay(d.RW, d.RM, d.RT, d.FLow, d.FHigh, t)
		if err != nil {
			return err
		}
		out.ThreeWay = &res
		out.Warnings = passive.Validate(d.RT, d.RM, d.FHigh, d.Fs, t)

	case KindLPad:
		res, err := passive.LPad(d.RH, d.DB)
		if err != nil {
			return err
		}
		out.LPad = &res

	case KindZobel:
		res, err := passive.Zobel(d.RE, d.LE)
		if err != nil {
			return err
		}
		out.Zobel = &res

	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, d.Kind)
	}

	return nil
}
