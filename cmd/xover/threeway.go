package main

import (
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-xover/dsp/filter/passive"
)

type threeWayReport struct {
	Type  passive.Type `json:"type"`
	Low   float64      `json:"low"`
	High  float64      `json:"high"`
	Label string       `json:"label"`
	passive.ThreeWayResult
	Warnings []passive.Warning `json:"warnings"`
}

func newThreeWayCmd(a *app) *cobra.Command {
	var rw, rm, rt, low, high float64

	cmd := &cobra.Command{
		Use:   "3way",
		Short: "Design a three-way crossover",
		Long: "Compose a three-way crossover from two-way sections: the woofer " +
			"low-pass at --low, the midrange band-pass between --low and --high " +
			"and the tweeter high-pass at --high.",
		Example: "  xover 3way --low 500 --high 4000 --type bw2 --rt 6 --fs 1200",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t := a.cfg.CrossoverType()

			res, err := passive.ThreeWay(rw, rm, rt, low, high, t)
			if err != nil {
				return err
			}

			rep := threeWayReport{
				Type:           t,
				Low:            low,
				High:           high,
				Label:          passive.Info(t).Label,
				ThreeWayResult: res,
				Warnings:       passive.Validate(rt, rm, high, a.cfg.Resonance, t),
			}
			if rep.Warnings == nil {
				rep.Warnings = []passive.Warning{}
			}
			a.log.Info("three-way design", "type", t.String(), "low", low, "high", high)

			return a.out.threeWay(rep)
		},
	}

	f := cmd.Flags()
	f.String("type", "lr2", "crossover type, short name or label (see 'xover types')")
	f.Float64Var(&rw, "rw", 8, "woofer impedance in ohms")
	f.Float64Var(&rm, "rm", 8, "midrange impedance in ohms")
	f.Float64Var(&rt, "rt", 8, "tweeter impedance in ohms")
	f.Float64Var(&low, "low", 0, "woofer/midrange crossover frequency in Hz")
	f.Float64Var(&high, "high", 0, "midrange/tweeter crossover frequency in Hz")
	f.Float64("fs", 0, "tweeter resonance in Hz (0 skips the resonance checks)")
	_ = cmd.MarkFlagRequired("low")
	_ = cmd.MarkFlagRequired("high")

	return cmd
}

func (p *printer) threeWay(r threeWayReport) error {
	if p.json {
		return p.encode(r)
	}

	p.heading("%s at %g Hz / %g Hz", r.Label, r.Low, r.High)
	for _, b := range []struct {
		label string
		cs    []passive.Component
	}{
		{"Woofer (low-pass)", r.Woofer},
		{"Midrange (band-pass)", r.Midrange},
		{"Tweeter (high-pass)", r.Tweeter},
	} {
		if err := p.components(b.label, b.cs); err != nil {
			return err
		}
	}
	p.warnings(r.Warnings)

	return nil
}
