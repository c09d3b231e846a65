package main

import (
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-xover/dsp/filter/passive"
)

type twoWayReport struct {
	Type  passive.Type `json:"type"`
	Freq  float64      `json:"freq"`
	Label string       `json:"label"`
	passive.Result
	Warnings []passive.Warning `json:"warnings"`
	Intent   passive.Intent    `json:"intent"`
	Guidance string            `json:"guidance"`
}

func newCalcCmd(a *app) *cobra.Command {
	var freq float64

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Design a two-way crossover",
		Long: "Compute the tweeter high-pass and woofer low-pass components of a " +
			"two-way crossover, check the design against the tweeter resonance " +
			"and print voicing guidance for the chosen intent.",
		Example: "  xover calc --freq 3000 --type lr4 --fs 900 --intent warm",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := a.cfg
			t := c.CrossoverType()

			res, err := passive.Calculate(c.Tweeter, c.Woofer, freq, t)
			if err != nil {
				return err
			}

			rep := twoWayReport{
				Type:     t,
				Freq:     freq,
				Label:    passive.Info(t).Label,
				Result:   res,
				Warnings: passive.Validate(c.Tweeter, c.Woofer, freq, c.Resonance, t),
				Intent:   c.DesignIntent(),
				Guidance: passive.Guidance(c.DesignIntent()),
			}
			if rep.Warnings == nil {
				rep.Warnings = []passive.Warning{}
			}
			a.log.Info("two-way design", "type", t.String(), "freq", freq, "warnings", len(rep.Warnings))

			return a.out.twoWay(rep)
		},
	}

	addDesignFlags(cmd)
	f := cmd.Flags()
	f.Float64Var(&freq, "freq", 0, "crossover frequency in Hz")
	f.Float64("fs", 0, "tweeter resonance in Hz (0 skips the resonance checks)")
	f.String("intent", "flat", "design intent (flat|warm|bright|vocal)")
	_ = cmd.MarkFlagRequired("freq")

	return cmd
}

func (p *printer) twoWay(r twoWayReport) error {
	if p.json {
		return p.encode(r)
	}

	p.heading("%s at %g Hz", r.Label, r.Freq)
	if err := p.components("Tweeter (high-pass)", r.HighPass); err != nil {
		return err
	}
	if err := p.components("Woofer (low-pass)", r.LowPass); err != nil {
		return err
	}
	p.warnings(r.Warnings)
	p.heading("Guidance")
	_, err := p.w.Write([]byte(r.Guidance + "\n"))
	return err
}
