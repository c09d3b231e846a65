package main

import (
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-xover/dsp/filter/passive"
)

func newLPadCmd(a *app) *cobra.Command {
	var db float64

	cmd := &cobra.Command{
		Use:     "lpad",
		Short:   "Design an L-Pad attenuator",
		Example: "  xover lpad --rh 8 --db 3",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := passive.LPad(a.cfg.Tweeter, db)
			if err != nil {
				return err
			}
			if a.out.json {
				return a.out.encode(res)
			}

			a.out.heading("L-Pad: %g dB into %g ohms", db, a.cfg.Tweeter)
			return a.out.kv(
				"  R1 (series)", res.R1+" ohms",
				"  R2 (parallel)", res.R2+" ohms",
			)
		},
	}

	f := cmd.Flags()
	f.Float64("rh", 8, "driver impedance in ohms")
	f.Float64Var(&db, "db", 0, "attenuation in dB")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func newZobelCmd(a *app) *cobra.Command {
	var re, le float64

	cmd := &cobra.Command{
		Use:     "zobel",
		Short:   "Design a Zobel impedance compensation network",
		Example: "  xover zobel --re 6.2 --le 0.45",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := passive.Zobel(re, le)
			if err != nil {
				return err
			}
			if a.out.json {
				return a.out.encode(res)
			}

			a.out.heading("Zobel: Re %g ohms, Le %g mH", re, le)
			return a.out.kv(
				"  Rz", res.Rz+" ohms",
				"  Cz", res.Cz+" uF",
			)
		},
	}

	f := cmd.Flags()
	f.Float64Var(&re, "re", 0, "voice coil DC resistance in ohms")
	f.Float64Var(&le, "le", 0, "voice coil inductance in mH")
	_ = cmd.MarkFlagRequired("re")
	_ = cmd.MarkFlagRequired("le")

	return cmd
}
