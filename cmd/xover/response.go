package main

import (
	"fmt"
	"math"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-xover/dsp/filter/passive"
	"github.com/cwbudde/algo-xover/measure/response"
)

// Deep nulls in the summed response are reported at floorDB.
const floorDB = -200.0

type responsePoint struct {
	Freq     float64 `json:"freq"`
	HighPass float64 `json:"highPass"`
	LowPass  float64 `json:"lowPass"`
	Sum      float64 `json:"sum"`
}

type impulseReport struct {
	SampleRate float64   `json:"sampleRate"`
	HighPass   []float64 `json:"highPass"`
	LowPass    []float64 `json:"lowPass"`
}

func newResponseCmd(a *app) *cobra.Command {
	var (
		freq    float64
		impulse int
		rate    float64
	)

	cmd := &cobra.Command{
		Use:   "response",
		Short: "Tabulate the frequency response of a two-way crossover",
		Long: "Simulate both branches of a two-way crossover into their resistive " +
			"loads and print the high-pass, low-pass and summed magnitude over a " +
			"log-spaced sweep. With --impulse N, print N samples of each " +
			"branch's impulse response instead.",
		Example: "  xover response --freq 2500 --type lr2 --points 61\n" +
			"  xover response --freq 2500 --type lr4 --impulse 256 --rate 48000",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := a.cfg
			n, err := passive.Design(c.Tweeter, c.Woofer, freq, c.CrossoverType())
			if err != nil {
				return err
			}

			if impulse > 0 {
				return a.impulse(n, rate, impulse)
			}

			opts := []response.Option{
				response.WithRange(c.Response.Start, c.Response.Stop),
				response.WithPoints(c.Response.Points),
			}
			hp, err := response.Analyze(n.HighPass, opts...)
			if err != nil {
				return err
			}
			lp, err := response.Analyze(n.LowPass, opts...)
			if err != nil {
				return err
			}
			sum, err := response.Sum(hp, lp)
			if err != nil {
				return err
			}

			hpDB, lpDB, sumDB := hp.MagnitudeDB(), lp.MagnitudeDB(), sum.MagnitudeDB()
			points := make([]responsePoint, len(hp.Freqs))
			for i, f := range hp.Freqs {
				points[i] = responsePoint{
					Freq:     f,
					HighPass: clampDB(hpDB[i]),
					LowPass:  clampDB(lpDB[i]),
					Sum:      clampDB(sumDB[i]),
				}
			}
			a.log.Debug("response sweep", "points", len(points), "start", c.Response.Start, "stop", c.Response.Stop)

			if a.out.json {
				return a.out.encode(points)
			}
			a.out.heading("%s at %g Hz", passive.Info(n.Type).Label, n.Freq)
			tw := tabwriter.NewWriter(a.out.w, 0, 0, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(tw, "Hz\tHP dB\tLP dB\tSum dB\t")
			for _, p := range points {
				fmt.Fprintf(tw, "%.1f\t%.2f\t%.2f\t%.2f\t\n", p.Freq, p.HighPass, p.LowPass, p.Sum)
			}
			return tw.Flush()
		},
	}

	addDesignFlags(cmd)
	f := cmd.Flags()
	f.Float64Var(&freq, "freq", 0, "crossover frequency in Hz")
	f.Float64("start", 20, "sweep start in Hz")
	f.Float64("stop", 20000, "sweep stop in Hz")
	f.Int("points", 31, "number of log-spaced sweep points")
	f.IntVar(&impulse, "impulse", 0, "print this many impulse response samples (power of two)")
	f.Float64Var(&rate, "rate", 48000, "sample rate in Hz for --impulse")
	_ = cmd.MarkFlagRequired("freq")

	return cmd
}

func (a *app) impulse(n passive.Network, rate float64, size int) error {
	hp, err := response.Impulse(n.HighPass, rate, size)
	if err != nil {
		return err
	}
	lp, err := response.Impulse(n.LowPass, rate, size)
	if err != nil {
		return err
	}

	rep := impulseReport{SampleRate: rate, HighPass: hp, LowPass: lp}
	if a.out.json {
		return a.out.encode(rep)
	}

	a.out.heading("%s at %g Hz, %g Hz sample rate", passive.Info(n.Type).Label, n.Freq, rate)
	tw := tabwriter.NewWriter(a.out.w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "n\tHP\tLP\t")
	for i := range hp {
		fmt.Fprintf(tw, "%d\t%.6f\t%.6f\t\n", i, hp[i], lp[i])
	}
	return tw.Flush()
}

func clampDB(v float64) float64 {
	if math.IsNaN(v) || v < floorDB {
		return floorDB
	}
	return v
}
