package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-xover/internal/batch"
)

func newBatchCmd(a *app) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Evaluate every design in a TOML file",
		Long: "Evaluate the [[design]] tables of a TOML file concurrently and print " +
			"the outcomes in file order. Failed designs are reported alongside " +
			"the others. With --watch the file is re-evaluated on every save " +
			"until interrupted.",
		Example: "  xover batch designs.toml\n" +
			"  xover batch designs.toml --watch --workers 8",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			if !watch {
				return a.runBatch(cmd, path)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			if err := a.runBatch(cmd, path); err != nil {
				a.log.Error("batch failed", "file", path, "error", err)
			}
			a.log.Info("watching for changes", "file", path)

			return batch.Watch(ctx, path, func() {
				if err := a.runBatch(cmd, path); err != nil {
					a.log.Error("batch failed", "file", path, "error", err)
				}
			})
		},
	}

	f := cmd.Flags()
	f.BoolVar(&watch, "watch", false, "re-evaluate the file whenever it changes")
	f.Int("workers", 4, "number of designs evaluated concurrently")

	return cmd
}

// runBatch evaluates path once. It fails when the file cannot be read or
// any design fails.
func (a *app) runBatch(cmd *cobra.Command, path string) error {
	file, err := batch.Load(path)
	if err != nil {
		return err
	}

	outcomes, err := batch.Run(cmd.Context(), file, a.cfg.Workers, a.log)
	if err != nil {
		return err
	}

	if err := a.out.batch(outcomes); err != nil {
		return err
	}

	failed := 0
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d designs failed", failed, len(outcomes))
	}

	return nil
}

func (p *printer) batch(outcomes []batch.Outcome) error {
	if p.json {
		return p.encode(outcomes)
	}

	for i, o := range outcomes {
		if i > 0 {
			fmt.Fprintln(p.w)
		}
		p.heading("%s (%s)", o.Name, o.Kind)

		if o.Err != nil {
			p.failure(o.Err)
			continue
		}

		var err error
		switch {
		case o.TwoWay != nil:
			if err = p.components("Tweeter (high-pass)", o.TwoWay.HighPass); err == nil {
				err = p.components("Woofer (low-pass)", o.TwoWay.LowPass)
			}
		case o.ThreeWay != nil:
			if err = p.components("Woofer (low-pass)", o.ThreeWay.Woofer); err == nil {
				err = p.components("Midrange (band-pass)", o.ThreeWay.Midrange)
			}
			if err == nil {
				err = p.components("Tweeter (high-pass)", o.ThreeWay.Tweeter)
			}
		case o.LPad != nil:
			err = p.kv("  R1 (series)", o.LPad.R1+" ohms", "  R2 (parallel)", o.LPad.R2+" ohms")
		case o.Zobel != nil:
			err = p.kv("  Rz", o.Zobel.Rz+" ohms", "  Cz", o.Zobel.Cz+" uF")
		}
		if err != nil {
			return err
		}

		p.warnings(o.Warnings)
		if o.Guidance != "" {
			fmt.Fprintln(p.w, o.Guidance)
		}
	}

	return nil
}
