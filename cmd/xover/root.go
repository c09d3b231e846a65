package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cwbudde/algo-xover/internal/config"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	v   *viper.Viper
	cfg config.Config
	log *slog.Logger
	out *printer
}

// flagKeys maps command-line flag names to config keys. Flags are bound
// only on the command being run, so several commands may share a name.
var flagKeys = map[string]string{
	"type":       "type",
	"intent":     "intent",
	"rh":         "rh",
	"rl":         "rl",
	"fs":         "fs",
	"format":     "format",
	"color":      "color",
	"log-level":  "log_level",
	"log-format": "log_format",
	"workers":    "workers",
	"start":      "response.start",
	"stop":       "response.stop",
	"points":     "response.points",
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "xover",
		Short: "Passive loudspeaker crossover calculator",
		Long: "xover computes component values for passive two-way and three-way " +
			"loudspeaker crossovers, L-Pad attenuators and Zobel networks, checks " +
			"designs against tweeter-safety heuristics and plots their response.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default .xover.{yaml,toml,json})")
	pf.String("format", "pretty", "output format (pretty|json)")
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.String("log-level", "warn", "log level (debug|info|warn|error)")
	pf.String("log-format", "text", "log format (text|json)")

	root.AddCommand(
		newCalcCmd(a),
		newThreeWayCmd(a),
		newLPadCmd(a),
		newZobelCmd(a),
		newResponseCmd(a),
		newBatchCmd(a),
		newTypesCmd(a),
	)

	return root
}

// setup resolves the configuration of the command about to run.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := a.v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("bind --%s: %w", name, err)
			}
		}
	}

	cfgFile, _ := cmd.Flags().GetString("config")
	if err := config.Init(a.v, cfgFile); err != nil {
		return err
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = cfg.Logger(cmd.ErrOrStderr())
	a.out = newPrinter(cmd.OutOrStdout(), cfg.Format == "json", useColor(cfg.Color, cmd.OutOrStdout()))

	a.log.Debug("config resolved",
		"command", cmd.Name(),
		"file", a.v.ConfigFileUsed(),
		"type", cfg.Type,
		"format", cfg.Format)

	return nil
}

// addDesignFlags registers the flags shared by two-way design commands.
// Their values are read back through the resolved config.
func addDesignFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("type", "lr2", "crossover type, short name or label (see 'xover types')")
	f.Float64("rh", 8, "tweeter impedance in ohms")
	f.Float64("rl", 8, "woofer impedance in ohms")
}
