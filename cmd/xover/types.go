package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-xover/dsp/filter/passive"
)

type typeEntry struct {
	Short   string `json:"short"`
	Label   string `json:"label"`
	Order   int    `json:"order"`
	SlopeDB int    `json:"slopeDB"`
}

type intentEntry struct {
	Short    string `json:"short"`
	Label    string `json:"label"`
	Guidance string `json:"guidance"`
}

func newTypesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List crossover types and design intents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var types []typeEntry
			for _, t := range passive.Types() {
				m := passive.Info(t)
				types = append(types, typeEntry{Short: m.Short, Label: m.Label, Order: m.Order, SlopeDB: t.SlopeDB()})
			}
			var intents []intentEntry
			for _, i := range passive.Intents() {
				intents = append(intents, intentEntry{Short: i.Short(), Label: i.String(), Guidance: passive.Guidance(i)})
			}

			if a.out.json {
				return a.out.encode(struct {
					Types   []typeEntry   `json:"types"`
					Intents []intentEntry `json:"intents"`
				}{types, intents})
			}

			tw := tabwriter.NewWriter(a.out.w, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "TYPE\tLABEL\tORDER\tSLOPE")
			for _, t := range types {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%d dB/oct\n", t.Short, t.Label, t.Order, t.SlopeDB)
			}
			fmt.Fprintln(tw)
			fmt.Fprintln(tw, "INTENT\tLABEL\t\t")
			for _, i := range intents {
				fmt.Fprintf(tw, "%s\t%s\t\t\n", i.Short, i.Label)
			}
			return tw.Flush()
		},
	}
}
