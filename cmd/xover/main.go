// Command xover designs passive loudspeaker crossover networks.
//
// Usage:
//
//	xover <command> [flags]
//
// Examples:
//
//	xover calc --freq 3000 --type lr4 --fs 900 --intent warm
//	xover 3way --low 500 --high 4000 --type bw2 --rt 6
//	xover lpad --rh 8 --db 3
//	xover zobel --re 6.2 --le 0.45
//	xover response --freq 2500 --type lr2 --points 61
//	xover batch designs.toml --watch
//	xover types
//
// Defaults come from .xover.{yaml,toml,json} in the working or home
// directory and XOVER_* environment variables; flags win over both.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
