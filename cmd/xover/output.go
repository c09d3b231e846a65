package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/cwbudde/algo-xover/dsp/filter/passive"
)

// printer renders command results as aligned text or indented JSON.
type printer struct {
	w      io.Writer
	json   bool
	hazard *color.Color
	warn   *color.Color
	title  *color.Color
}

func newPrinter(w io.Writer, asJSON, colored bool) *printer {
	p := &printer{
		w:      w,
		json:   asJSON,
		hazard: color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow),
		title:  color.New(color.Bold),
	}
	for _, c := range []*color.Color{p.hazard, p.warn, p.title} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

// useColor resolves the --color mode for w. auto colors terminals only and
// honors NO_COLOR.
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case "on":
		return true
	case "off":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (p *printer) encode(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (p *printer) heading(format string, args ...any) {
	fmt.Fprintln(p.w, p.title.Sprintf(format, args...))
}

// components prints one branch as an indented name/value/unit table.
func (p *printer) components(label string, cs []passive.Component) error {
	fmt.Fprintln(p.w, label)
	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	for _, c := range cs {
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", c.Name, c.Value, c.Unit)
	}
	return tw.Flush()
}

func (p *printer) warnings(ws []passive.Warning) {
	for _, w := range ws {
		c := p.warn
		if w.Severity == passive.SeverityHazard {
			c = p.hazard
		}
		fmt.Fprintf(p.w, "%s %s\n", c.Sprintf("[%s]", w.Severity), w.Message)
	}
}

func (p *printer) failure(err error) {
	fmt.Fprintln(p.w, p.hazard.Sprintf("error: %v", err))
}

// kv prints aligned label/value pairs.
func (p *printer) kv(pairs ...string) error {
	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	for i := 0; i+1 < len(pairs); i += 2 {
		fmt.Fprintf(tw, "%s\t%s\n", pairs[i], pairs[i+1])
	}
	return tw.Flush()
}
