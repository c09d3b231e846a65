package passive

import (
	"strconv"

	"github.com/cwbudde/algo-xover/dsp/core"
)

// Unit is the display unit of a formatted component value.
type Unit string

const (
	Microfarad Unit = "uF"
	Millihenry Unit = "mH"
)

// Kind distinguishes reactive parts.
type Kind int

const (
	Capacitor Kind = iota
	Inductor
)

// Unit returns the display unit used for values of kind k.
func (k Kind) Unit() Unit {
	if k == Inductor {
		return Millihenry
	}

	return Microfarad
}

// Element is one part of a designed network with its exact value.
//
// Value is expressed in the display unit (µF or mH). Position is the
// element's place in the ladder counted from the source: even positions
// are series elements, odd positions shunt elements.
type Element struct {
	Name     string
	Kind     Kind
	Value    float64
	Position int
}

// SI returns the element value in farads or henries.
func (e Element) SI() float64 {
	if e.Kind == Inductor {
		return e.Value / core.HenriesToMillihenries
	}

	return e.Value / core.FaradsToMicrofarads
}

// Series reports whether the element sits in the signal path.
func (e Element) Series() bool {
	return e.Position%2 == 0
}

// Component formats e for presentation.
func (e Element) Component() Component {
	return Component{
		Name:  e.Name,
		Value: formatValue(e.Value),
		Unit:  e.Kind.Unit(),
	}
}

// Branch is one filter section of a network terminated by a resistive
// driver load.
type Branch struct {
	Load     float64   // ohms
	Elements []Element // presentation order
}

// Components formats the branch elements in presentation order.
func (b Branch) Components() []Component {
	out := make([]Component, len(b.Elements))
	for i, e := range b.Elements {
		out[i] = e.Component()
	}

	return out
}

// Network is a designed two-way crossover with exact element values.
type Network struct {
	Type     Type
	Freq     float64 // Hz
	HighPass Branch
	LowPass  Branch
}

// Result formats the network for presentation.
func (n Network) Result() Result {
	return Result{
		HighPass: n.HighPass.Components(),
		LowPass:  n.LowPass.Components(),
	}
}

// Component is a formatted part of a computed network. Value always has
// exactly two fractional digits.
type Component struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Unit  Unit   `json:"unit"`
}

// String returns e.g. "C1 6.63 uF".
func (c Component) String() string {
	return c.Name + " " + c.Value + " " + string(c.Unit)
}

// Result holds the formatted high-pass (tweeter) and low-pass (woofer)
// component lists of a two-way crossover.
type Result struct {
	HighPass []Component `json:"highPass"`
	LowPass  []Component `json:"lowPass"`
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
