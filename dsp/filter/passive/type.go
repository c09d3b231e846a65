package passive

import (
	"fmt"
	"strings"
)

// Type identifies a crossover topology (filter order and alignment).
type Type int

const (
	TypeButterworth1 Type = iota
	TypeButterworth2
	TypeLinkwitzRiley2
	TypeBessel2
	TypeButterworth3
	TypeLinkwitzRiley4
)

// Metadata holds the static catalog entry of a crossover type.
type Metadata struct {
	Label string // display label, e.g. "2nd Order Linkwitz-Riley"
	Short string // short command-line name, e.g. "lr2"
	Order int    // filter order; slope is 6 dB/octave per order
}

var metadataByType = map[Type]Metadata{
	TypeButterworth1:   {Label: "1st Order Butterworth", Short: "bw1", Order: 1},
	TypeButterworth2:   {Label: "2nd Order Butterworth", Short: "bw2", Order: 2},
	TypeLinkwitzRiley2: {Label: "2nd Order Linkwitz-Riley", Short: "lr2", Order: 2},
	TypeBessel2:        {Label: "2nd Order Bessel", Short: "bessel2", Order: 2},
	TypeButterworth3:   {Label: "3rd Order Butterworth", Short: "bw3", Order: 3},
	TypeLinkwitzRiley4: {Label: "4th Order Linkwitz-Riley", Short: "lr4", Order: 4},
}

// Types returns the catalog of supported crossover types in catalog order.
func Types() []Type {
	return []Type{
		TypeButterworth1,
		TypeButterworth2,
		TypeLinkwitzRiley2,
		TypeBessel2,
		TypeButterworth3,
		TypeLinkwitzRiley4,
	}
}

// Info returns static metadata for a crossover type. Unknown types yield
// the zero Metadata.
func Info(t Type) Metadata {
	if m, ok := metadataByType[t]; ok {
		return m
	}

	return Metadata{}
}

// Valid reports whether t is part of the catalog.
func (t Type) Valid() bool {
	_, ok := metadataByType[t]
	return ok
}

// String returns the display label of t.
func (t Type) String() string {
	if m, ok := metadataByType[t]; ok {
		return m.Label
	}

	return fmt.Sprintf("Type(%d)", int(t))
}

// SlopeDB returns the asymptotic slope of t in dB per octave.
func (t Type) SlopeDB() int {
	return 6 * Info(t).Order
}

// ParseType resolves a display label or short name, ignoring case and
// surrounding whitespace.
func ParseType(s string) (Type, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, t := range Types() {
		m := metadataByType[t]
		if key == m.Short || key == strings.ToLower(m.Label) {
			return t, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// MarshalText implements encoding.TextMarshaler using the short name.
func (t Type) MarshalText() ([]byte, error) {
	m, ok := metadataByType[t]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, int(t))
	}

	return []byte(m.Short), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseType.
func (t *Type) UnmarshalText(text []byte) error {
	v, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = v

	return nil
}

// Intent is a voicing goal used to select design advice. It has no effect
// on computed values.
type Intent int

const (
	IntentFlat Intent = iota
	IntentWarm
	IntentBright
	IntentVocalForward
)

var intentNames = map[Intent][2]string{
	IntentFlat:         {"Flat/Reference", "flat"},
	IntentWarm:         {"Warm", "warm"},
	IntentBright:       {"Bright", "bright"},
	IntentVocalForward: {"Vocal Forward", "vocal"},
}

// Intents returns all design intents in catalog order.
func Intents() []Intent {
	return []Intent{IntentFlat, IntentWarm, IntentBright, IntentVocalForward}
}

// String returns the display label of i.
func (i Intent) String() string {
	if n, ok := intentNames[i]; ok {
		return n[0]
	}

	return fmt.Sprintf("Intent(%d)", int(i))
}

// Short returns the short command-line name of i.
func (i Intent) Short() string {
	return intentNames[i][1]
}

// ParseIntent resolves a display label or short name, ignoring case.
func ParseIntent(s string) (Intent, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, i := range Intents() {
		n := intentNames[i]
		if key == n[1] || key == strings.ToLower(n[0]) {
			return i, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownIntent, s)
}

// MarshalText implements encoding.TextMarshaler using the short name.
func (i Intent) MarshalText() ([]byte, error) {
	n, ok := intentNames[i]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownIntent, int(i))
	}

	return []byte(n[1]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseIntent.
func (i *Intent) UnmarshalText(text []byte) error {
	v, err := ParseIntent(string(text))
	if err != nil {
		return err
	}
	*i = v

	return nil
}
