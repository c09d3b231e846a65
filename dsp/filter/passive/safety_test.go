package passive

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		f    float64
		fs   float64
		typ  Type
		want []Severity
	}{
		{"below twice resonance", 1500, 1000, TypeButterworth2, []Severity{SeverityHazard}},
		{"close to resonance", 2200, 1000, TypeButterworth2, []Severity{SeverityWarning}},
		{"at 2x boundary", 2000, 1000, TypeButterworth2, []Severity{SeverityWarning}},
		{"at 2.5x boundary", 2500, 1000, TypeButterworth2, nil},
		{"clear of resonance", 4400, 1000, TypeLinkwitzRiley4, nil},
		{"resonance unknown", 1500, 0, TypeButterworth2, nil},
		{"shallow slope only", 2500, 0, TypeButterworth1, []Severity{SeverityHazard}},
		{"shallow slope at 3k", 3000, 0, TypeButterworth1, nil},
		{"resonance and slope", 1500, 1000, TypeButterworth1, []Severity{SeverityHazard, SeverityHazard}},
		{"warning and slope", 2200, 1000, TypeButterworth1, []Severity{SeverityWarning, SeverityHazard}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(8, 8, tt.f, tt.fs, tt.typ)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d warnings %+v, want %v", len(got), got, tt.want)
			}
			for i, w := range got {
				if w.Severity != tt.want[i] {
					t.Errorf("warning %d: severity %q, want %q", i, w.Severity, tt.want[i])
				}
				if w.Message == "" {
					t.Errorf("warning %d: empty message", i)
				}
			}
		})
	}
}

func TestValidate_MessagesEmbedFrequencies(t *testing.T) {
	got := Validate(8, 8, 1500, 1000, TypeButterworth2)
	if len(got) != 1 {
		t.Fatalf("got %d warnings, want 1", len(got))
	}
	for _, s := range []string{"1500Hz", "1000Hz"} {
		if !strings.Contains(got[0].Message, s) {
			t.Errorf("message %q does not mention %s", got[0].Message, s)
		}
	}

	got = Validate(8, 8, 2200, 1000, TypeButterworth2)
	if len(got) != 1 || !strings.Contains(got[0].Message, "2200Hz") {
		t.Errorf("warning = %+v, want message mentioning 2200Hz", got)
	}
}

func TestGuidance(t *testing.T) {
	tests := []struct {
		intent Intent
		want   string
	}{
		{IntentWarm, "1.5-2.0 dB"},
		{IntentBright, "lower the tweeter crossover"},
		{IntentVocalForward, "midrange"},
		{IntentFlat, "standard reference alignment"},
		{Intent(17), "standard reference alignment"},
	}
	for _, tt := range tests {
		if got := Guidance(tt.intent); !strings.Contains(got, tt.want) {
			t.Errorf("Guidance(%v) = %q, want it to contain %q", tt.intent, got, tt.want)
		}
	}
}
