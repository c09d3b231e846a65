package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("json"); err != nil || f != FormatJSON {
		t.Errorf("ParseFormat(json) = %v, %v", f, err)
	}
	if f, err := ParseFormat("Text"); err != nil || f != FormatText {
		t.Errorf("ParseFormat(Text) = %v, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, LevelInfo, FormatJSON)

	log.Debug("hidden")
	log.Info("design evaluated", "name", "tweeter", "components", 2)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1: %q", len(lines), buf.String())
	}

	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("invalid JSON %q: %v", lines[0], err)
	}
	if rec["msg"] != "design evaluated" || rec["name"] != "tweeter" || rec["level"] != "INFO" {
		t.Errorf("unexpected record %v", rec)
	}
	if ts, ok := rec["time"].(string); !ok || !strings.Contains(ts, "T") {
		t.Errorf("time = %v, want RFC3339 string", rec["time"])
	}
}

func TestNew_TextLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, LevelWarn, FormatText)

	log.Info("skipped")
	log.Warn("kept", "design", "woofer")

	out := buf.String()
	if strings.Contains(out, "skipped") {
		t.Errorf("info record leaked through warn level: %q", out)
	}
	if !strings.Contains(out, "msg=kept") || !strings.Contains(out, "design=woofer") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestDiscard(t *testing.T) {
	Discard().Error("nothing")
}
