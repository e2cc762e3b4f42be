package main

import (
	"strings"
	"testing"
)

func TestIconLabel(t *testing.T) {
	w := newIconLabel()

	if w.HasTint() {
		t.Error("new widget should be untinted")
	}
	if !strings.Contains(w.Render(), statusUnknown) {
		t.Errorf("Render() = %q, want sentinel", w.Render())
	}

	w.SetText("42%")
	w.ApplyTint(tintYellow)
	if !w.HasTint() || w.tint != tintYellow {
		t.Errorf("tint = %q, want yellow", w.tint)
	}
	out := w.Render()
	if !strings.Contains(out, "42%") || !strings.Contains(out, controllerGlyph) {
		t.Errorf("Render() = %q", out)
	}

	w.RemoveTint()
	if w.HasTint() {
		t.Error("RemoveTint() left a tint")
	}

	w.Destroy()
	if w.Render() != "" {
		t.Errorf("Render() after Destroy = %q, want empty", w.Render())
	}
}

func TestBatteryIcon(t *testing.T) {
	tests := []struct {
		level int
		state string
		want  string
	}{
		{50, "charging", chargingGlyph},
		{100, "full", "󰁹"},
		{90, "discharging", "󰁹"},
		{75, "discharging", "󰂁"},
		{50, "discharging", "󰁿"},
		{35, "discharging", "󰁽"},
		{10, "discharging", "󰁻"},
		{5, "discharging", criticalGlyph},
	}
	for _, tt := range tests {
		if got := batteryIcon(tt.level, tt.state); got != tt.want {
			t.Errorf("batteryIcon(%d, %q) = %q, want %q", tt.level, tt.state, got, tt.want)
		}
	}
}

func TestBatteryModule_Render(t *testing.T) {
	m := &BatteryModule{state: "unknown"}
	if m.Render() != "" {
		t.Error("unknown battery should render nothing")
	}

	m.level, m.state = 15, "discharging"
	if !strings.Contains(m.Render(), "15%") {
		t.Errorf("Render() = %q", m.Render())
	}
}
