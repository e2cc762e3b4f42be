package main

const (
	controllerGlyph = "󰊴"
	chargingGlyph   = "󰂄"
	criticalGlyph   = "󰁺"
)

// batteryGlyphs is ordered from the highest threshold down.
var batteryGlyphs = []struct {
	min   int
	glyph string
}{
	{90, "󰁹"},
	{70, "󰂁"},
	{50, "󰁿"},
	{30, "󰁽"},
	{10, "󰁻"},
}

func batteryIcon(level int, state string) string {
	if state == "charging" {
		return chargingGlyph
	}
	for _, g := range batteryGlyphs {
		if level >= g.min {
			return g.glyph
		}
	}
	return criticalGlyph
}
