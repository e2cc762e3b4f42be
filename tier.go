package main

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Tier int

const (
	TierUnknown Tier = iota
	TierLow
	TierMedium
	TierHigh
)

func (t Tier) String() string {
	switch t {
	case TierLow:
		return "low"
	case TierMedium:
		return "medium"
	case TierHigh:
		return "high"
	default:
		return "unknown"
	}
}

var (
	tintGreen  = lipgloss.Color("#00FF00")
	tintYellow = lipgloss.Color("#FFFF00")
	tintRed    = lipgloss.Color("#FF0000")
)

// tint reports the icon colour for t. Unknown has none.
func (t Tier) tint() (lipgloss.Color, bool) {
	switch t {
	case TierHigh:
		return tintGreen, true
	case TierMedium:
		return tintYellow, true
	case TierLow:
		return tintRed, true
	default:
		return "", false
	}
}

func classify(status string) Tier {
	if status == statusUnknown {
		return TierUnknown
	}

	n, ok := leadingInt(strings.TrimSuffix(status, "%"))
	switch {
	case !ok:
		return TierUnknown
	case n > 50:
		return TierHigh
	case n > 20:
		return TierMedium
	case n > 0:
		return TierLow
	default:
		return TierUnknown
	}
}

// leadingInt parses the integer at the start of s, so "85.5" gives 85.
func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
