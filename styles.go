package main

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	primary = lipgloss.Color("4")
	text    = lipgloss.Color("3")
	purple  = lipgloss.Color("6")
	pink    = lipgloss.Color("5")
	green   = lipgloss.Color("7")
	red     = lipgloss.Color("9")

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#D7BAFF")).
			Padding(0, 1).
			Foreground(text)

	activeBoxStyle = boxStyle.
			BorderForeground(primary).
			Foreground(primary).
			Bold(true)

	controllerStyle = boxStyle

	iconStyle = lipgloss.NewStyle()

	noticeStyle = lipgloss.NewStyle().
			Foreground(primary).
			Italic(true).
			Padding(1, 1, 0)

	cpuStyle = boxStyle.
			Foreground(pink).
			BorderForeground(purple)

	memoryStyle = boxStyle.
			Foreground(pink).
			BorderForeground(pink)

	batteryStyle = boxStyle

	batteryChargingStyle = boxStyle.
				Foreground(green).
				BorderForeground(green)

	batteryLowStyle = boxStyle.
			Foreground(red).
			BorderForeground(red)

	clockStyle = activeBoxStyle
)

// applyColors replaces the border and text colours with the configured ones.
func applyColors(c Colors) {
	border := lipgloss.Color(c.Primary)
	fg := lipgloss.Color(c.Text)

	boxStyle = boxStyle.BorderForeground(border).Foreground(fg)
	controllerStyle = boxStyle
	batteryStyle = boxStyle
	clockStyle = boxStyle.
		BorderForeground(border).
		Foreground(border).
		Bold(true)
	noticeStyle = noticeStyle.
		Foreground(border).
		Background(lipgloss.Color(c.Surface))
}
