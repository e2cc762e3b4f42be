package main

import (
	"github.com/charmbracelet/lipgloss"
)

// Widget is the icon and label pair the host draws in its status area.
type Widget interface {
	SetText(text string)
	HasTint() bool
	RemoveTint()
	ApplyTint(color lipgloss.Color)
	Destroy()
	Render() string
}

type iconLabel struct {
	icon   string
	text   string
	tint   lipgloss.Color
	tinted bool
	gone   bool
}

func newIconLabel() *iconLabel {
	return &iconLabel{
		icon: controllerGlyph,
		text: statusUnknown,
	}
}

func (w *iconLabel) SetText(text string) {
	w.text = text
}

func (w *iconLabel) HasTint() bool {
	return w.tinted
}

func (w *iconLabel) RemoveTint() {
	w.tint = ""
	w.tinted = false
}

func (w *iconLabel) ApplyTint(color lipgloss.Color) {
	w.tint = color
	w.tinted = true
}

func (w *iconLabel) Destroy() {
	w.gone = true
}

func (w *iconLabel) Render() string {
	if w.gone {
		return ""
	}

	icon := iconStyle
	if w.tinted {
		icon = icon.Foreground(w.tint)
	}
	return controllerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Center, icon.Render(w.icon), " ", w.text),
	)
}
