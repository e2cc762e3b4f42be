package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m model) View() string {
	if m.width == 0 {
		return "Initializing.."
	}

	statusArea := renderStatusArea(m.host)
	notice := renderNotice(m.host.Notice())
	sysInfo := renderModules(m.modules)

	leftWidth := lipgloss.Width(statusArea)
	centerWidth := lipgloss.Width(notice)
	rightWidth := lipgloss.Width(sysInfo)

	availableSpace := m.width - leftWidth - centerWidth - rightWidth
	if availableSpace < 0 {
		availableSpace = 0
	}
	leftPadding := availableSpace / 3
	rightPadding := availableSpace - leftPadding

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		statusArea,
		strings.Repeat(" ", leftPadding),
		notice,
		strings.Repeat(" ", rightPadding),
		sysInfo,
	)
}

func renderStatusArea(h *statusHost) string {
	widgets := []string{}
	for _, name := range h.names {
		widgets = append(widgets, h.widgets[name].Render())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, widgets...)
}

func renderNotice(notice string) string {
	if notice == "" {
		return ""
	}
	return noticeStyle.Render(notice)
}

func renderModules(modules []Module) string {
	rendered := []string{}
	for _, mod := range modules {
		if out := mod.Render(); out != "" {
			rendered = append(rendered, out)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
