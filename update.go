package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type tickMsg time.Time

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft && m.onIndicator(msg.X) {
			return m, m.checkNow()
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			if m.indicator != nil {
				m.indicator.Stop()
			}
			return m, tea.Quit
		case "c", "enter":
			return m, m.checkNow()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		m.updateModules()
		return m, tickCmd(m.cfg.refreshEvery())

	case timerMsg:
		return m, m.host.fire(msg.id)
	}
	return m, nil
}

func (m model) checkNow() tea.Cmd {
	if m.indicator == nil {
		return nil
	}
	m.indicator.CheckNow()
	return m.host.flush()
}

// onIndicator reports whether column x falls on the indicator, which is
// always drawn first.
func (m model) onIndicator(x int) bool {
	w, ok := m.host.Widget(indicatorName)
	if !ok {
		return false
	}
	return x < lipgloss.Width(w.Render())
}
