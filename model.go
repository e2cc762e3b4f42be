package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
)

type model struct {
	cfg       *Config
	host      *statusHost
	indicator *Indicator
	modules   []Module

	width  int
	height int
}

func initialModel(cfg *Config, source StatusSource, notifier Notifier) model {
	m := model{
		cfg:     cfg,
		host:    newStatusHost(notifier),
		modules: buildModules(cfg),
	}
	if cfg.enabled("controller") {
		m.indicator = NewIndicator(source, func() Widget { return newIconLabel() }, cfg.pollEvery())
	}
	return m
}

func (m model) Init() tea.Cmd {
	if m.indicator != nil {
		m.indicator.Start(m.host)
	}
	m.updateModules()
	return tea.Batch(m.host.flush(), tickCmd(m.cfg.refreshEvery()))
}

func (m model) updateModules() {
	for _, mod := range m.modules {
		if err := mod.Update(); err != nil {
			log.Debug().Err(err).Str("module", mod.Name()).Msg("module update failed")
		}
	}
}
