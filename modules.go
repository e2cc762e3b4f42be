package main

import (
	"fmt"
	"time"
)

// Module is a bar segment refreshed on the bar tick. The controller
// indicator is not one: it runs on its own timer through Host.
type Module interface {
	Name() string
	Update() error
	Render() string
}

func buildModules(cfg *Config) []Module {
	modules := []Module{}
	for _, name := range cfg.Modules {
		switch name {
		case "clock":
			modules = append(modules, &ClockModule{})
		case "cpu":
			modules = append(modules, &CPUModule{})
		case "memory":
			modules = append(modules, &MemoryModule{})
		case "battery":
			modules = append(modules, &BatteryModule{state: "unknown"})
		}
	}
	return modules
}

type ClockModule struct {
	now time.Time
}

func (m *ClockModule) Name() string {
	return "clock"
}

func (m *ClockModule) Update() error {
	m.now = time.Now()
	return nil
}

func (m *ClockModule) Render() string {
	return clockStyle.Render(m.now.Format("15:04"))
}

type CPUModule struct {
	usage float64
}

func (m *CPUModule) Name() string {
	return "cpu"
}

func (m *CPUModule) Update() error {
	usage, err := fetchCPUUsage()
	if err != nil {
		return err
	}
	m.usage = usage
	return nil
}

func (m *CPUModule) Render() string {
	return cpuStyle.Render(fmt.Sprintf("󰻠 %.1f%%", m.usage))
}

type MemoryModule struct {
	usage float64
}

func (m *MemoryModule) Name() string {
	return "memory"
}

func (m *MemoryModule) Update() error {
	usage, err := fetchMemoryUsage()
	if err != nil {
		return err
	}
	m.usage = usage
	return nil
}

func (m *MemoryModule) Render() string {
	return memoryStyle.Render(fmt.Sprintf("󰍛 %.1f%%", m.usage))
}

// BatteryModule shows the host battery, not the controller.
type BatteryModule struct {
	level int
	state string
}

func (m *BatteryModule) Name() string {
	return "battery"
}

func (m *BatteryModule) Update() error {
	level, state, err := fetchBatteryStats()
	if err != nil {
		m.level, m.state = 0, "unknown"
		return err
	}
	m.level, m.state = level, state
	return nil
}

func (m *BatteryModule) Render() string {
	if m.state == "unknown" {
		return ""
	}
	label := fmt.Sprintf("%s %d%%", batteryIcon(m.level, m.state), m.level)
	switch {
	case m.state == "charging":
		return batteryChargingStyle.Render(label)
	case m.level < 20:
		return batteryLowStyle.Render(label)
	default:
		return batteryStyle.Render(label)
	}
}
