package main

import (
	"math"

	"github.com/distatus/battery"
	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

func fetchCPUUsage() (float64, error) {
	cpuPercent, err := cpu.Percent(0, false)
	if err != nil {
		return 0, errors.Wrap(err, "cpu percent")
	}
	if len(cpuPercent) == 0 {
		return 0, errors.New("cpu percent: no samples")
	}
	return math.Round(cpuPercent[0]*10) / 10, nil
}

func fetchMemoryUsage() (float64, error) {
	memInfo, err := mem.VirtualMemory()
	if err != nil {
		return 0, errors.Wrap(err, "virtual memory")
	}
	return math.Round(memInfo.UsedPercent*10) / 10, nil
}

// fetchBatteryStats reads the first host battery. GetAll may return partial
// errors alongside usable batteries, so those are only fatal when nothing
// was read.
func fetchBatteryStats() (int, string, error) {
	batteries, err := battery.GetAll()
	var bat *battery.Battery
	for _, b := range batteries {
		if b != nil && b.Full > 0 {
			bat = b
			break
		}
	}
	if bat == nil {
		if err == nil {
			err = errors.New("no battery")
		}
		return 0, "unknown", errors.Wrap(err, "host battery")
	}

	level := int(bat.Current / bat.Full * 100)
	state := "discharging"

	switch bat.State.Raw {
	case battery.Charging:
		state = "charging"
	case battery.Full:
		state = "full"
	}
	return level, state, nil
}
