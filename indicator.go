package main

import (
	"context"
	"time"
)

const (
	indicatorName = "controller-status"
	pollInterval  = 2 * time.Second

	noticeTitle = "Status"
)

// Indicator shows the controller battery in the host's status area. It owns
// no loop of its own; the host drives it through Start, its timer and Stop.
type Indicator struct {
	source    StatusSource
	newWidget func() Widget
	interval  time.Duration

	host   Host
	widget Widget
	timer  TimerID
	status string
	tier   Tier
}

func NewIndicator(source StatusSource, newWidget func() Widget, interval time.Duration) *Indicator {
	if interval <= 0 {
		interval = pollInterval
	}
	return &Indicator{
		source:    source,
		newWidget: newWidget,
		interval:  interval,
		status:    statusUnknown,
		tier:      TierUnknown,
	}
}

// Start attaches a fresh widget to host, renders once and polls every
// interval until Stop.
func (ind *Indicator) Start(host Host) {
	ind.host = host
	ind.widget = ind.newWidget()
	ind.status = statusUnknown
	ind.tier = TierUnknown
	ind.widget.SetText(statusUnknown)

	host.AddToStatusArea(indicatorName, ind.widget)
	ind.refresh()
	ind.timer = host.Every(ind.interval, ind.refresh)
}

// Stop detaches the widget and cancels the timer. Calling it again, or
// before Start, does nothing.
func (ind *Indicator) Stop() {
	if ind.host == nil {
		return
	}
	if ind.widget != nil {
		ind.host.RemoveFromStatusArea(indicatorName)
		ind.widget.Destroy()
		ind.widget = nil
	}
	if ind.timer != 0 {
		ind.host.Cancel(ind.timer)
	}
	ind.timer = 0
}

// CheckNow polls once, updates the widget and raises a notification.
func (ind *Indicator) CheckNow() {
	if ind.widget == nil {
		return
	}
	status := pollStatus(context.Background(), ind.source)
	ind.render(status)
	ind.host.Notify(noticeTitle, noticeBody(status))
}

func (ind *Indicator) Status() string {
	return ind.status
}

func (ind *Indicator) Tier() Tier {
	return ind.tier
}

func (ind *Indicator) refresh() {
	if ind.widget == nil {
		return
	}
	ind.render(pollStatus(context.Background(), ind.source))
}

// render swaps the tint only when the tier changes. The text is always set.
func (ind *Indicator) render(status string) {
	tier := classify(status)
	if tier != ind.tier {
		if ind.widget.HasTint() {
			ind.widget.RemoveTint()
		}
		if color, ok := tier.tint(); ok {
			ind.widget.ApplyTint(color)
		}
		ind.tier = tier
	}
	ind.widget.SetText(status)
	ind.status = status
}

func noticeBody(status string) string {
	if status == statusUnknown {
		return "Controller is not connected"
	}
	return "Controller is connected: " + status
}
