package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
)

type TimerID uint64

// Host is what a status area plugin can ask of the bar.
type Host interface {
	AddToStatusArea(name string, w Widget)
	RemoveFromStatusArea(name string)
	Every(interval time.Duration, fn func()) TimerID
	Cancel(id TimerID)
	Notify(title, body string)
}

type timerMsg struct {
	id TimerID
}

type timer struct {
	interval time.Duration
	fn       func()
}

// statusHost implements Host on top of the bubbletea loop. Timer callbacks
// run from Update, so everything a plugin does happens on that one loop.
type statusHost struct {
	notifier Notifier

	names   []string
	widgets map[string]Widget

	nextID  TimerID
	timers  map[TimerID]timer
	pending []tea.Cmd

	notice string
}

func newStatusHost(notifier Notifier) *statusHost {
	return &statusHost{
		notifier: notifier,
		widgets:  make(map[string]Widget),
		timers:   make(map[TimerID]timer),
	}
}

func (h *statusHost) AddToStatusArea(name string, w Widget) {
	if _, ok := h.widgets[name]; !ok {
		h.names = append(h.names, name)
	}
	h.widgets[name] = w
}

func (h *statusHost) RemoveFromStatusArea(name string) {
	if _, ok := h.widgets[name]; !ok {
		return
	}
	delete(h.widgets, name)
	for i, n := range h.names {
		if n == name {
			h.names = append(h.names[:i], h.names[i+1:]...)
			break
		}
	}
}

func (h *statusHost) Widget(name string) (Widget, bool) {
	w, ok := h.widgets[name]
	return w, ok
}

func (h *statusHost) Every(interval time.Duration, fn func()) TimerID {
	h.nextID++
	id := h.nextID
	h.timers[id] = timer{interval: interval, fn: fn}
	h.pending = append(h.pending, scheduleTimer(id, interval))
	return id
}

func (h *statusHost) Cancel(id TimerID) {
	delete(h.timers, id)
}

// Notify sends a desktop notification and keeps the text for the bar until
// the next timer fires.
func (h *statusHost) Notify(title, body string) {
	h.notice = body
	if h.notifier == nil {
		return
	}
	if err := h.notifier.Notify(title, body); err != nil {
		log.Warn().Err(err).Str("title", title).Msg("notification failed")
	}
}

func (h *statusHost) Notice() string {
	return h.notice
}

// fire runs the callback for a timer tick and schedules the next one.
// Ticks for cancelled timers are dropped.
func (h *statusHost) fire(id TimerID) tea.Cmd {
	t, ok := h.timers[id]
	if !ok {
		return nil
	}
	h.notice = ""
	t.fn()

	if _, ok := h.timers[id]; ok {
		h.pending = append(h.pending, scheduleTimer(id, t.interval))
	}
	return h.flush()
}

// flush hands over commands queued by Every and fire.
func (h *statusHost) flush() tea.Cmd {
	if len(h.pending) == 0 {
		return nil
	}
	cmds := h.pending
	h.pending = nil
	return tea.Batch(cmds...)
}

func scheduleTimer(id TimerID, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return timerMsg{id: id}
	})
}
