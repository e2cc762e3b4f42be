package main

import (
	"github.com/gen2brain/beeep"
	"github.com/pkg/errors"
)

type Notifier interface {
	Notify(title, body string) error
}

type desktopNotifier struct {
	icon string
}

func newDesktopNotifier() *desktopNotifier {
	beeep.AppName = "controller-status"
	return &desktopNotifier{icon: "applications-games-symbolic"}
}

func (n *desktopNotifier) Notify(title, body string) error {
	if err := beeep.Notify(title, body, n.icon); err != nil {
		return errors.Wrap(err, "desktop notification")
	}
	return nil
}
