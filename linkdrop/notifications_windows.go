//go:build windows

// Author: Toluwalase Mebaanne

package main

import (
	"log"

	"gopkg.in/toast.v1"
)

// appName is the title prefix shown in notification popups.
const appName = "LinkDrop"

// desktopNotifier adapts Windows toast notifications to the engine's
// Notifier interface.
type desktopNotifier struct{}

func (desktopNotifier) Notify(title, body string) {
	notification := toast.Notification{
		AppID:   appName,
		Title:   appName + " - " + title,
		Message: body,
		Icon:    "",
		Actions: nil,
	}

	if err := notification.Push(); err != nil {
		log.Printf("WARN: failed to show notification: %v", err)
	}
}
