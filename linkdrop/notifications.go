//go:build !windows

// Author: Toluwalase Mebaanne
// Package main provides desktop notification support for LinkDrop.
//
// WHY notifications at all:
// A dispatch invocation lives for milliseconds and owns no window. Without a
// transient notification the user cannot tell whether their click copied a
// URL, launched a command, or was rejected - the notification channel is the
// only user-visible surface the dispatch path has.
//
// WHY github.com/gen2brain/beeep:
// Native notification APIs are OS-specific (NSUserNotificationCenter on
// macOS, libnotify/D-Bus on Linux). beeep provides a single cross-platform
// Go API that maps to the correct native mechanism on each OS. Windows gets
// its own toast-based variant in notifications_windows.go.

package main

import (
	"log"

	"github.com/gen2brain/beeep"
)

// appName is the title prefix shown in notification popups.
const appName = "LinkDrop"

// desktopNotifier adapts beeep to the engine's Notifier interface.
type desktopNotifier struct{}

// Notify displays a transient desktop notification.
//
// WHY log errors but never propagate:
// Notification failure should never change a dispatch outcome - by the time
// we get here the clipboard write or process launch already happened.
func (desktopNotifier) Notify(title, body string) {
	if err := beeep.Notify(appName+" - "+title, body, ""); err != nil {
		log.Printf("WARN: failed to show notification: %v", err)
	}
}
