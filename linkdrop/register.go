// Author: Toluwalase Mebaanne
// Package main provides best-effort default-browser registration.
//
// WHY this lives in the binary and not the engine:
// Registration talks to the OS about who handles the http/https URL class.
// The dispatch core never calls it - it is an action the user triggers from
// the configuration surface, and its failure modes (unsupported desktop,
// missing xdg-settings) only ever produce a status message.

package main

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// desktopEntryName is the .desktop entry LinkDrop installs under on
// freedesktop systems.
const desktopEntryName = "linkdrop.desktop"

// registerDefaultBrowser asks the OS to make LinkDrop the handler for web
// URLs.
func registerDefaultBrowser() error {
	switch runtime.GOOS {
	case "linux":
		out, err := exec.Command("xdg-settings", "set", "default-web-browser", desktopEntryName).CombinedOutput()
		if err != nil {
			return fmt.Errorf("xdg-settings failed: %v (%s)", err, strings.TrimSpace(string(out)))
		}
		return nil
	default:
		return fmt.Errorf("default-browser registration is not supported on %s", runtime.GOOS)
	}
}

// isDefaultBrowser reports whether LinkDrop is currently the registered
// handler. Any query failure reads as "no" - the configuration surface only
// uses this for display.
func isDefaultBrowser() bool {
	if runtime.GOOS != "linux" {
		return false
	}

	out, err := exec.Command("xdg-settings", "check", "default-web-browser", desktopEntryName).Output()
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(out)) == "yes"
}
