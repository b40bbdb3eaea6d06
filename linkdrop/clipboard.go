// Author: Toluwalase Mebaanne
// Package main provides the system clipboard adapter for LinkDrop.
//
// WHY a cross-platform clipboard library (github.com/atotto/clipboard):
// Clipboard access is deeply OS-specific: macOS uses pbcopy/pbpaste, Linux
// uses xclip/xsel (X11) or wl-copy/wl-paste (Wayland), and Windows uses
// Win32 APIs. atotto/clipboard abstracts this behind a simple Read/Write
// interface, letting LinkDrop support all three platforms with zero
// OS-specific code.

package main

import (
	"log"

	"github.com/atotto/clipboard"
)

// systemClipboard adapts atotto/clipboard to the engine's Clipboard
// interface.
//
// WHY no error surfaces past SetText:
// The dispatch contract observes no result from the clipboard collaborator.
// A failed write is logged for debugging, but the invocation still reaches
// its terminal outcome - a dispatch helper invoked by another process must
// never crash over a locked clipboard.
type systemClipboard struct{}

func (systemClipboard) SetText(text string) {
	if err := clipboard.WriteAll(text); err != nil {
		log.Printf("ERROR: failed to write clipboard: %v", err)
	}
}
