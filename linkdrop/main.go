// Author: Toluwalase Mebaanne
// Package main is the entry point for LinkDrop, a URL dispatch helper.
//
// Invocation contract: one optional positional argument.
//   - Present: dispatch that URL (copy to clipboard or hand to the
//     configured command) and exit.
//   - Absent: open the terminal configuration surface.
//
// WHY a separate main.go:
// Keeps wiring isolated from the adapters (clipboard.go, notifications.go,
// launcher.go) and the configuration surface (tui.go). The dispatch decision
// logic itself lives in shared/dispatch so it can be tested without touching
// the clipboard or the process table.

package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/tmair/linkdrop/shared/dispatch"
	"github.com/tmair/linkdrop/shared/history"
	"github.com/tmair/linkdrop/shared/models"
	"github.com/tmair/linkdrop/shared/settings"
)

// historyFileName is the dispatch log database, stored next to the
// settings file.
const historyFileName = "history.db"

func main() {
	// A positional argument means "dispatch this URL"; its absence means
	// "open the configuration surface". That is the entire CLI.
	if len(os.Args) > 1 {
		runDispatch(os.Args[1])
		return
	}

	runConfigSurface()
}

// runDispatch performs one dispatch invocation.
//
// WHY the process always exits zero from here:
// Rejection and launch failure are routine, user-facing outcomes reported
// through the notification channel, not program errors. The caller that
// handed us the URL (browser, launcher, terminal) has nothing useful to do
// with a non-zero exit, and a crash would be invisible to the user.
func runDispatch(raw string) {
	engine := dispatch.NewEngine(
		systemClipboard{},
		processLauncher{},
		desktopNotifier{},
		settings.Load,
	)

	outcome := engine.Dispatch(raw)
	log.Printf("Dispatch outcome: %s (%s)", outcome.Kind, outcome.Title())

	// The action tag recorded in history follows from the outcome: rejected
	// input never consulted the settings, so no action was in effect.
	action := ""
	switch outcome.Kind {
	case models.OutcomeCopied:
		action = string(settings.ActionClipboard)
	case models.OutcomeLaunched, models.OutcomeLaunchFailed:
		action = string(settings.ActionCommand)
	}

	recordOutcome(models.NewRecord(outcome, action))
}

// recordOutcome appends the dispatch to the history log, best-effort.
// A broken or missing database must never block or fail a dispatch, so
// every error on this path is logged and absorbed.
func recordOutcome(rec *models.Record) {
	dir, err := settings.DataDir()
	if err != nil {
		log.Printf("WARN: no data directory for history: %v", err)
		return
	}
	// SQLite creates the database file but not its parent directories.
	_ = os.MkdirAll(dir, 0o755)

	store, err := history.NewStorage(filepath.Join(dir, historyFileName))
	if err != nil {
		log.Printf("WARN: failed to open dispatch history: %v", err)
		return
	}
	defer store.Close()

	if err := store.Insert(rec); err != nil {
		log.Printf("WARN: failed to record dispatch: %v", err)
	}
}

// runConfigSurface opens the terminal configuration UI.
func runConfigSurface() {
	// --- Step 1: Load the current settings snapshot ---------------------------
	// Load never fails; a missing or corrupt record shows up as the default
	// configuration, exactly as it would behave at dispatch time.
	cfg := settings.Load()

	// --- Step 2: Load recent history, best-effort -----------------------------
	// The surface is still fully usable for configuration when the history
	// database is unavailable; the list simply renders empty.
	var records []models.Record
	if dir, err := settings.DataDir(); err == nil {
		_ = os.MkdirAll(dir, 0o755)
		if store, err := history.NewStorage(filepath.Join(dir, historyFileName)); err == nil {
			records, err = store.Recent(historyDisplayLimit)
			if err != nil {
				log.Printf("WARN: failed to read dispatch history: %v", err)
			}
			store.Close()
		} else {
			log.Printf("WARN: failed to open dispatch history: %v", err)
		}
	}

	// --- Step 3: Run the TUI --------------------------------------------------
	// Ctrl+C is handled by the bubbletea event loop as a quit key, so
	// interactive termination stays responsive; no signal is captured
	// beyond that.
	if err := runConfigUI(cfg, records, settings.Save, registerDefaultBrowser); err != nil {
		log.Fatalf("FATAL: configuration surface failed: %v", err)
	}
}
