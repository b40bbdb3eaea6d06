// Author: Toluwalase Mebaanne
// Package models defines the core data structures for LinkDrop.
// These models are shared by the dispatch engine, the history storage,
// and the configuration surface.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Record is one row of the dispatch history log.
//
// WHY keep a history at all:
// A dispatch helper runs and exits in well under a second. When a launch
// fails or a URL silently lands on the clipboard, the history is the only
// place the user can look afterwards to see what LinkDrop actually did.
type Record struct {
	// RecordID uniquely identifies this dispatch.
	// WHY: Makes inserts idempotent - retrying a write cannot duplicate a row.
	RecordID string `json:"record_id" db:"record_id"`

	// URL is the raw input that was dispatched.
	URL string `json:"url" db:"url"`

	// Action is the configured action tag in effect at dispatch time
	// ("clipboard" or "command").
	Action string `json:"action" db:"action"`

	// Command is the template string in effect at dispatch time; empty for
	// clipboard dispatches.
	Command string `json:"command" db:"command"`

	// Outcome is the terminal OutcomeKind the dispatch reached.
	Outcome string `json:"outcome" db:"outcome"`

	// CreatedUTC records when the dispatch happened.
	CreatedUTC time.Time `json:"created_utc" db:"created_utc"`
}

// NewRecord builds a history row from a dispatch outcome and the action tag
// that was in effect.
func NewRecord(o Outcome, action string) *Record {
	return &Record{
		RecordID:   uuid.New().String(),
		URL:        o.URL,
		Action:     action,
		Command:    o.Command,
		Outcome:    string(o.Kind),
		CreatedUTC: time.Now().UTC(),
	}
}
