// Author: Toluwalase Mebaanne
// Package settings persists and loads the LinkDrop configuration record.
//
// WHY a single flat record:
// LinkDrop applies exactly one configured action to every URL it receives.
// There is no rule table, no per-site overrides - just "what do I do with a
// URL" and "which command do I run". Two fields on disk, two fields in memory.
//
// WHY load can never fail:
// LinkDrop is invoked by other programs (browsers, terminals, launchers) that
// hand it a URL and walk away. If a stale or hand-edited settings file could
// crash the helper, a single typo would silently break URL handling across
// the whole desktop. Load therefore folds every read and parse failure into
// the default configuration - the interface makes "cannot fail" visible
// instead of hiding a try/catch somewhere.

package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// Action selects what LinkDrop does with an incoming URL.
type Action string

const (
	// ActionClipboard copies the URL to the system clipboard.
	ActionClipboard Action = "clipboard"

	// ActionCommand hands the URL to the configured external command.
	ActionCommand Action = "command"
)

// Other returns the opposite of the two action tags. The configuration
// surface uses it to toggle between them.
func (a Action) Other() Action {
	if a == ActionCommand {
		return ActionClipboard
	}
	return ActionCommand
}

// appDirName is the per-user configuration directory name.
// WHY a constant: Single source of truth shared by the settings file and
// the dispatch history database.
const appDirName = "linkdrop"

// settingsFileName is the fixed name of the persisted record.
const settingsFileName = "settings.json"

// Settings is the persisted configuration record.
//
// WHY exactly two fields:
// The on-disk contract is a JSON object with an "action" tag and a "cmd"
// template string. Cmd is stored as a single whitespace-separated string
// rather than a structured list so the file stays trivially hand-editable.
type Settings struct {
	// Action is either ActionClipboard or ActionCommand.
	Action Action `json:"action"`

	// Cmd is the command template, tokens separated by whitespace.
	// Tokens exactly equal to %U are replaced by the URL at dispatch time.
	// Ignored entirely when Action is ActionClipboard.
	Cmd string `json:"cmd"`
}

// Default returns the fallback configuration used whenever no valid
// persisted record exists: copy to clipboard, no command template.
func Default() Settings {
	return Settings{
		Action: ActionClipboard,
		Cmd:    "",
	}
}

// Path returns the fixed location of the settings file under the user's
// configuration directory.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDirName, settingsFileName), nil
}

// DataDir returns the directory holding LinkDrop's persisted state
// (settings file and dispatch history database).
func DataDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDirName), nil
}

// Load reads the configuration record from its fixed path.
//
// Load never returns an error. A missing file, an unreadable file, malformed
// JSON, or an unrecognized action tag all resolve to Default(). The dispatch
// path favors availability over correctness here; Save is where failures are
// allowed to surface.
func Load() Settings {
	path, err := Path()
	if err != nil {
		// WHY absorb: no home directory means no settings file could ever
		// have been written, so the default is the only correct answer.
		return Default()
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration record from an explicit path.
// WHY exported: Lets tests and alternate wiring exercise the fallback
// behavior without touching the real per-user configuration directory.
func LoadFrom(path string) Settings {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default()
	}

	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return Default()
	}

	// An action tag outside the two known values means the record does not
	// match the expected structure - treat it the same as a parse failure
	// rather than guessing what the user meant.
	if s.Action != ActionClipboard && s.Action != ActionCommand {
		return Default()
	}

	return s
}

// Save serializes the record to its fixed path, creating parent directories
// as needed.
//
// WHY save surfaces errors while load does not:
// Save is a user-initiated, foreground action from the configuration
// surface. Silently losing a save would be misleading - the user would
// believe their new command template took effect. Write failures therefore
// propagate to the caller for display.
func Save(s Settings) error {
	path, err := Path()
	if err != nil {
		return err
	}
	return SaveTo(path, s)
}

// SaveTo serializes the record to an explicit path.
func SaveTo(path string, s Settings) error {
	// Directory creation failure is deliberately ignored: if the directory
	// already exists MkdirAll is a no-op, and any real problem (permissions,
	// read-only filesystem) resurfaces immediately as a write failure below
	// with a clearer error.
	_ = os.MkdirAll(filepath.Dir(path), 0o755)

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// CommandTemplate tokenizes the stored template string on whitespace.
//
// WHY no quoting support:
// strings.Fields matches the on-disk contract - the template is a plain
// whitespace-separated token list. Arguments containing spaces cannot be
// expressed; that is a known, accepted simplification of the format.
func (s Settings) CommandTemplate() []string {
	return strings.Fields(s.Cmd)
}
