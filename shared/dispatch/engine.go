// Author: Toluwalase Mebaanne
// The dispatch engine orchestrates one invocation: validate the input,
// load a fresh settings snapshot, act on it, and report the outcome.
//
// WHY collaborator interfaces instead of direct calls:
// The clipboard, the process table, and the notification daemon are all
// OS-level side effects. Hiding them behind three small interfaces keeps the
// engine a pure state machine that tests can drive with in-memory fakes -
// no clipboard is touched and no process is spawned when testing the
// decision logic itself.

package dispatch

import (
	"errors"

	"github.com/tmair/linkdrop/shared/models"
	"github.com/tmair/linkdrop/shared/settings"
)

// ErrEmptyTemplate is reported when the configured action is "command" but
// the template holds no tokens. Spawning an empty argv is never attempted.
var ErrEmptyTemplate = errors.New("command template is empty")

// Clipboard receives text to place on the system clipboard.
// WHY no error return: The dispatch contract observes no result from the
// clipboard collaborator. The adapter logs its own failures.
type Clipboard interface {
	SetText(text string)
}

// Launcher starts an external process from an argument vector and reports
// spawn errors synchronously. The first element is the executable name,
// resolved via the environment's standard lookup rules. The launch is
// fire-and-forget: the engine never waits for or observes the exit status.
type Launcher interface {
	Start(argv []string) error
}

// Notifier displays a short transient message to the user.
// Fire-and-forget; no acknowledgment is observed.
type Notifier interface {
	Notify(title, body string)
}

// Engine is the dispatch decision engine.
//
// WHY LoadSettings is an injected func:
// Configuration enters the engine as an explicit loaded snapshot, never a
// mutable singleton. The engine reads a fresh snapshot per invocation
// (LinkDrop is a short-lived process, re-invoked per URL) and never writes
// configuration itself - mutation belongs to the configuration surface.
type Engine struct {
	Clipboard    Clipboard
	Launcher     Launcher
	Notifier     Notifier
	LoadSettings func() settings.Settings
}

// NewEngine wires an engine from its collaborators.
func NewEngine(cb Clipboard, launcher Launcher, notifier Notifier, load func() settings.Settings) *Engine {
	return &Engine{
		Clipboard:    cb,
		Launcher:     launcher,
		Notifier:     notifier,
		LoadSettings: load,
	}
}

// Dispatch runs the state machine for one raw input and returns the
// terminal outcome. Every branch reaches a defined outcome that is also
// reported through the notifier; no branch panics or propagates an error
// past the engine.
//
// Validation happens before the settings load, so rejected input never
// touches the filesystem, the clipboard, or the process table.
func (e *Engine) Dispatch(raw string) models.Outcome {
	if !IsURL(raw) {
		return e.report(models.RejectedNotURL(raw))
	}

	cfg := e.LoadSettings()

	if cfg.Action == settings.ActionCommand {
		return e.report(e.launch(cfg, raw))
	}

	// Clipboard is both the explicit tag and the load fallback, so it is
	// the default arm. The template is ignored entirely on this path.
	e.Clipboard.SetText(raw)
	return e.report(models.CopiedToClipboard(raw))
}

// launch expands the template and attempts the process start.
func (e *Engine) launch(cfg settings.Settings, url string) models.Outcome {
	argv := Expand(cfg.CommandTemplate(), url)
	if len(argv) == 0 {
		return models.LaunchFailed(url, cfg.Cmd, ErrEmptyTemplate)
	}

	if err := e.Launcher.Start(argv); err != nil {
		// Launch failure is local and non-fatal: the invocation continues
		// to its terminal outcome carrying the template for diagnosis.
		return models.LaunchFailed(url, cfg.Cmd, err)
	}

	return models.Launched(url, cfg.Cmd)
}

// report sends the outcome to the notification collaborator and passes it
// through so callers (history logging, tests) see the same value the user
// was shown.
func (e *Engine) report(o models.Outcome) models.Outcome {
	e.Notifier.Notify(o.Title(), o.Body())
	return o
}
