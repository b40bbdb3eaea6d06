// Author: Toluwalase Mebaanne
// Package models defines the core data structures for LinkDrop.
// These models are shared by the dispatch engine, the history storage,
// and the configuration surface.

package models

// OutcomeKind enumerates the terminal states of a single dispatch.
//
// WHY an enumeration instead of error values:
// A rejected input and a failed launch are routine, user-facing outcomes of a
// dispatch, not exceptional program states. Every invocation reaches exactly
// one of these kinds and reports it through the notification channel - nothing
// is thrown, nothing exits non-zero behind the user's back.
type OutcomeKind string

const (
	// OutcomeCopied means the URL was placed on the system clipboard.
	OutcomeCopied OutcomeKind = "copied_to_clipboard"

	// OutcomeLaunched means the external command was started. LinkDrop does
	// not wait for the process, so "launched" says nothing about its exit.
	OutcomeLaunched OutcomeKind = "launched"

	// OutcomeLaunchFailed means the external command could not be started
	// (missing executable, permission denied, empty template, or any other
	// spawn error).
	OutcomeLaunchFailed OutcomeKind = "launch_failed"

	// OutcomeRejected means the input did not look like a web URL and no
	// action was taken.
	OutcomeRejected OutcomeKind = "rejected_not_url"
)

// previewLimit bounds how much of the raw input appears in notification
// bodies. Clipboard-bound URLs are usually short, but the rejected path can
// receive arbitrary text.
const previewLimit = 80

// Outcome is the terminal result of one dispatch invocation.
// It is consumed by the notification collaborator and the history log;
// it is never persisted in memory across invocations.
type Outcome struct {
	// Kind identifies which terminal state was reached.
	Kind OutcomeKind

	// URL is the raw input string supplied by the caller.
	URL string

	// Command is the configured template string, attached for the launched
	// and launch-failed kinds as diagnostic context.
	Command string

	// Reason carries the spawn error for OutcomeLaunchFailed; nil otherwise.
	Reason error
}

// CopiedToClipboard builds the outcome for a successful clipboard copy.
func CopiedToClipboard(url string) Outcome {
	return Outcome{Kind: OutcomeCopied, URL: url}
}

// Launched builds the outcome for a successfully started external command.
func Launched(url, command string) Outcome {
	return Outcome{Kind: OutcomeLaunched, URL: url, Command: command}
}

// LaunchFailed builds the outcome for a command that could not be started.
// The template string travels with the outcome so the notification can show
// the user exactly which configured command is broken.
func LaunchFailed(url, command string, reason error) Outcome {
	return Outcome{Kind: OutcomeLaunchFailed, URL: url, Command: command, Reason: reason}
}

// RejectedNotURL builds the outcome for input that is not a web URL.
func RejectedNotURL(raw string) Outcome {
	return Outcome{Kind: OutcomeRejected, URL: raw}
}

// Title returns the short notification headline for this outcome.
func (o Outcome) Title() string {
	switch o.Kind {
	case OutcomeCopied:
		return "URL copied"
	case OutcomeLaunched:
		return "Command launched"
	case OutcomeLaunchFailed:
		return "Command failed"
	default:
		return "Not a URL"
	}
}

// Body returns the notification body text for this outcome.
//
// WHY truncation lives here:
// Every consumer of an outcome (beeep on Linux/macOS, toast on Windows)
// wants the same bounded preview, so the model owns it instead of each
// notifier adapter truncating differently.
func (o Outcome) Body() string {
	switch o.Kind {
	case OutcomeCopied:
		return "Copied to clipboard:\n" + preview(o.URL)
	case OutcomeLaunched:
		return "Handed to \"" + o.Command + "\":\n" + preview(o.URL)
	case OutcomeLaunchFailed:
		body := "Could not run \"" + o.Command + "\""
		if o.Reason != nil {
			body += ":\n" + o.Reason.Error()
		}
		return body
	default:
		return "Ignored input that is not a web URL:\n" + preview(o.URL)
	}
}

// preview bounds s to previewLimit characters for display.
func preview(s string) string {
	if len(s) > previewLimit {
		return s[:previewLimit] + "..."
	}
	return s
}
