// Author: Toluwalase Mebaanne
// Package dispatch implements the LinkDrop dispatch decision engine:
// URL validation, command-template expansion, and the action-selection
// state machine that turns one raw input into one reported outcome.

package dispatch

import "strings"

// IsURL reports whether s is acceptable for dispatch.
//
// Acceptance is deliberately permissive: anything beginning with http:// or
// https:// in any letter case passes, with no host or path parsing. The
// validator's only job is to reject input that is obviously not a web URL
// (arbitrary shell text, file paths, stray clipboard content) before it
// reaches the clipboard or a command line - full URL grammar validation is
// the receiving browser's problem, not LinkDrop's.
func IsURL(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
