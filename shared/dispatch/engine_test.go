package dispatch

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmair/linkdrop/shared/models"
	"github.com/tmair/linkdrop/shared/settings"
)

// fakeClipboard records every SetText call.
type fakeClipboard struct {
	texts []string
}

func (f *fakeClipboard) SetText(text string) {
	f.texts = append(f.texts, text)
}

// fakeLauncher records every Start call and returns a configured error.
type fakeLauncher struct {
	argvs [][]string
	err   error
}

func (f *fakeLauncher) Start(argv []string) error {
	f.argvs = append(f.argvs, argv)
	return f.err
}

// fakeNotifier records every notification.
type fakeNotifier struct {
	titles []string
	bodies []string
}

func (f *fakeNotifier) Notify(title, body string) {
	f.titles = append(f.titles, title)
	f.bodies = append(f.bodies, body)
}

// harness bundles an engine with its fakes and a counter of settings loads.
type harness struct {
	engine    *Engine
	clipboard *fakeClipboard
	launcher  *fakeLauncher
	notifier  *fakeNotifier
	loads     int
}

func newHarness(cfg settings.Settings) *harness {
	h := &harness{
		clipboard: &fakeClipboard{},
		launcher:  &fakeLauncher{},
		notifier:  &fakeNotifier{},
	}
	h.engine = NewEngine(h.clipboard, h.launcher, h.notifier, func() settings.Settings {
		h.loads++
		return cfg
	})
	return h
}

func TestDispatchRejectsNonURL(t *testing.T) {
	h := newHarness(settings.Settings{Action: settings.ActionCommand, Cmd: "open %U"})

	got := h.engine.Dispatch("not-a-url")

	assert.Equal(t, models.OutcomeRejected, got.Kind)
	assert.Equal(t, "not-a-url", got.URL)

	// Rejection happens before any side effect: no clipboard write, no
	// process launch, and no settings load.
	assert.Empty(t, h.clipboard.texts)
	assert.Empty(t, h.launcher.argvs)
	assert.Zero(t, h.loads)

	// The rejection is still reported through the notification channel.
	require.Len(t, h.notifier.titles, 1)
	assert.Equal(t, "Not a URL", h.notifier.titles[0])
}

func TestDispatchClipboardAction(t *testing.T) {
	h := newHarness(settings.Settings{Action: settings.ActionClipboard, Cmd: "open %U"})

	got := h.engine.Dispatch("https://example.com")

	assert.Equal(t, models.OutcomeCopied, got.Kind)
	assert.Equal(t, []string{"https://example.com"}, h.clipboard.texts)

	// The template is ignored entirely on the clipboard path.
	assert.Empty(t, h.launcher.argvs)

	assert.Equal(t, 1, h.loads)
	require.Len(t, h.notifier.titles, 1)
	assert.Equal(t, "URL copied", h.notifier.titles[0])
}

func TestDispatchCommandActionLaunches(t *testing.T) {
	h := newHarness(settings.Settings{Action: settings.ActionCommand, Cmd: "open %U --new-tab"})

	got := h.engine.Dispatch("https://example.com")

	assert.Equal(t, models.OutcomeLaunched, got.Kind)
	assert.Equal(t, "open %U --new-tab", got.Command)

	require.Len(t, h.launcher.argvs, 1)
	assert.Equal(t, []string{"open", "https://example.com", "--new-tab"}, h.launcher.argvs[0])
	assert.Empty(t, h.clipboard.texts)
}

func TestDispatchCommandLaunchFailure(t *testing.T) {
	h := newHarness(settings.Settings{Action: settings.ActionCommand, Cmd: "run %U"})
	h.launcher.err = errors.New("executable not found")

	got := h.engine.Dispatch("https://example.com")

	assert.Equal(t, models.OutcomeLaunchFailed, got.Kind)
	assert.Equal(t, "run %U", got.Command)
	require.Error(t, got.Reason)
	assert.Contains(t, got.Reason.Error(), "executable not found")

	// The failure reaches the user through the notification channel with
	// the offending template attached.
	require.Len(t, h.notifier.bodies, 1)
	assert.Contains(t, h.notifier.bodies[0], "run %U")
	assert.Contains(t, h.notifier.bodies[0], "executable not found")
}

func TestDispatchCommandEmptyTemplate(t *testing.T) {
	h := newHarness(settings.Settings{Action: settings.ActionCommand, Cmd: "   "})

	got := h.engine.Dispatch("https://example.com")

	assert.Equal(t, models.OutcomeLaunchFailed, got.Kind)
	assert.ErrorIs(t, got.Reason, ErrEmptyTemplate)

	// An empty argv is never handed to the launcher.
	assert.Empty(t, h.launcher.argvs)
}

func TestDispatchLoadsFreshSettingsPerInvocation(t *testing.T) {
	h := newHarness(settings.Settings{Action: settings.ActionClipboard})

	h.engine.Dispatch("https://one.example")
	h.engine.Dispatch("https://two.example")

	assert.Equal(t, 2, h.loads)
}

func TestDispatchDefaultSettingsCopyToClipboard(t *testing.T) {
	// The load fallback (default configuration) must behave identically to
	// an explicit clipboard configuration.
	h := newHarness(settings.Default())

	got := h.engine.Dispatch("HTTPS://Example.COM")

	assert.Equal(t, models.OutcomeCopied, got.Kind)
	assert.Equal(t, []string{"HTTPS://Example.COM"}, h.clipboard.texts)
}
