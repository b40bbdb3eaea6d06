// Author: Toluwalase Mebaanne
// Package main provides the terminal configuration surface for LinkDrop.
//
// WHY a TUI and not a settings flag:
// The no-argument invocation is the user's whole configuration experience:
// pick the dispatch action, edit the command template, see what LinkDrop
// has been doing. A bubbletea model gives that one screen with immediate
// feedback on save failures, which a fire-and-forget flag parser cannot.
//
// The surface mutates configuration only through the injected save
// function; the dispatch engine never writes settings, and this file never
// dispatches URLs.

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tmair/linkdrop/shared/models"
	"github.com/tmair/linkdrop/shared/settings"
)

// historyDisplayLimit bounds how many recent dispatches the surface shows.
const historyDisplayLimit = 10

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	docStyle      = lipgloss.NewStyle().Margin(1, 2)
)

// keyMap defines the surface's keybindings via bubbles/key so they render
// consistently in the help line.
type keyMap struct {
	Toggle   key.Binding
	Edit     key.Binding
	Save     key.Binding
	Register key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Toggle: key.NewBinding(
			key.WithKeys("tab", "left", "right", " "),
			key.WithHelp("tab/space", "toggle action"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit command"),
		),
		Save: key.NewBinding(
			key.WithKeys("s", "enter"),
			key.WithHelp("s/enter", "save"),
		),
		Register: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "register as default browser"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// configModel holds the surface's state for one session.
type configModel struct {
	cfg     settings.Settings
	input   textinput.Model
	editing bool

	records   []models.Record
	isDefault bool

	status string
	err    error

	keys     keyMap
	quitting bool

	// save and register are injected so tests can exercise the model
	// without writing real settings or shelling out to xdg-settings.
	save     func(settings.Settings) error
	register func() error
}

// newConfigModel builds the surface around a loaded settings snapshot.
func newConfigModel(cfg settings.Settings, records []models.Record,
	save func(settings.Settings) error, register func() error) configModel {

	input := textinput.New()
	input.Placeholder = "e.g. firefox --new-tab %U"
	input.CharLimit = 256
	input.Width = 48
	input.SetValue(cfg.Cmd)

	return configModel{
		cfg:       cfg,
		input:     input,
		records:   records,
		isDefault: isDefaultBrowser(),
		keys:      defaultKeyMap(),
		save:      save,
		register:  register,
	}
}

// runConfigUI runs the surface until the user quits.
func runConfigUI(cfg settings.Settings, records []models.Record,
	save func(settings.Settings) error, register func() error) error {

	m := newConfigModel(cfg, records, save, register)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m configModel) Init() tea.Cmd {
	return nil
}

func (m configModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	// While the template input has focus, almost every key belongs to it.
	if m.editing {
		switch keyMsg.Type {
		case tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEsc:
			return m.stopEditing(), nil
		case tea.KeyEnter:
			return m.stopEditing().saveSettings(), nil
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Toggle):
		m.cfg.Action = m.cfg.Action.Other()
		m.status = ""
		return m, nil

	case key.Matches(keyMsg, m.keys.Edit):
		m.editing = true
		m.status = ""
		return m, m.input.Focus()

	case key.Matches(keyMsg, m.keys.Save):
		return m.saveSettings(), nil

	case key.Matches(keyMsg, m.keys.Register):
		if err := m.register(); err != nil {
			m.err = err
			m.status = ""
		} else {
			m.err = nil
			m.status = "Registered as default browser."
			m.isDefault = true
		}
		return m, nil
	}

	return m, nil
}

// stopEditing blurs the input and carries its value into the settings
// snapshot (unsaved until the user saves).
func (m configModel) stopEditing() configModel {
	m.editing = false
	m.input.Blur()
	m.cfg.Cmd = m.input.Value()
	return m
}

// saveSettings persists the current snapshot and surfaces the result
// inline. Write failures must not be silently dropped - save is the one
// user-initiated, foreground action this surface exists for.
func (m configModel) saveSettings() configModel {
	m.cfg.Cmd = m.input.Value()

	if err := m.save(m.cfg); err != nil {
		m.err = err
		m.status = ""
		return m
	}

	m.err = nil
	m.status = "Saved."
	return m
}

func (m configModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(appName + " configuration"))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("When a URL arrives:"))
	b.WriteString("\n")
	b.WriteString("  " + radio("copy it to the clipboard", m.cfg.Action == settings.ActionClipboard))
	b.WriteString("\n")
	b.WriteString("  " + radio("run the command below", m.cfg.Action == settings.ActionCommand))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Command template") + dimStyle.Render(" (%U is replaced by the URL)"))
	b.WriteString("\n  " + m.input.View())
	b.WriteString("\n\n")

	if m.isDefault {
		b.WriteString(dimStyle.Render("LinkDrop is the default browser."))
	} else {
		b.WriteString(dimStyle.Render("LinkDrop is not the default browser (press r to register)."))
	}
	b.WriteString("\n\n")

	if len(m.records) > 0 {
		b.WriteString(labelStyle.Render("Recent dispatches:"))
		b.WriteString("\n")
		for _, rec := range m.records {
			line := fmt.Sprintf("  %s  %-19s  %s",
				rec.CreatedUTC.Format("2006-01-02 15:04"),
				rec.Outcome,
				rec.URL)
			b.WriteString(dimStyle.Render(line))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	case m.status != "":
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	if m.editing {
		b.WriteString(dimStyle.Render("enter save • esc cancel editing"))
	} else {
		b.WriteString(dimStyle.Render("tab/space toggle • e edit command • s save • r register • q quit"))
	}

	return docStyle.Render(b.String())
}

// radio renders one action choice.
func radio(label string, selected bool) string {
	if selected {
		return selectedStyle.Render("(•) " + label)
	}
	return "( ) " + label
}
