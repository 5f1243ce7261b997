package setup

import (
	"errors"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/lspkit/lspkit/internal/messages"
	"github.com/lspkit/lspkit/internal/terminal"
)

// UI defines the interaction methods used during setup.
type UI interface {
	MultiSelect(title string, options []string, selected *[]string) error
	Confirm(title string, value *bool) error
	Input(title string, value *string) error
}

// HuhUI implements UI using charmbracelet/huh.
type HuhUI struct {
	isTerminal func() bool
}

var runFormFunc = func(form *huh.Form) error { return form.Run() }

// NewHuhUI creates a HuhUI using the default terminal check.
func NewHuhUI() *HuhUI {
	return &HuhUI{isTerminal: terminal.IsInteractive}
}

// ensureInteractive returns an error when the UI is invoked without a terminal.
func (ui *HuhUI) ensureInteractive() error {
	checker := ui.isTerminal
	if checker == nil {
		checker = terminal.IsInteractive
	}
	if checker() {
		return nil
	}
	return errors.New(messages.SetupRequiresTerminal)
}

func setupKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("ctrl+c", "esc"))
	return km
}

func (ui *HuhUI) runForm(field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithKeyMap(setupKeyMap()).
		WithProgramOptions(tea.WithOutput(os.Stderr))
	return runFormFunc(form)
}

// MultiSelect prompts for a subset of options; selected seeds the preselection.
func (ui *HuhUI) MultiSelect(title string, options []string, selected *[]string) error {
	if err := ui.ensureInteractive(); err != nil {
		return err
	}
	return ui.runForm(huh.NewMultiSelect[string]().
		Title(title).
		Options(huh.NewOptions(options...)...).
		Value(selected))
}

// Confirm prompts for a yes/no answer.
func (ui *HuhUI) Confirm(title string, value *bool) error {
	if err := ui.ensureInteractive(); err != nil {
		return err
	}
	return ui.runForm(huh.NewConfirm().Title(title).Value(value))
}

// Input prompts for a free-form string.
func (ui *HuhUI) Input(title string, value *string) error {
	if err := ui.ensureInteractive(); err != nil {
		return err
	}
	return ui.runForm(huh.NewInput().Title(title).Value(value))
}
