package setup

import (
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withRunForm(t *testing.T, fn func(form *huh.Form) error) {
	t.Helper()
	orig := runFormFunc
	runFormFunc = fn
	t.Cleanup(func() { runFormFunc = orig })
}

func interactiveUI() *HuhUI {
	return &HuhUI{isTerminal: func() bool { return true }}
}

func TestHuhUIRequiresTerminal(t *testing.T) {
	ui := &HuhUI{isTerminal: func() bool { return false }}
	withRunForm(t, func(*huh.Form) error {
		t.Fatal("form must not run without a terminal")
		return nil
	})

	var selected []string
	err := ui.MultiSelect("tools", []string{"a"}, &selected)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")

	ok := false
	require.Error(t, ui.Confirm("overwrite", &ok))

	value := ""
	require.Error(t, ui.Input("cache dir", &value))
}

func TestHuhUIRunsForms(t *testing.T) {
	ui := interactiveUI()
	ran := 0
	withRunForm(t, func(form *huh.Form) error {
		require.NotNil(t, form)
		ran++
		return nil
	})

	var selected []string
	require.NoError(t, ui.MultiSelect("tools", []string{"a", "b"}, &selected))
	ok := false
	require.NoError(t, ui.Confirm("overwrite", &ok))
	value := ""
	require.NoError(t, ui.Input("cache dir", &value))
	assert.Equal(t, 3, ran)
}

func TestNewHuhUIDefaultTerminalCheck(t *testing.T) {
	ui := NewHuhUI()
	require.NotNil(t, ui.isTerminal)
}
