package app

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, km.Quit))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlC}, km.ForceQuit))
	assert.False(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlC}, km.Quit))
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "q", keys.Quit.Help().Key)
	assert.Equal(t, "ctrl+c", keys.ForceQuit.Help().Key)
}
