package list

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItem(t *testing.T) {
	i := Item{Name: "DNS Outage", Category: "network", Keywords: []string{"dns", "resolve"}}
	assert.Equal(t, "DNS Outage", i.Title())
	assert.Equal(t, "network · dns, resolve", i.Description())
	assert.Equal(t, "DNS Outage network dns resolve", i.FilterValue())
}

func TestCopySelected(t *testing.T) {
	items := []Item{
		{Name: "DNS Outage", Category: "network", Commands: []string{"ipconfig /all", "ipconfig /flushdns"}},
	}
	m := NewModel(items, "Playbooks", "Windows")

	var copied string
	m.writeClip = func(s string) error {
		copied = s
		return nil
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	require.NotNil(t, cmd)
	assert.Equal(t, "ipconfig /all\nipconfig /flushdns", copied)
}

func TestCopySelectedWithoutCommands(t *testing.T) {
	m := NewModel([]Item{{Name: "Email Not Syncing"}}, "Playbooks", "Linux")

	called := false
	m.writeClip = func(string) error {
		called = true
		return nil
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	assert.NotNil(t, cmd)
	assert.False(t, called)
}
