package list

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var docStyle = lipgloss.NewStyle().Margin(3, 3)

// Item is a playbook row. Commands holds the commands for the selected device.
type Item struct {
	Name     string
	Category string
	Keywords []string
	Commands []string
}

var _ list.DefaultItem = Item{}

func (i Item) Title() string { return i.Name }
func (i Item) Description() string {
	return fmt.Sprintf("%s · %s", i.Category, strings.Join(i.Keywords, ", "))
}
func (i Item) FilterValue() string {
	return strings.Join(append([]string{i.Name, i.Category}, i.Keywords...), " ")
}

type Model struct {
	list        list.Model
	device      string
	copyBinding key.Binding
	writeClip   func(string) error
}

func NewModelWithDelegate(items []Item, title string, device string, delegate list.ItemDelegate) Model {
	var listItems []list.Item
	for _, i := range items {
		listItems = append(listItems, i)
	}

	m := Model{
		list:      list.New(listItems, delegate, 0, 0),
		device:    device,
		writeClip: clipboard.WriteAll,
	}
	m.list.Title = title

	m.copyBinding = key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy "+device+" commands"))
	m.list.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{m.copyBinding}
	}

	m.list.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{m.copyBinding}
	}

	return m
}

func NewModel(items []Item, title string, device string) Model {
	return NewModelWithDelegate(items, title, device, list.NewDefaultDelegate())
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) copySelected() tea.Cmd {
	item, ok := m.list.SelectedItem().(Item)
	if !ok {
		return nil
	}
	if len(item.Commands) == 0 {
		return m.list.NewStatusMessage(fmt.Sprintf("%s has no %s commands", item.Name, m.device))
	}
	if err := m.writeClip(strings.Join(item.Commands, "\n")); err != nil {
		return m.list.NewStatusMessage("copy failed: " + err.Error())
	}
	return m.list.NewStatusMessage(fmt.Sprintf("copied %d commands", len(item.Commands)))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if key.Matches(msg, m.copyBinding) && m.list.FilterState() == list.Unfiltered {
			return m, m.copySelected()
		}

	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return docStyle.Render(m.list.View())
}
