package theme

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var (
	light = catppuccin.Latte
	dark  = catppuccin.Mocha

	accent   = lipgloss.AdaptiveColor{Light: light.Mauve().Hex, Dark: dark.Mauve().Hex}
	subtext0 = lipgloss.AdaptiveColor{Light: light.Subtext0().Hex, Dark: dark.Subtext0().Hex}
	overlay1 = lipgloss.AdaptiveColor{Light: light.Overlay1().Hex, Dark: dark.Overlay1().Hex}
)

// Heading styles category and playbook names in plain listings.
var Heading = lipgloss.NewStyle().Bold(true).Foreground(accent)

// Subtle styles keyword lists and scores.
var Subtle = lipgloss.NewStyle().Foreground(overlay1)

// New returns the huh theme used by every triage form.
func New() *huh.Theme {
	t := huh.ThemeDracula()

	f := &t.Focused
	f.Title = f.Title.Foreground(accent)
	f.SelectSelector = f.SelectSelector.Foreground(accent)
	f.SelectedPrefix = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#02CF92", Dark: "#02A877"}).SetString("✓ ")
	f.UnselectedPrefix = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "", Dark: "243"}).SetString("• ")

	t.Help.Ellipsis.Foreground(subtext0)
	t.Help.ShortKey.Foreground(subtext0)
	t.Help.ShortDesc.Foreground(overlay1)
	t.Help.ShortSeparator.Foreground(subtext0)
	t.Help.FullKey.Foreground(subtext0)
	t.Help.FullDesc.Foreground(overlay1)
	t.Help.FullSeparator.Foreground(subtext0)

	return t
}
