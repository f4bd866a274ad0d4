package main

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts
type KeyMap struct {
	// Form
	NextField key.Binding
	PrevField key.Binding
	Apply     key.Binding

	// Stepping
	Step    key.Binding
	Step15  key.Binding
	Period  key.Binding
	Reset   key.Binding
	Edit    key.Binding
	Presets key.Binding

	Quit key.Binding
}

// DefaultKeyMap returns the default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Apply: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "build register"),
		),
		Step: key.NewBinding(
			key.WithKeys(" ", "n"),
			key.WithHelp("space/n", "step once"),
		),
		Step15: key.NewBinding(
			key.WithKeys("N"),
			key.WithHelp("N", "step 15 times"),
		),
		Period: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "measure period"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset to seed"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e", "esc"),
			key.WithHelp("e", "edit configuration"),
		),
		Presets: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "use maximal taps for size"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
