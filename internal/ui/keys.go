package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Add       key.Binding
	Logout    key.Binding
	Delete    key.Binding
	Recompute key.Binding
	Export    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Add:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add row")),
		Logout:    key.NewBinding(key.WithKeys("enter", "o"), key.WithHelp("enter/o", "set logout")),
		Delete:    key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "remove row")),
		Recompute: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "recompute total")),
		Export:    key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "write timesheet")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Logout, k.Delete, k.Export, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Add, k.Logout, k.Delete},
		{k.Recompute, k.Export},
		{k.Help, k.Quit},
	}
}
