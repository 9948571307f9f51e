package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	Home        key.Binding
	End         key.Binding
	AutoScroll  key.Binding
	Timestamps  key.Binding
	Clear       key.Binding
	Debug       key.Binding
	Info        key.Binding
	Warning     key.Binding
	Error       key.Binding
	Search      key.Binding
	NextNode    key.Binding
	PrevNode    key.Binding
	Quit        key.Binding
	ApplySearch key.Binding
	EscSearch   key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdn", "page down"),
	),
	Home: key.NewBinding(
		key.WithKeys("home"),
		key.WithHelp("home", "top"),
	),
	End: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("G", "end"),
	),
	AutoScroll: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "auto-scroll"),
	),
	Timestamps: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "timestamps"),
	),
	Clear: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "clear"),
	),
	Debug: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "debug"),
	),
	Info: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "info"),
	),
	Warning: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "warning"),
	),
	Error: key.NewBinding(
		key.WithKeys("4"),
		key.WithHelp("4", "error"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	NextNode: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n/p", "node"),
	),
	PrevNode: key.NewBinding(
		key.WithKeys("p"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	ApplySearch: key.NewBinding(
		key.WithKeys("enter"),
	),
	EscSearch: key.NewBinding(
		key.WithKeys("esc"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.End, k.AutoScroll, k.Timestamps, k.Clear, k.Search, k.NextNode, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End},
		{k.Debug, k.Info, k.Warning, k.Error, k.Search},
		{k.AutoScroll, k.Timestamps, k.Clear, k.NextNode, k.Quit},
	}
}
