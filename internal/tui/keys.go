package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all dashboard key bindings with built-in help text.
type KeyMap struct {
	// Global
	Quit      key.Binding
	ForceQuit key.Binding
	Help      key.Binding
	Escape    key.Binding
	Reload    key.Binding

	// Table
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding

	// Pages
	NextPage  key.Binding
	PrevPage  key.Binding
	FirstPage key.Binding
	LastPage  key.Binding

	// Filters
	Search       key.Binding
	StatusFilter key.Binding
	PageSize     key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "h"),
			key.WithHelp("?/h", "help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("escape", "esc"),
			key.WithHelp("esc", "clear search"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),

		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),

		NextPage: key.NewBinding(
			key.WithKeys("right", "l", "n", "pgdown"),
			key.WithHelp("→/n", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("left", "p", "pgup"),
			key.WithHelp("←/p", "previous page"),
		),
		FirstPage: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home/g", "first page"),
		),
		LastPage: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end/G", "last page"),
		),

		Search: key.NewBinding(
			key.WithKeys("/", "s"),
			key.WithHelp("/", "search missions"),
		),
		StatusFilter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "cycle status filter"),
		),
		PageSize: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "cycle page size"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Search, k.StatusFilter, k.PageSize, k.NextPage, k.PrevPage, k.Enter, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Enter},
		{k.NextPage, k.PrevPage, k.FirstPage, k.LastPage},
		{k.Search, k.StatusFilter, k.PageSize, k.Escape},
		{k.Reload, k.Help, k.Quit, k.ForceQuit},
	}
}
