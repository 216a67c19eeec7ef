package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists every binding so modes and the help views agree
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Start      key.Binding
	End        key.Binding
	Delete     key.Binding
	Sort       key.Binding
	ClearAll   key.Binding
	FocusDraft key.Binding
	FocusList  key.Binding
	Submit     key.Binding
	Confirm    key.Binding
	Cancel     key.Binding
	Activity   key.Binding
	Help       key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:     key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:   key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Start:      key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g/home", "go to start")),
		End:        key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G/end", "go to end")),
		Delete:     key.NewBinding(key.WithKeys("d", "x", "delete"), key.WithHelp("d/x", "delete word")),
		Sort:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "toggle sort")),
		ClearAll:   key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear all")),
		FocusDraft: key.NewBinding(key.WithKeys("i", "a", "/", "tab"), key.WithHelp("i/tab", "type a word")),
		FocusList:  key.NewBinding(key.WithKeys("esc", "tab"), key.WithHelp("esc/tab", "back to list")),
		Submit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add word")),
		Confirm:    key.NewBinding(key.WithKeys("y", "Y", "enter"), key.WithHelp("y", "yes")),
		Cancel:     key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n/esc", "no")),
		Activity:   key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "activity log")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.FocusDraft, k.Delete, k.Sort, k.ClearAll, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Start, k.End},
		{k.FocusDraft, k.Submit, k.FocusList, k.Delete, k.Sort, k.ClearAll},
		{k.Activity, k.Help, k.Quit, k.ForceQuit},
	}
}

// EntryHelp is the short help shown while typing
func (k KeyMap) EntryHelp() []key.Binding {
	return []key.Binding{k.Submit, k.FocusList, k.ForceQuit}
}

// ConfirmHelp is the short help shown while the dialog is open
func (k KeyMap) ConfirmHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Cancel}
}
