package cli

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	PrevDay   key.Binding
	NextDay   key.Binding
	Today     key.Binding
	Up        key.Binding
	Down      key.Binding
	Add       key.Binding
	Delete    key.Binding
	Favorite  key.Binding
	Clear     key.Binding
	Goals     key.Binding
	Theme     key.Binding
	Help      key.Binding
	Quit      key.Binding
	NextMode  key.Binding
	PrevMode  key.Binding
	Submit    key.Binding
	Back      key.Binding
	Confirm   key.Binding
	Deny      key.Binding
	RemoveFav key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		PrevDay:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev day")),
		NextDay:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
		Today:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Add:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add food")),
		Delete:    key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Favorite:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "save favorite")),
		Clear:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear log")),
		Goals:     key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "goals")),
		Theme:     key.NewBinding(key.WithKeys("T"), key.WithHelp("T", "theme")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		NextMode:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next mode")),
		PrevMode:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev mode")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Confirm:   key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes")),
		Deny:      key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "no")),
		RemoveFav: key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "remove favorite")),
	}
}

// ShortHelp implements help.KeyMap for the main screen.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevDay, k.NextDay, k.Add, k.Goals, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap for the main screen.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevDay, k.NextDay, k.Today},
		{k.Up, k.Down, k.Delete, k.Favorite},
		{k.Add, k.Clear, k.Goals, k.Theme},
		{k.Help, k.Quit},
	}
}
