package assessment

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Select key.Binding
	Next   key.Binding
	Back   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Select: key.NewBinding(
			key.WithKeys("up", "down", "k", "j", "1", "2", "3", "4", "5"),
			key.WithHelp("↑↓/1-5", "Choose"),
		),
		Next: key.NewBinding(
			key.WithKeys("enter", "right", "l"),
			key.WithHelp("Enter", "Next"),
		),
		Back: key.NewBinding(
			key.WithKeys("left", "backspace", "h"),
			key.WithHelp("←", "Previous"),
		),
	}
}
