package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// MenuItem is one call to action. Action runs on enter.
type MenuItem struct {
	Label  string
	Action func() tea.Cmd
}

// Menu is a vertical list of card buttons with one focused item.
type Menu struct {
	Items    []MenuItem
	Selected int
}

func NewMenu(items []MenuItem) Menu {
	return Menu{Items: items}
}

// Update moves focus with the arrow keys (wrapping with tab) and runs the
// focused item's action on enter.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	n := len(m.Items)
	switch kmsg.String() {
	case "up", "k":
		m.Selected = max(m.Selected-1, 0)
	case "down", "j":
		m.Selected = min(m.Selected+1, n-1)
	case "tab":
		m.Selected = (m.Selected + 1) % n
	case "shift+tab":
		m.Selected = (m.Selected + n - 1) % n
	case "enter":
		if action := m.Items[m.Selected].Action; action != nil {
			return m, action()
		}
	}
	return m, nil
}

// View renders the menu as a column of card buttons of the given width.
// Items after the first use the secondary colours.
func (m Menu) View(width int) string {
	rows := make([]string, 0, len(m.Items))
	for i, item := range m.Items {
		rows = append(rows, CardButton(item.Label, i == m.Selected, i > 0, width))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}
