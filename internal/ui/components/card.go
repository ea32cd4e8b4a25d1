package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wellcheck/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for card sections.
// All boxes are rendered at this width so they visually align.
func ContentWidth(frameWidth int) int {
	// Leave room for outer padding on both sides
	w := frameWidth - 6
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Card wraps content in a rounded-border card at the given content width.
func Card(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 2).
		Render(content)
}

// CardButton renders a full-width call-to-action. secondary picks the
// yellow variant used for the less prominent action.
func CardButton(label string, selected, secondary bool, width int) string {
	style := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Bold(true).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	fg, bg := theme.Text, theme.Primary
	if secondary {
		fg, bg = theme.Primary, theme.Secondary
	}

	if selected {
		return style.
			Foreground(fg).
			Background(bg).
			BorderForeground(bg).
			Render("▸ " + label)
	}
	return style.
		Foreground(theme.TextDim).
		BorderForeground(theme.Border).
		Render(label)
}
