package components

import (
	"fmt"
	"strconv"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/wellcheck/internal/ui/theme"
)

// OptionList renders a single-choice list. Selected is -1 when nothing is chosen.
type OptionList struct {
	Options  []string
	Selected int
	Width    int
}

// NewOptionList creates an option list.
func NewOptionList(options []string, selected, width int) OptionList {
	return OptionList{
		Options:  options,
		Selected: selected,
		Width:    width,
	}
}

// Pick maps a key to the option it chooses. Arrow keys move from the
// current selection; with nothing selected, down picks the first option and
// up picks the last. Digit keys pick directly (1-based).
func (o OptionList) Pick(key string) (int, bool) {
	n := len(o.Options)
	if n == 0 {
		return 0, false
	}

	switch key {
	case "up", "k":
		if o.Selected < 0 {
			return n - 1, true
		}
		if o.Selected > 0 {
			return o.Selected - 1, true
		}
		return o.Selected, true
	case "down", "j":
		if o.Selected < n-1 {
			return o.Selected + 1, true
		}
		return o.Selected, true
	}

	if d, err := strconv.Atoi(key); err == nil && d >= 1 && d <= n {
		return d - 1, true
	}
	return 0, false
}

// View renders the option list.
func (o OptionList) View() string {
	width := o.Width
	if width < 20 {
		width = 20
	}

	var s string
	for i, opt := range o.Options {
		marker := "○"
		style := lipgloss.NewStyle().
			Width(width).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Foreground(theme.Text).
			Padding(0, 1)
		if i == o.Selected {
			marker = "●"
			style = style.
				BorderForeground(theme.Primary).
				Foreground(theme.Primary).
				Bold(true)
		}
		s += style.Render(fmt.Sprintf("%s  %d. %s", marker, i+1, opt)) + "\n"
	}
	return s
}
