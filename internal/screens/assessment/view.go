package assessment

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/wellcheck/internal/ui/components"
	"github.com/abhisek/wellcheck/internal/ui/layout"
	"github.com/abhisek/wellcheck/internal/ui/theme"
)

func (s *AssessmentScreen) View(width, height int) string {
	q, ok := s.session.Current()
	if !ok {
		return ""
	}

	cw := components.ContentWidth(width)
	center := func(str string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, str)
	}

	var b strings.Builder

	// Progress.
	b.WriteString(center(components.NewProgressBar("", s.session.Progress(), false, cw).View()))
	b.WriteString("\n")
	b.WriteString(center(components.StepDots(s.session.Len(), s.session.Step(), false)))
	b.WriteString("\n\n")

	// Symbol and prompt.
	if !layout.IsCompactHeight(height) {
		b.WriteString(center(components.Symbol(q.Symbol)))
		b.WriteString("\n\n")
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(q.Prompt)))
	b.WriteString("\n\n")

	// Options.
	b.WriteString(center(s.optionList(cw - 2).View()))
	b.WriteString("\n")

	// Navigation buttons.
	s.syncKeys()
	prev := components.NewButton("‹ Previous", s.keys.Back.Enabled()).View()
	nextLabel := "Next ›"
	if s.session.IsLastStep() {
		nextLabel = "Finish ›"
	}
	next := components.NewButton(nextLabel, s.keys.Next.Enabled()).View()
	gap := cw - lipgloss.Width(prev) - lipgloss.Width(next)
	if gap < 1 {
		gap = 1
	}
	b.WriteString(center(prev + strings.Repeat(" ", gap) + next))

	return b.String()
}
