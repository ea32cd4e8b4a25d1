package result

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/wellcheck/internal/questionnaire"
	"github.com/abhisek/wellcheck/internal/ui/components"
	"github.com/abhisek/wellcheck/internal/ui/theme"
)

const (
	availabilityNote = "Consultations typically available within 48 hours"
	disclaimer       = "This assessment is for informational purposes only and does not constitute " +
		"medical advice. Please consult with a healthcare professional for diagnosis and treatment."
)

func (s *ResultScreen) View(width, height int) string {
	res, ok := s.session.Result()
	if !ok {
		return ""
	}

	cw := components.ContentWidth(width)
	center := func(str string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, str)
	}

	var b strings.Builder

	// Completion time.
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim).
		Render("Completed on " + res.CompletedAt.Format("Monday, January 2, 2006"))))
	b.WriteString("\n")
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim).Faint(true).
		Render("at " + res.CompletedAt.Format("3:04 PM"))))
	b.WriteString("\n\n")

	// Score badge.
	badge := strings.Join([]string{
		components.Symbol(res.Tier.Symbol()),
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
			Render(fmt.Sprintf("%d/%d", res.Score, questionnaire.MaxScore)),
		lipgloss.NewStyle().Foreground(theme.Secondary).Render(res.Tier.String()),
	}, "\n")
	b.WriteString(center(theme.ScoreBadge.Render(badge)))
	b.WriteString("\n\n")

	// Description.
	b.WriteString(center(components.Card(res.Tier.Description(), cw)))
	b.WriteString("\n\n")

	// Calls to action.
	b.WriteString(center(s.menu.View(cw)))
	b.WriteString("\n")
	if s.redirectRequested {
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Success).
			Render("Request sent. You'll be taken to scheduling shortly.")))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim).Render("◷ " + availabilityNote)))
	b.WriteString("\n\n")
	b.WriteString(center(lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Faint(true).
		Render(disclaimer)))

	return b.String()
}
