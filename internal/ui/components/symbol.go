package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/wellcheck/internal/questionnaire"
	"github.com/abhisek/wellcheck/internal/ui/theme"
)

// Symbol renders a question or tier symbol as colored glyphs.
func Symbol(s questionnaire.Symbol) string {
	glyphs := theme.Glyphs(s)
	parts := make([]string, 0, len(glyphs))
	for _, g := range glyphs {
		parts = append(parts, lipgloss.NewStyle().Foreground(g.Color).Render(g.Text))
	}
	return strings.Join(parts, "  ")
}
