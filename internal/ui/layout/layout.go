package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/wellcheck/internal/ui/theme"
)

const (
	MinWidth  = 64
	MinHeight = 24

	// Below this height screens drop decorative rows.
	CompactHeightThreshold = 30
)

const brand = "  Wellcheck"

// KeyHint is one "key description" pair in the footer.
type KeyHint struct {
	Key         string
	Description string
}

func IsCompactHeight(height int) bool {
	return height < CompactHeightThreshold
}

func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// bar is the bordered strip used for both header and footer.
func bar(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
}

// RenderMinSizeMessage fills the window with a resize request.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("Terminal too small\n\nwellcheck needs at least %d x %d\n(currently %d x %d)",
			MinWidth, MinHeight, width, height))
}

// RenderHeader lays out the brand on the left, title centred and counter
// (for example "2/5", may be empty) on the right.
func RenderHeader(title, counter string, width int) string {
	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(brand)
	middle := lipgloss.NewStyle().Foreground(theme.Text).Render(title)
	right := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(counter)

	inner := max(width-4, 0)
	middleW := lipgloss.Width(middle)
	leftW := max((inner-middleW)/2, lipgloss.Width(left)+1)
	rightW := max(inner-leftW-middleW, lipgloss.Width(right)+1)

	row := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(leftW).Render(left),
		middle,
		lipgloss.NewStyle().Width(rightW).Align(lipgloss.Right).Render(right),
	)
	return bar(width).Render(row)
}

// RenderFooter lists key hints separated by dots.
func RenderFooter(hints []KeyHint, width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = keyStyle.Render(h.Key) + " " + descStyle.Render(h.Description)
	}
	sep := descStyle.Render("  ·  ")
	return bar(width).Render("  " + strings.Join(parts, sep))
}

// Frame stacks header, body and footer. body is rendered with whatever
// height the header and footer leave over.
func Frame(width, height int, header, footer string, body func(width, height int) string) string {
	bodyHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := lipgloss.NewStyle().
		Width(width).
		Height(bodyHeight).
		Render(body(width, bodyHeight))
	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}
