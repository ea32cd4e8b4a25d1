package welcome

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wellcheck/internal/questionnaire"
	"github.com/abhisek/wellcheck/internal/router"
	"github.com/abhisek/wellcheck/internal/screen"
	"github.com/abhisek/wellcheck/internal/ui/components"
	"github.com/abhisek/wellcheck/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	revealAfter  = 500 * time.Millisecond
)

type tickMsg time.Time

// WelcomeScreen introduces the assessment before the first question.
type WelcomeScreen struct {
	nextFactory  func() screen.Screen
	questions    int
	elapsed      time.Duration
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by nextFactory.
func New(questions int, nextFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		nextFactory: nextFactory,
		questions:   questions,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed >= revealAfter {
			return w, nil
		}
		w.elapsed += tickInterval
		return w, tick()

	case tea.KeyPressMsg:
		// Ignore keys until the prompt is visible so a stray keypress
		// from launching does not skip the intro.
		if w.elapsed >= revealAfter {
			return w, w.transition()
		}
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.nextFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	symbols := []string{
		components.Symbol(questionnaire.SymbolEnergy),
		components.Symbol(questionnaire.SymbolSleep),
		components.Symbol(questionnaire.SymbolLibido),
	}

	sections := []string{
		strings.Join(symbols, "    "),
		"",
		theme.Title.Render("Hormone Balance Assessment"),
		"",
		theme.Subtitle.Render(fmt.Sprintf("%d quick questions about energy, mood, sleep and symptoms", w.questions)),
	}

	if w.elapsed >= revealAfter {
		sections = append(sections, "",
			lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Italic(true).
				Render("press any key to begin"))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
