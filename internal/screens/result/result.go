package result

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wellcheck/internal/hostmsg"
	"github.com/abhisek/wellcheck/internal/questionnaire"
	"github.com/abhisek/wellcheck/internal/router"
	"github.com/abhisek/wellcheck/internal/screen"
	"github.com/abhisek/wellcheck/internal/ui/components"
	"github.com/abhisek/wellcheck/internal/ui/layout"
)

// redirectSentMsg reports that the redirect was handed to the host sink.
type redirectSentMsg struct{}

// Options configures the result screen's outbound actions.
type Options struct {
	// Sink receives the redirect message. Nil disables delivery.
	Sink hostmsg.Sink

	// RedirectTarget names the host element to activate.
	RedirectTarget string
}

// ResultScreen shows the assessment outcome and the calls to action.
type ResultScreen struct {
	session           *questionnaire.Session
	opts              Options
	menu              components.Menu
	redirectRequested bool
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)
var _ screen.HeaderProvider = (*ResultScreen)(nil)

// New creates a ResultScreen for a completed session. It expects to sit
// on top of the question screen, which retake returns to.
func New(session *questionnaire.Session, opts Options) *ResultScreen {
	s := &ResultScreen{
		session: session,
		opts:    opts,
	}
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "Schedule Your Consultation Today", Action: s.schedule},
		{Label: "Retake Assessment", Action: s.retake},
	})
	return s
}

func (s *ResultScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultScreen) Title() string {
	return "Assessment Complete"
}

func (s *ResultScreen) HeaderCounter() string {
	return fmt.Sprintf("%d/%d", s.session.Len(), s.session.Len())
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case redirectSentMsg:
		s.redirectRequested = true
		return s, nil
	case tea.KeyMsg:
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}
	return s, nil
}

// schedule sends the redirect to the host. Delivery is fire-and-forget.
func (s *ResultScreen) schedule() tea.Cmd {
	sink := s.opts.Sink
	msg := hostmsg.Redirect(s.opts.RedirectTarget)
	return func() tea.Msg {
		hostmsg.Notify(context.Background(), sink, msg)
		return redirectSentMsg{}
	}
}

// retake restarts the session and closes the result screen, revealing the
// question screen at the first question.
func (s *ResultScreen) retake() tea.Cmd {
	s.session.Restart()
	return func() tea.Msg { return router.PopScreenMsg{} }
}
