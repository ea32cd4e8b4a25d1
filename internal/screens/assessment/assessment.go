package assessment

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wellcheck/internal/questionnaire"
	"github.com/abhisek/wellcheck/internal/router"
	"github.com/abhisek/wellcheck/internal/screen"
	"github.com/abhisek/wellcheck/internal/ui/components"
	"github.com/abhisek/wellcheck/internal/ui/layout"
)

// AssessmentScreen walks the user through the questions of a session.
type AssessmentScreen struct {
	session       *questionnaire.Session
	resultFactory func() screen.Screen
	keys          keyMap
}

var _ screen.Screen = (*AssessmentScreen)(nil)
var _ screen.KeyHintProvider = (*AssessmentScreen)(nil)
var _ screen.HeaderProvider = (*AssessmentScreen)(nil)

// New creates an AssessmentScreen over session. resultFactory builds the
// screen pushed on top once the last question is answered.
func New(session *questionnaire.Session, resultFactory func() screen.Screen) *AssessmentScreen {
	return &AssessmentScreen{
		session:       session,
		resultFactory: resultFactory,
		keys:          newKeyMap(),
	}
}

func (s *AssessmentScreen) Init() tea.Cmd {
	return nil
}

func (s *AssessmentScreen) Title() string {
	return "Progress"
}

func (s *AssessmentScreen) HeaderCounter() string {
	step := min(s.session.Step()+1, s.session.Len())
	return fmt.Sprintf("%d/%d", step, s.session.Len())
}

func (s *AssessmentScreen) KeyHints() []layout.KeyHint {
	s.syncKeys()
	bindings := []key.Binding{s.keys.Select, s.keys.Back, s.keys.Next}

	hints := make([]layout.KeyHint, 0, len(bindings)+1)
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		hints = append(hints, layout.KeyHint{Key: b.Help().Key, Description: b.Help().Desc})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

// syncKeys enables navigation keys only when the session accepts them.
func (s *AssessmentScreen) syncKeys() {
	_, selected := s.session.Selected()
	s.keys.Next.SetEnabled(selected)
	s.keys.Back.SetEnabled(s.session.Step() > 0)
	if s.session.IsLastStep() {
		s.keys.Next.SetHelp("Enter", "Finish")
	} else {
		s.keys.Next.SetHelp("Enter", "Next")
	}
}

func (s *AssessmentScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || s.session.Complete() {
		return s, nil
	}

	s.syncKeys()
	switch {
	case key.Matches(kmsg, s.keys.Next):
		if !s.session.Advance() {
			return s, nil
		}
		if s.session.Complete() && s.resultFactory != nil {
			next := s.resultFactory()
			return s, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
		}
	case key.Matches(kmsg, s.keys.Back):
		s.session.Retreat()
	case key.Matches(kmsg, s.keys.Select):
		if idx, ok := s.optionList(0).Pick(kmsg.String()); ok {
			s.session.SelectOption(idx)
		}
	}
	return s, nil
}

func (s *AssessmentScreen) optionList(width int) components.OptionList {
	q, _ := s.session.Current()
	sel, ok := s.session.Selected()
	if !ok {
		sel = -1
	}
	return components.NewOptionList(q.Options, sel, width)
}
