package assessment

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wellcheck/internal/questionnaire"
	"github.com/abhisek/wellcheck/internal/router"
	"github.com/abhisek/wellcheck/internal/screen"
)

// stubScreen stands in for the result screen.
type stubScreen struct{}

func (stubScreen) Init() tea.Cmd                           { return nil }
func (stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return stubScreen{}, nil }
func (stubScreen) View(int, int) string                    { return "result" }
func (stubScreen) Title() string                           { return "Result" }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testScreen() (*AssessmentScreen, *questionnaire.Session) {
	sess := questionnaire.NewSession()
	return New(sess, func() screen.Screen { return stubScreen{} }), sess
}

func TestAssessmentScreen_Title(t *testing.T) {
	s, _ := testScreen()
	if s.Title() != "Progress" {
		t.Errorf("Title = %q, want %q", s.Title(), "Progress")
	}
	if s.HeaderCounter() != "1/5" {
		t.Errorf("HeaderCounter = %q, want %q", s.HeaderCounter(), "1/5")
	}
}

func TestAssessmentScreen_DigitSelects(t *testing.T) {
	s, sess := testScreen()
	s.Update(keyPress('3'))

	sel, ok := sess.Selected()
	if !ok || sel != 2 {
		t.Errorf("Selected = %d, %v; want 2, true", sel, ok)
	}
}

func TestAssessmentScreen_ArrowsSelect(t *testing.T) {
	s, sess := testScreen()
	s.Update(specialKey(tea.KeyDown))
	s.Update(specialKey(tea.KeyDown))

	sel, ok := sess.Selected()
	if !ok || sel != 1 {
		t.Errorf("Selected = %d, %v; want 1, true", sel, ok)
	}
}

func TestAssessmentScreen_EnterWithoutSelection(t *testing.T) {
	s, sess := testScreen()
	_, cmd := s.Update(specialKey(tea.KeyEnter))

	if cmd != nil {
		t.Error("expected no command when nothing is selected")
	}
	if sess.Step() != 0 {
		t.Errorf("Step = %d, want 0", sess.Step())
	}
}

func TestAssessmentScreen_EnterAdvances(t *testing.T) {
	s, sess := testScreen()
	s.Update(keyPress('5'))
	s.Update(specialKey(tea.KeyEnter))

	if sess.Step() != 1 {
		t.Fatalf("Step = %d, want 1", sess.Step())
	}
	if got := sess.Answers(); len(got) != 1 || got[0] != 5 {
		t.Errorf("Answers = %v, want [5]", got)
	}
	if s.HeaderCounter() != "2/5" {
		t.Errorf("HeaderCounter = %q, want %q", s.HeaderCounter(), "2/5")
	}
}

func TestAssessmentScreen_BackRetreats(t *testing.T) {
	s, sess := testScreen()
	s.Update(keyPress('1'))
	s.Update(specialKey(tea.KeyEnter))
	s.Update(specialKey(tea.KeyLeft))

	if sess.Step() != 0 {
		t.Errorf("Step = %d, want 0", sess.Step())
	}
	if len(sess.Answers()) != 0 {
		t.Errorf("Answers = %v, want empty", sess.Answers())
	}
}

func TestAssessmentScreen_BackAtFirstStep(t *testing.T) {
	s, sess := testScreen()
	s.Update(specialKey(tea.KeyLeft))
	if sess.Step() != 0 {
		t.Errorf("Step = %d, want 0", sess.Step())
	}
}

func TestAssessmentScreen_FinishShowsResult(t *testing.T) {
	s, sess := testScreen()

	var cmd tea.Cmd
	for i := 0; i < sess.Len(); i++ {
		s.Update(keyPress('1'))
		_, cmd = s.Update(specialKey(tea.KeyEnter))
	}

	if !sess.Complete() {
		t.Fatal("expected session to be complete")
	}
	if cmd == nil {
		t.Fatal("expected a command to show the result screen")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if msg.Screen.Title() != "Result" {
		t.Errorf("pushed screen = %q, want Result", msg.Screen.Title())
	}
}

func TestAssessmentScreen_KeyHints(t *testing.T) {
	s, _ := testScreen()
	hints := s.KeyHints()
	for _, h := range hints {
		if h.Description == "Next" || h.Description == "Previous" {
			t.Errorf("unexpected hint %q before any selection at step 0", h.Description)
		}
	}

	s.Update(keyPress('1'))
	hints = s.KeyHints()
	found := false
	for _, h := range hints {
		if h.Description == "Next" {
			found = true
		}
	}
	if !found {
		t.Error("expected Next hint once an option is selected")
	}
}

func TestAssessmentScreen_FinishLabelOnLastStep(t *testing.T) {
	s, sess := testScreen()
	for i := 0; i < sess.Len()-1; i++ {
		s.Update(keyPress('1'))
		s.Update(specialKey(tea.KeyEnter))
	}

	view := s.View(80, 40)
	if !strings.Contains(view, "Finish") {
		t.Error("expected Finish button on last step")
	}
	if !strings.Contains(view, "hot flashes") {
		t.Error("expected last question prompt")
	}
}

func TestAssessmentScreen_View(t *testing.T) {
	s, _ := testScreen()
	view := s.View(80, 40)
	if !strings.Contains(view, "daily energy") {
		t.Error("expected first question prompt in view")
	}
	if !strings.Contains(view, "5 - Very energetic") {
		t.Error("expected options in view")
	}
}
