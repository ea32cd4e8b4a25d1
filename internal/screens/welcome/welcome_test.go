package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wellcheck/internal/router"
	"github.com/abhisek/wellcheck/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "assessment" }
func (s *stubScreen) Title() string                           { return "Progress" }

func newTestWelcome() (*WelcomeScreen, *int) {
	callCount := 0
	factory := func() screen.Screen {
		callCount++
		return &stubScreen{}
	}
	return New(5, factory), &callCount
}

func sendTicks(w *WelcomeScreen, n int) {
	for i := 0; i < n; i++ {
		w.Update(tickMsg(time.Now()))
	}
}

func anyKey() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: 'a', Text: "a"}
}

func TestKeyIgnoredBeforeReveal(t *testing.T) {
	w, calls := newTestWelcome()

	_, cmd := w.Update(anyKey())
	if cmd != nil {
		t.Error("expected no transition before the prompt is shown")
	}
	if *calls != 0 {
		t.Errorf("factory called %d times, want 0", *calls)
	}
	if strings.Contains(w.View(80, 24), "press any key") {
		t.Error("prompt should not be visible yet")
	}
}

func TestTransitionAfterReveal(t *testing.T) {
	w, calls := newTestWelcome()
	sendTicks(w, 5)

	if !strings.Contains(w.View(80, 24), "press any key to begin") {
		t.Error("expected prompt after reveal")
	}

	_, cmd := w.Update(anyKey())
	if cmd == nil {
		t.Fatal("expected transition command")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if msg.Screen.Title() != "Progress" {
		t.Errorf("next screen = %q, want Progress", msg.Screen.Title())
	}

	// A second key must not build another screen.
	if _, cmd := w.Update(anyKey()); cmd != nil {
		t.Error("expected no second transition")
	}
	if *calls != 1 {
		t.Errorf("factory called %d times, want 1", *calls)
	}
}

func TestTicksStopAfterReveal(t *testing.T) {
	w, _ := newTestWelcome()
	sendTicks(w, 5)

	if _, cmd := w.Update(tickMsg(time.Now())); cmd != nil {
		t.Error("expected ticking to stop once revealed")
	}
}

func TestViewShowsTitle(t *testing.T) {
	w, _ := newTestWelcome()
	if !strings.Contains(w.View(80, 24), "Hormone Balance Assessment") {
		t.Error("expected title in view")
	}
}
