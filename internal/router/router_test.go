package router

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wellcheck/internal/screen"
)

type namedScreen struct {
	name  string
	inits int
	seen  []tea.Msg
}

func (s *namedScreen) Init() tea.Cmd {
	s.inits++
	return nil
}

func (s *namedScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.seen = append(s.seen, msg)
	return s, nil
}

func (s *namedScreen) View(w, h int) string { return s.name }
func (s *namedScreen) Title() string        { return s.name }

// names lists the stack from bottom to top.
func names(r *Router) string {
	parts := make([]string, len(r.stack))
	for i, s := range r.stack {
		parts[i] = s.Title()
	}
	return strings.Join(parts, ",")
}

func TestNavigation(t *testing.T) {
	tests := []struct {
		name string
		msgs []tea.Msg
		want string
	}{
		{"initial", nil, "welcome"},
		{"replace bottom", []tea.Msg{
			ReplaceScreenMsg{Screen: &namedScreen{name: "questions"}},
		}, "questions"},
		{"push result", []tea.Msg{
			ReplaceScreenMsg{Screen: &namedScreen{name: "questions"}},
			PushScreenMsg{Screen: &namedScreen{name: "result"}},
		}, "questions,result"},
		{"pop back to questions", []tea.Msg{
			ReplaceScreenMsg{Screen: &namedScreen{name: "questions"}},
			PushScreenMsg{Screen: &namedScreen{name: "result"}},
			PopScreenMsg{},
		}, "questions"},
		{"pop keeps bottom screen", []tea.Msg{
			PopScreenMsg{},
			PopScreenMsg{},
		}, "welcome"},
		{"replace only touches top", []tea.Msg{
			PushScreenMsg{Screen: &namedScreen{name: "result"}},
			ReplaceScreenMsg{Screen: &namedScreen{name: "other"}},
		}, "welcome,other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(&namedScreen{name: "welcome"})
			for _, msg := range tt.msgs {
				r.Update(msg)
			}
			if got := names(r); got != tt.want {
				t.Errorf("stack = %q, want %q", got, tt.want)
			}
			if got := r.View(80, 24); !strings.HasSuffix(tt.want, got) {
				t.Errorf("View = %q, want top of %q", got, tt.want)
			}
		})
	}
}

func TestOpenedScreensInit(t *testing.T) {
	r := New(&namedScreen{name: "welcome"})
	pushed := &namedScreen{name: "result"}
	replaced := &namedScreen{name: "questions"}

	r.Update(ReplaceScreenMsg{Screen: replaced})
	r.Update(PushScreenMsg{Screen: pushed})

	if replaced.inits != 1 || pushed.inits != 1 {
		t.Errorf("inits = %d (replaced), %d (pushed); want 1 each", replaced.inits, pushed.inits)
	}

	r.Update(PopScreenMsg{})
	if replaced.inits != 1 {
		t.Errorf("screen revealed by pop was re-initialised (%d inits)", replaced.inits)
	}
}

func TestOtherMessagesReachActiveScreen(t *testing.T) {
	bottom := &namedScreen{name: "questions"}
	top := &namedScreen{name: "result"}
	r := New(bottom)
	r.Update(PushScreenMsg{Screen: top})

	r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if len(top.seen) != 1 {
		t.Errorf("active screen saw %d messages, want 1", len(top.seen))
	}
	if len(bottom.seen) != 0 {
		t.Errorf("covered screen saw %d messages, want 0", len(bottom.seen))
	}
}
