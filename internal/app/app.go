package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wellcheck/internal/hostmsg"
	"github.com/abhisek/wellcheck/internal/questionnaire"
	"github.com/abhisek/wellcheck/internal/router"
	"github.com/abhisek/wellcheck/internal/screen"
	"github.com/abhisek/wellcheck/internal/screens/assessment"
	"github.com/abhisek/wellcheck/internal/screens/result"
	"github.com/abhisek/wellcheck/internal/screens/welcome"
	"github.com/abhisek/wellcheck/internal/ui/layout"
)

// Options holds the dependencies for the TUI.
type Options struct {
	// Session is the questionnaire to run. A fresh one is created if nil.
	Session *questionnaire.Session

	// Sink receives host messages. Nil discards them.
	Sink hostmsg.Sink

	// RedirectTarget names the host element for redirect messages.
	RedirectTarget string

	// SkipWelcome starts directly at the first question.
	SkipWelcome bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel starting at the welcome screen.
func newAppModel(opts Options) AppModel {
	if opts.Session == nil {
		opts.Session = questionnaire.NewSession()
	}
	if opts.Sink == nil {
		opts.Sink = hostmsg.NopSink{}
	}

	var first screen.Screen
	if opts.SkipWelcome {
		first = opts.assessmentScreen()
	} else {
		first = welcome.New(opts.Session.Len(), opts.assessmentScreen)
	}
	return AppModel{
		router: router.New(first),
	}
}

// assessmentScreen builds the question screen. It stays at the bottom of
// the stack; the result screen is pushed over it and popped on retake.
func (o Options) assessmentScreen() screen.Screen {
	return assessment.New(o.Session, o.resultScreen)
}

func (o Options) resultScreen() screen.Screen {
	return result.New(o.Session, result.Options{
		Sink:           o.Sink,
		RedirectTarget: o.RedirectTarget,
	})
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	v.SetContent(m.render())
	return v
}

// render composes the header, active screen and footer into one frame.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title, counter := "", ""
	if active != nil {
		title = active.Title()
		if hp, ok := active.(screen.HeaderProvider); ok {
			counter = hp.HeaderCounter()
		}
	}

	header := layout.RenderHeader(title, counter, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Esc", Description: "Quit"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}

	footer := layout.RenderFooter(footerHints, m.width)

	return layout.Frame(m.width, m.height, header, footer, m.router.View)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
