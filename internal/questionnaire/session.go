package questionnaire

import (
	"time"

	"github.com/google/uuid"
)

// noSelection marks that no option is chosen on the current step.
const noSelection = -1

// Option configures a Session.
type Option func(*Session)

// WithClock sets the clock used to stamp the completion time.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithQuestions replaces the default question bank. The session keeps its
// own copy.
func WithQuestions(questions []Question) Option {
	return func(s *Session) { s.questions = cloneQuestions(questions) }
}

// WithIDFunc sets the generator for session IDs.
func WithIDFunc(newID func() string) Option {
	return func(s *Session) { s.newID = newID }
}

// Session tracks one traversal of the questionnaire.
//
// It is not safe for concurrent use; the host dispatches one action at a time.
type Session struct {
	questions []Question
	now       func() time.Time
	newID     func() string

	// id correlates log lines for one traversal. Regenerated on Restart.
	id string

	// step is the index of the current question; len(questions) means complete.
	step int

	// selected is the chosen option on the current step, or noSelection.
	selected int

	// answers holds one score per completed step. len(answers) == step.
	answers []int

	// completedAt is set when the last question is answered, zero otherwise.
	completedAt time.Time
}

// NewSession creates a session at the first question.
func NewSession(opts ...Option) *Session {
	s := &Session{
		questions: Bank(),
		now:       time.Now,
		newID:     func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Restart()
	return s
}

// Restart resets the session to its initial state.
func (s *Session) Restart() {
	s.id = s.newID()
	s.step = 0
	s.selected = noSelection
	s.answers = nil
	s.completedAt = time.Time{}
}

// SelectOption chooses an option on the current question.
// Returns false without changing state if the session is complete or the
// index is out of range.
func (s *Session) SelectOption(index int) bool {
	q, ok := s.Current()
	if !ok || index < 0 || index >= len(q.Options) {
		return false
	}
	s.selected = index
	return true
}

// Advance scores the selected option and moves to the next step.
// Returns false if nothing is selected or the session is already complete.
func (s *Session) Advance() bool {
	if s.selected == noSelection || s.Complete() {
		return false
	}

	s.answers = append(s.answers, s.questions[s.step].Scale.Score(s.selected))
	if s.IsLastStep() {
		s.completedAt = s.now()
	}
	s.step++
	s.selected = noSelection
	return true
}

// Retreat returns to the previous question and drops its answer.
// Returns false at the first step and once the session is complete;
// a completed session only leaves via Restart.
func (s *Session) Retreat() bool {
	if s.step == 0 || s.Complete() {
		return false
	}
	s.step--
	s.answers = s.answers[:len(s.answers)-1]
	s.selected = noSelection
	return true
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Step returns the current step index.
func (s *Session) Step() int { return s.step }

// Len returns the number of questions.
func (s *Session) Len() int { return len(s.questions) }

// Current returns the question on the current step. ok is false once complete.
func (s *Session) Current() (q Question, ok bool) {
	if s.Complete() {
		return Question{}, false
	}
	return s.questions[s.step], true
}

// Selected returns the chosen option on the current step, if any.
func (s *Session) Selected() (int, bool) {
	return s.selected, s.selected != noSelection
}

// IsLastStep reports whether the current question is the final one.
func (s *Session) IsLastStep() bool {
	return s.step == len(s.questions)-1
}

// Complete reports whether every question has been answered.
func (s *Session) Complete() bool {
	return s.step == len(s.questions)
}

// CompletedAt returns when the session completed, or the zero time.
func (s *Session) CompletedAt() time.Time { return s.completedAt }

// Answers returns a copy of the scores recorded so far.
func (s *Session) Answers() []int {
	return append([]int(nil), s.answers...)
}

// TotalScore sums the recorded scores.
func (s *Session) TotalScore() int {
	total := 0
	for _, a := range s.answers {
		total += a
	}
	return total
}

// Tier returns the tier for the current total score.
func (s *Session) Tier() Tier {
	return TierFor(s.TotalScore())
}

// Progress returns the fill fraction for a progress bar. The current
// question counts as reached.
func (s *Session) Progress() float64 {
	if len(s.questions) == 0 || s.Complete() {
		return 1
	}
	return float64(s.step+1) / float64(len(s.questions))
}

// Result is the outcome of a completed session.
type Result struct {
	SessionID   string
	Answers     []int
	Score       int
	Tier        Tier
	CompletedAt time.Time
}

// Result returns the outcome once the session is complete.
func (s *Session) Result() (Result, bool) {
	if !s.Complete() {
		return Result{}, false
	}
	score := s.TotalScore()
	return Result{
		SessionID:   s.id,
		Answers:     s.Answers(),
		Score:       score,
		Tier:        TierFor(score),
		CompletedAt: s.completedAt,
	}, true
}
