// Package quiz drives the "how well do you know me" quiz as an
// explicit state machine over the stored question list.
package quiz

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/lyrebird-labs/keepsake/internal/clock"
	kperrors "github.com/lyrebird-labs/keepsake/internal/errors"
	"github.com/lyrebird-labs/keepsake/store"
)

// State names the phase a session is in.
type State string

const (
	StateIdle         State = "IDLE"
	StateInProgress   State = "IN_PROGRESS"
	StateAwaitingNext State = "AWAITING_NEXT"
	StateComplete     State = "COMPLETE"
)

// DefaultAdvanceDelay is how long the answer feedback stays on screen
// before the session moves to the next question.
const DefaultAdvanceDelay = 1500 * time.Millisecond

// Session is one quiz run. All methods are safe for concurrent use.
type Session struct {
	store        *store.Store
	clock        clock.Clock
	advanceDelay time.Duration

	mu         sync.Mutex
	state      State
	questions  []*store.QuizQuestion
	index      int
	score      int
	answers    []store.QuizAnswer
	result     *store.QuizResult
	timer      clock.Timer
	generation int
}

func NewSession(s *store.Store, c clock.Clock, advanceDelay time.Duration) *Session {
	if advanceDelay <= 0 {
		advanceDelay = DefaultAdvanceDelay
	}
	return &Session{
		store:        s,
		clock:        c,
		advanceDelay: advanceDelay,
		state:        StateIdle,
	}
}

// Snapshot is a read-only view of the session for rendering. The
// correct answer of the current question is withheld.
type Snapshot struct {
	State          State              `json:"state"`
	TotalQuestions int                `json:"totalQuestions"`
	QuestionIndex  int                `json:"questionIndex"`
	Question       string             `json:"question,omitempty"`
	QuestionID     string             `json:"questionId,omitempty"`
	Score          int                `json:"score"`
	Answers        []store.QuizAnswer `json:"answers"`
	Result         *store.QuizResult  `json:"result,omitempty"`
}

// Start begins a run. It fails without leaving Idle when no questions
// exist. Calling Start from Complete restarts with a fresh question
// list.
func (s *Session) Start(ctx context.Context) error {
	questions, err := s.store.ListQuizQuestions(ctx, &store.FindQuizQuestion{})
	if err != nil {
		return err
	}
	if len(questions) == 0 {
		return kperrors.Validation("no quiz questions available")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopTimerLocked()
	s.generation++
	s.state = StateInProgress
	s.questions = questions
	s.index = 0
	s.score = 0
	s.answers = nil
	s.result = nil
	return nil
}

// SubmitAnswer records the answer for the current question, enters the
// feedback pause and schedules the advance to the next question or to
// completion.
func (s *Session) SubmitAnswer(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateInProgress {
		return kperrors.Validation("no question awaiting an answer")
	}

	question := s.questions[s.index]
	answer := store.QuizAnswer{
		QuestionID:    question.ID,
		Question:      question.Question,
		UserAnswer:    text,
		CorrectAnswer: question.Answer,
		IsCorrect:     store.AnswerMatches(question.Answer, text),
	}
	if answer.IsCorrect {
		s.score++
	}
	s.answers = append(s.answers, answer)
	s.state = StateAwaitingNext

	generation := s.generation
	s.timer = s.clock.AfterFunc(s.advanceDelay, func() {
		s.advance(generation)
	})
	return nil
}

// advance moves past the feedback pause. A stale generation means the
// session was quit or restarted while the timer was pending; the fire
// is ignored.
func (s *Session) advance(generation int) {
	s.mu.Lock()
	if generation != s.generation || s.state != StateAwaitingNext {
		s.mu.Unlock()
		return
	}

	if s.index+1 < len(s.questions) {
		s.index++
		s.state = StateInProgress
		s.mu.Unlock()
		return
	}

	submission := &store.QuizSubmission{Answers: append([]store.QuizAnswer(nil), s.answers...)}
	s.mu.Unlock()

	result, err := s.store.EvaluateQuiz(context.Background(), submission)
	if err != nil {
		slog.Warn("remote quiz evaluation failed, falling back to local tally", "error", err)
		result = store.EvaluateSubmission(submission)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if generation != s.generation {
		return
	}
	s.state = StateComplete
	s.result = result
}

// Quit abandons the run from any state and discards captured answers.
func (s *Session) Quit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopTimerLocked()
	s.generation++
	s.state = StateIdle
	s.questions = nil
	s.index = 0
	s.score = 0
	s.answers = nil
	s.result = nil
}

// Snapshot returns the current view of the session.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := Snapshot{
		State:          s.state,
		TotalQuestions: len(s.questions),
		QuestionIndex:  s.index,
		Score:          s.score,
		Answers:        append([]store.QuizAnswer(nil), s.answers...),
		Result:         s.result,
	}
	if s.state == StateInProgress || s.state == StateAwaitingNext {
		question := s.questions[s.index]
		snapshot.Question = question.Question
		snapshot.QuestionID = question.ID
	}
	return snapshot
}

func (s *Session) stopTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
