package quiz

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lyrebird-labs/keepsake/internal/clock"
	"github.com/lyrebird-labs/keepsake/internal/profile"
	"github.com/lyrebird-labs/keepsake/store"
	"github.com/lyrebird-labs/keepsake/store/db/localfs"
)

func newTestSession(t *testing.T, questions []*store.QuizQuestion) (*Session, *store.Store, *clock.Manual) {
	t.Helper()
	ctx := context.Background()

	p := &profile.Profile{Mode: "dev", Data: t.TempDir(), Driver: "localfs"}
	driver, err := localfs.NewDB(p)
	require.NoError(t, err)
	st := store.New(driver, p)
	t.Cleanup(func() { st.Close() })

	// Replace the seeded questions with the test's fixed set.
	seeded, err := st.ListQuizQuestions(ctx, &store.FindQuizQuestion{})
	require.NoError(t, err)
	for _, q := range seeded {
		require.NoError(t, st.DeleteQuizQuestion(ctx, &store.DeleteQuizQuestion{ID: q.ID}))
	}
	for _, q := range questions {
		_, err := st.CreateQuizQuestion(ctx, q)
		require.NoError(t, err)
	}

	manual := clock.NewManual(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	return NewSession(st, manual, DefaultAdvanceDelay), st, manual
}

func TestSession(t *testing.T) {
	ctx := context.Background()
	questions := []*store.QuizQuestion{
		{Question: "What's my favorite color?", Answer: "Purple"},
		{Question: "Where was our first date?", Answer: "The Coffee Shop"},
	}

	t.Run("start requires at least one question", func(t *testing.T) {
		session, _, _ := newTestSession(t, nil)
		err := session.Start(ctx)
		require.Error(t, err)
		assert.Equal(t, StateIdle, session.Snapshot().State)
	})

	t.Run("answers match modulo case and whitespace", func(t *testing.T) {
		session, _, manual := newTestSession(t, questions)
		require.NoError(t, session.Start(ctx))

		require.NoError(t, session.SubmitAnswer("  purple "))
		snapshot := session.Snapshot()
		assert.Equal(t, StateAwaitingNext, snapshot.State)
		require.Len(t, snapshot.Answers, 1)
		assert.True(t, snapshot.Answers[0].IsCorrect)
		assert.Equal(t, 1, snapshot.Score)

		manual.Advance(DefaultAdvanceDelay)
		snapshot = session.Snapshot()
		assert.Equal(t, StateInProgress, snapshot.State)
		assert.Equal(t, 1, snapshot.QuestionIndex)
	})

	t.Run("completes after the last question", func(t *testing.T) {
		session, _, manual := newTestSession(t, questions)
		require.NoError(t, session.Start(ctx))

		require.NoError(t, session.SubmitAnswer("purple"))
		manual.Advance(DefaultAdvanceDelay)
		require.NoError(t, session.SubmitAnswer("the cinema"))
		manual.Advance(DefaultAdvanceDelay)

		snapshot := session.Snapshot()
		assert.Equal(t, StateComplete, snapshot.State)
		require.NotNil(t, snapshot.Result)
		assert.Equal(t, 2, snapshot.Result.TotalQuestions)
		assert.Equal(t, 1, snapshot.Result.CorrectAnswers)
		assert.Equal(t, 0.5, snapshot.Result.Score)

		// The tally equals the count of correct captured answers.
		correct := 0
		for _, a := range snapshot.Result.Answers {
			if a.IsCorrect {
				correct++
			}
		}
		assert.Equal(t, snapshot.Result.CorrectAnswers, correct)
	})

	t.Run("score never decreases", func(t *testing.T) {
		session, _, manual := newTestSession(t, questions)
		require.NoError(t, session.Start(ctx))

		last := 0
		for _, answer := range []string{"wrong", "The Coffee Shop"} {
			require.NoError(t, session.SubmitAnswer(answer))
			score := session.Snapshot().Score
			assert.GreaterOrEqual(t, score, last)
			last = score
			manual.Advance(DefaultAdvanceDelay)
		}
	})

	t.Run("empty correct answer never matches non-empty input", func(t *testing.T) {
		session, _, _ := newTestSession(t, []*store.QuizQuestion{{Question: "?", Answer: ""}})
		require.NoError(t, session.Start(ctx))
		require.NoError(t, session.SubmitAnswer("anything"))
		assert.False(t, session.Snapshot().Answers[0].IsCorrect)
	})

	t.Run("quit discards progress from any state", func(t *testing.T) {
		session, _, manual := newTestSession(t, questions)
		require.NoError(t, session.Start(ctx))
		require.NoError(t, session.SubmitAnswer("purple"))

		session.Quit()
		snapshot := session.Snapshot()
		assert.Equal(t, StateIdle, snapshot.State)
		assert.Empty(t, snapshot.Answers)

		// The pending auto-advance timer must not resurrect the run.
		manual.Advance(DefaultAdvanceDelay)
		assert.Equal(t, StateIdle, session.Snapshot().State)
	})

	t.Run("restart from complete begins a fresh run", func(t *testing.T) {
		session, _, manual := newTestSession(t, []*store.QuizQuestion{{Question: "?", Answer: "yes"}})
		require.NoError(t, session.Start(ctx))
		require.NoError(t, session.SubmitAnswer("yes"))
		manual.Advance(DefaultAdvanceDelay)
		require.Equal(t, StateComplete, session.Snapshot().State)

		require.NoError(t, session.Start(ctx))
		snapshot := session.Snapshot()
		assert.Equal(t, StateInProgress, snapshot.State)
		assert.Equal(t, 0, snapshot.QuestionIndex)
		assert.Equal(t, 0, snapshot.Score)
		assert.Empty(t, snapshot.Answers)
	})

	t.Run("submit outside InProgress is rejected", func(t *testing.T) {
		session, _, _ := newTestSession(t, questions)
		require.Error(t, session.SubmitAnswer("purple"))
		require.NoError(t, session.Start(ctx))
		require.NoError(t, session.SubmitAnswer("purple"))
		require.Error(t, session.SubmitAnswer("purple"))
	})
}
