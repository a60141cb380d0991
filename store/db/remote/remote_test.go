package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kperrors "github.com/lyrebird-labs/keepsake/internal/errors"
	"github.com/lyrebird-labs/keepsake/internal/profile"
	"github.com/lyrebird-labs/keepsake/store"
)

// fakeUpstream is a minimal in-memory keepsake API for the notes
// resource plus quiz evaluation.
type fakeUpstream struct {
	mu       sync.Mutex
	notes    []*store.Note
	requests []string
	failing  bool
}

func (f *fakeUpstream) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/notes", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.requests = append(f.requests, r.Method+" "+r.URL.Path)
		if f.failing {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(f.notes)
		case http.MethodPost:
			var note store.Note
			json.NewDecoder(r.Body).Decode(&note)
			note.ID = store.NewUID()
			f.notes = append(f.notes, &note)
			json.NewEncoder(w).Encode(note)
		}
	})
	mux.HandleFunc("/notes/", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.requests = append(f.requests, r.Method+" "+r.URL.Path)
		id := strings.TrimPrefix(r.URL.Path, "/notes/")
		idx := -1
		for i, note := range f.notes {
			if note.ID == id {
				idx = i
			}
		}
		if idx < 0 {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodPut:
			var body map[string]string
			json.NewDecoder(r.Body).Decode(&body)
			if content, ok := body["content"]; ok {
				f.notes[idx].Content = content
			}
		case http.MethodDelete:
			f.notes = append(f.notes[:idx], f.notes[idx+1:]...)
		}
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/quiz/evaluate", func(w http.ResponseWriter, r *http.Request) {
		var submission store.QuizSubmission
		json.NewDecoder(r.Body).Decode(&submission)
		result := store.EvaluateSubmission(&submission)
		// Upstream authority: mark everything correct regardless of
		// the local tally, so delegation is observable.
		result.CorrectAnswers = result.TotalQuestions
		result.Score = 1
		json.NewEncoder(w).Encode(result)
	})
	return mux
}

func newTestDriver(t *testing.T, upstream *fakeUpstream) store.Driver {
	t.Helper()
	server := httptest.NewServer(upstream.handler())
	t.Cleanup(server.Close)
	driver, err := NewDB(&profile.Profile{Mode: "dev", Driver: "remote", RemoteBaseURL: server.URL})
	require.NoError(t, err)
	return driver
}

func (f *fakeUpstream) requestLog() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requests...)
}

func TestNewDBRejectsMissingBaseURL(t *testing.T) {
	_, err := NewDB(&profile.Profile{Driver: "remote"})
	require.Error(t, err)
}

func TestMutationsRefetch(t *testing.T) {
	ctx := context.Background()
	upstream := &fakeUpstream{}
	driver := newTestDriver(t, upstream)

	created, err := driver.CreateNote(ctx, &store.Note{Content: "first"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, []string{"POST /notes", "GET /notes"}, upstream.requestLog())

	content := "edited"
	require.NoError(t, driver.UpdateNote(ctx, &store.UpdateNote{ID: created.ID, Content: &content}))
	notes, err := driver.ListNotes(ctx, &store.FindNote{})
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "edited", notes[0].Content)

	require.NoError(t, driver.DeleteNote(ctx, &store.DeleteNote{ID: created.ID}))
	notes, err = driver.ListNotes(ctx, &store.FindNote{})
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestMissingTargetIsSilentNoOp(t *testing.T) {
	ctx := context.Background()
	upstream := &fakeUpstream{}
	driver := newTestDriver(t, upstream)

	content := "ghost"
	require.NoError(t, driver.UpdateNote(ctx, &store.UpdateNote{ID: "no-such-id", Content: &content}))
	require.NoError(t, driver.DeleteNote(ctx, &store.DeleteNote{ID: "no-such-id"}))
}

func TestTransportFailureSurfaces(t *testing.T) {
	ctx := context.Background()
	upstream := &fakeUpstream{}
	driver := newTestDriver(t, upstream)

	_, err := driver.CreateNote(ctx, &store.Note{Content: "kept"})
	require.NoError(t, err)

	upstream.failing = true
	_, err = driver.CreateNote(ctx, &store.Note{Content: "lost"})
	require.Error(t, err)
	assert.True(t, kperrors.Is(err, kperrors.CodeTransport))

	_, err = driver.ListNotes(ctx, &store.FindNote{})
	require.Error(t, err)
}

func TestEvaluateQuizIsAuthoritative(t *testing.T) {
	ctx := context.Background()
	upstream := &fakeUpstream{}
	driver := newTestDriver(t, upstream)

	evaluator, ok := driver.(store.QuizEvaluator)
	require.True(t, ok)

	submission := &store.QuizSubmission{Answers: []store.QuizAnswer{
		{Question: "?", UserAnswer: "wrong", CorrectAnswer: "right"},
	}}
	result, err := evaluator.EvaluateQuiz(ctx, submission)
	require.NoError(t, err)
	// Local tally would say zero correct; the upstream's answer wins.
	assert.Equal(t, 1, result.CorrectAnswers)
	assert.Equal(t, float64(1), result.Score)
}
