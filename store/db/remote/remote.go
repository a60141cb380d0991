// Package remote implements the store driver against an upstream
// keepsake REST API. There are no optimistic writes: every mutation is
// an HTTP call followed by an unconditional re-fetch of the owning
// collection, so the mirrored state always converges to server truth.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"

	kperrors "github.com/lyrebird-labs/keepsake/internal/errors"
	"github.com/lyrebird-labs/keepsake/internal/profile"
	"github.com/lyrebird-labs/keepsake/store"
)

const (
	pathNotes           = "/notes"
	pathMemories        = "/memories"
	pathTimelineEvents  = "/timeline"
	pathCountdownEvents = "/countdown"
	pathCompliments     = "/compliments"
	pathQuizQuestions   = "/quiz"
	pathQuizEvaluate    = "/quiz/evaluate"
)

// DB is the remote REST-backed driver.
type DB struct {
	baseURL string
	client  *http.Client

	// mirror holds the collections as last fetched from the server.
	mu     sync.Mutex
	mirror struct {
		notes           []*store.Note
		memories        []*store.Memory
		timelineEvents  []*store.TimelineEvent
		countdownEvents []*store.CountdownEvent
		compliments     []*store.Compliment
		quizQuestions   []*store.QuizQuestion
	}
}

// NewDB creates a remote driver against profile.RemoteBaseURL.
func NewDB(profile *profile.Profile) (store.Driver, error) {
	if profile == nil {
		return nil, errors.New("profile is nil")
	}
	base := strings.TrimRight(profile.RemoteBaseURL, "/")
	if _, err := url.Parse(base); err != nil || base == "" {
		return nil, errors.Errorf("invalid remote base URL %q", profile.RemoteBaseURL)
	}
	return &DB{
		baseURL: base,
		client:  &http.Client{Timeout: 30 * time.Second},
	}, nil
}

func (d *DB) Close() error {
	d.client.CloseIdleConnections()
	return nil
}

// get fetches path and decodes the JSON response into out.
func (d *DB) get(ctx context.Context, path string, out any) error {
	return d.do(ctx, http.MethodGet, path, nil, out)
}

// do performs one JSON round trip. Transport failures and non-2xx
// statuses become TransportErrors; an undecodable body becomes a
// ParseError. A 404 on update/delete is mapped by callers, not here.
func (d *DB) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return errors.Wrapf(err, "failed to encode %s %s request", method, path)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, d.baseURL+path, body)
	if err != nil {
		return errors.Wrapf(err, "failed to build %s %s request", method, path)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return kperrors.Transport(err, "%s %s failed", method, path)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return kperrors.NotFound("%s %s", method, path)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return kperrors.Transport(errors.Errorf("status %d", resp.StatusCode), "%s %s failed", method, path)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return kperrors.Parse(err, "%s %s returned a malformed body", method, path)
		}
	}
	return nil
}

// mutate performs a mutating call and then unconditionally re-fetches
// the owning collection via refetch. A missing target is absorbed as a
// no-op; the refetch still runs so the mirror converges.
func (d *DB) mutate(ctx context.Context, method, path string, in, out any, refetch func(context.Context) error) error {
	err := d.do(ctx, method, path, in, out)
	if err != nil && !kperrors.Is(err, kperrors.CodeNotFound) {
		return err
	}
	return refetch(ctx)
}
