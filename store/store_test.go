package store_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lyrebird-labs/keepsake/internal/profile"
	"github.com/lyrebird-labs/keepsake/store"
	"github.com/lyrebird-labs/keepsake/store/db/localfs"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	p := &profile.Profile{Mode: "dev", Data: t.TempDir(), Driver: "localfs"}
	driver, err := localfs.NewDB(p)
	require.NoError(t, err)
	st := store.New(driver, p)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestNoteRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	before, err := st.ListNotes(ctx, &store.FindNote{})
	require.NoError(t, err)

	created, err := st.CreateNote(ctx, &store.Note{Content: "hello you"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	after, err := st.ListNotes(ctx, &store.FindNote{})
	require.NoError(t, err)
	assert.Len(t, after, len(before)+1)

	seen := map[string]bool{}
	var found *store.Note
	for _, note := range after {
		assert.False(t, seen[note.ID], "duplicate id %s", note.ID)
		seen[note.ID] = true
		if note.ID == created.ID {
			found = note
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, "hello you", found.Content)

	require.NoError(t, st.DeleteNote(ctx, &store.DeleteNote{ID: created.ID}))
	after, err = st.ListNotes(ctx, &store.FindNote{})
	require.NoError(t, err)
	assert.Len(t, after, len(before))
	for _, note := range after {
		assert.NotEqual(t, created.ID, note.ID)
	}
}

func TestUpdateMissingIsNoOp(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	before, err := st.ListNotes(ctx, &store.FindNote{})
	require.NoError(t, err)

	content := "ghost"
	require.NoError(t, st.UpdateNote(ctx, &store.UpdateNote{ID: "no-such-id", Content: &content}))
	require.NoError(t, st.DeleteNote(ctx, &store.DeleteNote{ID: "no-such-id"}))

	after, err := st.ListNotes(ctx, &store.FindNote{})
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestToggleFavoriteCompliment(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	created, err := st.CreateCompliment(ctx, &store.Compliment{Content: "you are magic"})
	require.NoError(t, err)
	require.False(t, created.IsFavorite)

	require.NoError(t, st.ToggleFavoriteCompliment(ctx, created.ID))
	compliment, err := st.GetCompliment(ctx, &store.FindCompliment{ID: &created.ID})
	require.NoError(t, err)
	require.NotNil(t, compliment)
	assert.True(t, compliment.IsFavorite)

	require.NoError(t, st.ToggleFavoriteCompliment(ctx, created.ID))
	compliment, err = st.GetCompliment(ctx, &store.FindCompliment{ID: &created.ID})
	require.NoError(t, err)
	assert.False(t, compliment.IsFavorite)

	// Toggling a missing id changes nothing.
	require.NoError(t, st.ToggleFavoriteCompliment(ctx, "no-such-id"))
}

// flakyDriver wraps a real driver and fails note listing on demand.
type flakyDriver struct {
	store.Driver
	fail bool
}

func (d *flakyDriver) ListNotes(ctx context.Context, find *store.FindNote) ([]*store.Note, error) {
	if d.fail {
		return nil, errors.New("backend unreachable")
	}
	return d.Driver.ListNotes(ctx, find)
}

func TestSharedErrorSlot(t *testing.T) {
	ctx := context.Background()
	p := &profile.Profile{Mode: "dev", Data: t.TempDir(), Driver: "localfs"}
	inner, err := localfs.NewDB(p)
	require.NoError(t, err)
	flaky := &flakyDriver{Driver: inner}
	st := store.New(flaky, p)
	t.Cleanup(func() { st.Close() })

	healthy, err := st.ListNotes(ctx, &store.FindNote{})
	require.NoError(t, err)
	assert.Empty(t, st.LastError())

	flaky.fail = true
	stale, err := st.ListNotes(ctx, &store.FindNote{})
	require.Error(t, err)
	assert.NotEmpty(t, st.LastError())
	// The previous successful collection stays observable.
	assert.Equal(t, healthy, stale)

	// Any success clears the slot.
	flaky.fail = false
	_, err = st.ListNotes(ctx, &store.FindNote{})
	require.NoError(t, err)
	assert.Empty(t, st.LastError())
}

func (d *flakyDriver) ListCompliments(ctx context.Context, find *store.FindCompliment) ([]*store.Compliment, error) {
	if d.fail {
		return nil, errors.New("backend unreachable")
	}
	return d.Driver.ListCompliments(ctx, find)
}

func TestGetFillsSharedErrorSlot(t *testing.T) {
	ctx := context.Background()
	p := &profile.Profile{Mode: "dev", Data: t.TempDir(), Driver: "localfs"}
	inner, err := localfs.NewDB(p)
	require.NoError(t, err)
	flaky := &flakyDriver{Driver: inner}
	st := store.New(flaky, p)
	t.Cleanup(func() { st.Close() })

	created, err := st.CreateCompliment(ctx, &store.Compliment{Content: "bright"})
	require.NoError(t, err)
	require.Empty(t, st.LastError())

	// A toggle whose read phase fails must surface on the shared slot.
	flaky.fail = true
	require.Error(t, st.ToggleFavoriteCompliment(ctx, created.ID))
	assert.NotEmpty(t, st.LastError())

	id := "whatever"
	_, err = st.GetCompliment(ctx, &store.FindCompliment{ID: &id})
	require.Error(t, err)
	assert.NotEmpty(t, st.LastError())
	assert.False(t, st.Loading())

	flaky.fail = false
	_, err = st.GetCompliment(ctx, &store.FindCompliment{ID: &created.ID})
	require.NoError(t, err)
	assert.Empty(t, st.LastError())
}

func TestRefreshAll(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	require.NoError(t, st.RefreshAll(ctx))
	assert.Empty(t, st.LastError())
	assert.False(t, st.Loading())
}

func TestPaginate(t *testing.T) {
	list := []int{1, 2, 3, 4, 5}
	limit, offset := 2, 1

	assert.Equal(t, list, store.Paginate(list, nil, nil))
	assert.Equal(t, []int{2, 3}, store.Paginate(list, &limit, &offset))

	bigOffset := 10
	assert.Empty(t, store.Paginate(list, &limit, &bigOffset))
}
