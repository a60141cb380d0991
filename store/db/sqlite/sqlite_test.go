package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lyrebird-labs/keepsake/internal/profile"
	"github.com/lyrebird-labs/keepsake/store"
)

func newTestDB(t *testing.T, mode string) store.Driver {
	t.Helper()
	p := &profile.Profile{
		Mode:   mode,
		Driver: "sqlite",
		DSN:    filepath.Join(t.TempDir(), "keepsake_test.db"),
	}
	driver, err := NewDB(p)
	require.NoError(t, err)
	t.Cleanup(func() { driver.Close() })
	return driver
}

func TestDemoModeSeedsOnce(t *testing.T) {
	ctx := context.Background()
	driver := newTestDB(t, "demo")

	notes, err := driver.ListNotes(ctx, &store.FindNote{})
	require.NoError(t, err)
	assert.Len(t, notes, 2)

	questions, err := driver.ListQuizQuestions(ctx, &store.FindQuizQuestion{})
	require.NoError(t, err)
	assert.Len(t, questions, 2)
}

func TestDevModeStartsEmpty(t *testing.T) {
	ctx := context.Background()
	driver := newTestDB(t, "dev")

	notes, err := driver.ListNotes(ctx, &store.FindNote{})
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestNoteCRUD(t *testing.T) {
	ctx := context.Background()
	driver := newTestDB(t, "dev")

	created, err := driver.CreateNote(ctx, &store.Note{Content: "first"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.NotZero(t, created.CreatedTs)

	second, err := driver.CreateNote(ctx, &store.Note{Content: "second", CreatedTs: created.CreatedTs + 10})
	require.NoError(t, err)

	// Listed newest first.
	notes, err := driver.ListNotes(ctx, &store.FindNote{})
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, second.ID, notes[0].ID)

	content := "first, edited"
	require.NoError(t, driver.UpdateNote(ctx, &store.UpdateNote{ID: created.ID, Content: &content}))
	notes, err = driver.ListNotes(ctx, &store.FindNote{ID: &created.ID})
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, content, notes[0].Content)

	// Missing targets are silent no-ops.
	require.NoError(t, driver.UpdateNote(ctx, &store.UpdateNote{ID: "no-such-id", Content: &content}))
	require.NoError(t, driver.DeleteNote(ctx, &store.DeleteNote{ID: "no-such-id"}))

	require.NoError(t, driver.DeleteNote(ctx, &store.DeleteNote{ID: created.ID}))
	notes, err = driver.ListNotes(ctx, &store.FindNote{})
	require.NoError(t, err)
	assert.Len(t, notes, 1)
}

func TestComplimentFavoriteFilter(t *testing.T) {
	ctx := context.Background()
	driver := newTestDB(t, "dev")

	_, err := driver.CreateCompliment(ctx, &store.Compliment{Content: "plain"})
	require.NoError(t, err)
	fav, err := driver.CreateCompliment(ctx, &store.Compliment{Content: "starred", IsFavorite: true})
	require.NoError(t, err)

	isFavorite := true
	compliments, err := driver.ListCompliments(ctx, &store.FindCompliment{IsFavorite: &isFavorite})
	require.NoError(t, err)
	require.Len(t, compliments, 1)
	assert.Equal(t, fav.ID, compliments[0].ID)
}

func TestPagination(t *testing.T) {
	ctx := context.Background()
	driver := newTestDB(t, "dev")

	for i := int64(0); i < 5; i++ {
		_, err := driver.CreateNote(ctx, &store.Note{Content: "n", CreatedTs: 1000 + i})
		require.NoError(t, err)
	}

	limit, offset := 2, 1
	notes, err := driver.ListNotes(ctx, &store.FindNote{Limit: &limit, Offset: &offset})
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, int64(1003), notes[0].CreatedTs)
	assert.Equal(t, int64(1002), notes[1].CreatedTs)
}
