package localfs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lyrebird-labs/keepsake/internal/profile"
	"github.com/lyrebird-labs/keepsake/store"
)

func newTestDB(t *testing.T, dir string) store.Driver {
	t.Helper()
	driver, err := NewDB(&profile.Profile{Mode: "dev", Data: dir, Driver: "localfs"})
	require.NoError(t, err)
	return driver
}

func TestSeedsFreshDirectory(t *testing.T) {
	dir := t.TempDir()
	driver := newTestDB(t, dir)

	notes, err := driver.ListNotes(context.Background(), &store.FindNote{})
	require.NoError(t, err)
	assert.Len(t, notes, 2)
	assert.Equal(t, "You make my heart smile every day.", notes[0].Content)

	// The seed is persisted, not just held in memory.
	for _, slot := range []string{slotNotes, slotMemories, slotTimelineEvents, slotCountdownEvents, slotCompliments, slotQuizQuestions} {
		_, err := os.Stat(filepath.Join(dir, slot+".json"))
		assert.NoError(t, err, "slot %s not written", slot)
	}
}

func TestReloadReproducesCollection(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	driver := newTestDB(t, dir)
	created, err := driver.CreateNote(ctx, &store.Note{Content: "remember this"})
	require.NoError(t, err)
	before, err := driver.ListNotes(ctx, &store.FindNote{})
	require.NoError(t, err)
	require.NoError(t, driver.Close())

	reloaded := newTestDB(t, dir)
	after, err := reloaded.ListNotes(ctx, &store.FindNote{})
	require.NoError(t, err)
	assert.Equal(t, before, after)

	found := false
	for _, note := range after {
		if note.ID == created.ID {
			found = true
			assert.Equal(t, "remember this", note.Content)
		}
	}
	assert.True(t, found)
}

func TestCorruptSlotFallsBackToSeed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, slotNotes+".json"), []byte("{not json"), 0o644))

	driver := newTestDB(t, dir)
	notes, err := driver.ListNotes(context.Background(), &store.FindNote{})
	require.NoError(t, err)
	assert.Len(t, notes, 2)

	// The corrupt slot was replaced with the seed.
	reloaded := newTestDB(t, dir)
	again, err := reloaded.ListNotes(context.Background(), &store.FindNote{})
	require.NoError(t, err)
	assert.Equal(t, notes, again)
}

func TestNewNotesComeFirst(t *testing.T) {
	ctx := context.Background()
	driver := newTestDB(t, t.TempDir())

	created, err := driver.CreateNote(ctx, &store.Note{Content: "latest"})
	require.NoError(t, err)

	notes, err := driver.ListNotes(ctx, &store.FindNote{})
	require.NoError(t, err)
	require.NotEmpty(t, notes)
	assert.Equal(t, created.ID, notes[0].ID)
}

func TestListCopiesRecords(t *testing.T) {
	ctx := context.Background()
	driver := newTestDB(t, t.TempDir())

	notes, err := driver.ListNotes(ctx, &store.FindNote{})
	require.NoError(t, err)
	require.NotEmpty(t, notes)
	notes[0].Content = "mutated by caller"

	again, err := driver.ListNotes(ctx, &store.FindNote{})
	require.NoError(t, err)
	assert.NotEqual(t, "mutated by caller", again[0].Content)
}

func TestUpdateVisibleAfterReload(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	driver := newTestDB(t, dir)

	created, err := driver.CreateCountdownEvent(ctx, &store.CountdownEvent{Title: "Trip", Date: "2030-05-01"})
	require.NoError(t, err)

	title := "Road Trip"
	require.NoError(t, driver.UpdateCountdownEvent(ctx, &store.UpdateCountdownEvent{ID: created.ID, Title: &title}))
	require.NoError(t, driver.Close())

	reloaded := newTestDB(t, dir)
	events, err := reloaded.ListCountdownEvents(ctx, &store.FindCountdownEvent{ID: &created.ID})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Road Trip", events[0].Title)
	assert.Equal(t, "2030-05-01", events[0].Date)
}
