// Package localfs implements the store driver on durable local
// key-value slots: one JSON file per resource under the data
// directory. Every mutation rewrites the owning slot synchronously, so
// the in-memory collection is always byte-identical to what was last
// written. Absent or unparsable slots fall back to the default seed
// dataset instead of failing startup.
package localfs

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pkg/errors"

	kperrors "github.com/lyrebird-labs/keepsake/internal/errors"
	"github.com/lyrebird-labs/keepsake/internal/profile"
	"github.com/lyrebird-labs/keepsake/store"
)

// Slot names match the storage keys of the original browser-local
// variant; changing them orphans existing data files.
const (
	slotNotes           = "love-notes"
	slotMemories        = "love-memories"
	slotTimelineEvents  = "love-timeline"
	slotCountdownEvents = "love-countdown"
	slotCompliments     = "love-compliments"
	slotQuizQuestions   = "love-quiz"
)

// DB is the local slot-backed driver.
type DB struct {
	profile *profile.Profile

	mu              sync.Mutex
	notes           []*store.Note
	memories        []*store.Memory
	timelineEvents  []*store.TimelineEvent
	countdownEvents []*store.CountdownEvent
	compliments     []*store.Compliment
	quizQuestions   []*store.QuizQuestion
}

// NewDB opens the local slot driver, seeding each collection from its
// slot or from the default dataset.
func NewDB(profile *profile.Profile) (store.Driver, error) {
	if profile == nil {
		return nil, errors.New("profile is nil")
	}

	d := &DB{profile: profile}
	seed := store.DefaultSeed(time.Now())

	if err := d.loadSlot(slotNotes, &d.notes, seed.Notes); err != nil {
		return nil, err
	}
	if err := d.loadSlot(slotMemories, &d.memories, seed.Memories); err != nil {
		return nil, err
	}
	if err := d.loadSlot(slotTimelineEvents, &d.timelineEvents, seed.TimelineEvents); err != nil {
		return nil, err
	}
	if err := d.loadSlot(slotCountdownEvents, &d.countdownEvents, seed.CountdownEvents); err != nil {
		return nil, err
	}
	if err := d.loadSlot(slotCompliments, &d.compliments, seed.Compliments); err != nil {
		return nil, err
	}
	if err := d.loadSlot(slotQuizQuestions, &d.quizQuestions, seed.QuizQuestions); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *DB) Close() error {
	return nil
}

func (d *DB) slotPath(name string) string {
	return filepath.Join(d.profile.Data, name+".json")
}

// loadSlot deserializes a slot into target, seeding (and persisting the
// seed) when the slot is absent or corrupt.
func (d *DB) loadSlot(name string, target any, seed any) error {
	path := d.slotPath(name)
	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return errors.Wrapf(err, "failed to read slot %s", name)
		}
		return d.seedSlot(name, target, seed)
	}

	if err := json.Unmarshal(raw, target); err != nil {
		parseErr := kperrors.Parse(err, "slot %s is corrupt", name)
		slog.Warn("falling back to seed dataset", slog.String("slot", name), slog.String("error", parseErr.Error()))
		return d.seedSlot(name, target, seed)
	}
	return nil
}

func (d *DB) seedSlot(name string, target any, seed any) error {
	raw, err := json.Marshal(seed)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal seed for slot %s", name)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return errors.Wrapf(err, "failed to copy seed for slot %s", name)
	}
	return d.writeSlot(name, seed)
}

// writeSlot durably rewrites a slot. The write goes to a temp file in
// the same directory first so a crash never leaves a half-written slot.
func (d *DB) writeSlot(name string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal slot %s", name)
	}

	path := d.slotPath(name)
	tmp, err := os.CreateTemp(filepath.Dir(path), name+".*.tmp")
	if err != nil {
		return errors.Wrapf(err, "failed to create temp file for slot %s", name)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "failed to write slot %s", name)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "failed to close slot %s", name)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrapf(err, "failed to replace slot %s", name)
	}
	return nil
}
