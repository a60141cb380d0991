package localfs

import (
	"context"
	"time"

	"github.com/lyrebird-labs/keepsake/store"
)

func (d *DB) CreateNote(ctx context.Context, create *store.Note) (*store.Note, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if create.ID == "" {
		create.ID = store.NewUID()
	}
	if create.CreatedTs == 0 {
		create.CreatedTs = time.Now().Unix()
	}

	note := *create
	// Newest first, matching the original collection order.
	d.notes = append([]*store.Note{&note}, d.notes...)
	if err := d.writeSlot(slotNotes, d.notes); err != nil {
		d.notes = d.notes[1:]
		return nil, err
	}
	return create, nil
}

func (d *DB) ListNotes(ctx context.Context, find *store.FindNote) ([]*store.Note, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	list := make([]*store.Note, 0, len(d.notes))
	for _, note := range d.notes {
		if find.ID != nil && note.ID != *find.ID {
			continue
		}
		copied := *note
		list = append(list, &copied)
	}
	return store.Paginate(list, find.Limit, find.Offset), nil
}

func (d *DB) UpdateNote(ctx context.Context, update *store.UpdateNote) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, note := range d.notes {
		if note.ID != update.ID {
			continue
		}
		prev := *note
		if update.Content != nil {
			note.Content = *update.Content
		}
		if err := d.writeSlot(slotNotes, d.notes); err != nil {
			*note = prev
			return err
		}
		return nil
	}
	// Missing target: silent no-op.
	return nil
}

func (d *DB) DeleteNote(ctx context.Context, delete *store.DeleteNote) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i, note := range d.notes {
		if note.ID != delete.ID {
			continue
		}
		rest := append(d.notes[:i:i], d.notes[i+1:]...)
		if err := d.writeSlot(slotNotes, rest); err != nil {
			return err
		}
		d.notes = rest
		return nil
	}
	return nil
}
