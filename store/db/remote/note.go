package remote

import (
	"context"
	"fmt"

	"github.com/lyrebird-labs/keepsake/store"
)

func (d *DB) refetchNotes(ctx context.Context) error {
	var list []*store.Note
	if err := d.get(ctx, pathNotes, &list); err != nil {
		return err
	}
	d.mu.Lock()
	d.mirror.notes = list
	d.mu.Unlock()
	return nil
}

func (d *DB) CreateNote(ctx context.Context, create *store.Note) (*store.Note, error) {
	var created store.Note
	if err := d.mutate(ctx, "POST", pathNotes, create, &created, d.refetchNotes); err != nil {
		return nil, err
	}
	return &created, nil
}

func (d *DB) ListNotes(ctx context.Context, find *store.FindNote) ([]*store.Note, error) {
	if err := d.refetchNotes(ctx); err != nil {
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	list := make([]*store.Note, 0, len(d.mirror.notes))
	for _, note := range d.mirror.notes {
		if find.ID != nil && note.ID != *find.ID {
			continue
		}
		copied := *note
		list = append(list, &copied)
	}
	return store.Paginate(list, find.Limit, find.Offset), nil
}

func (d *DB) UpdateNote(ctx context.Context, update *store.UpdateNote) error {
	body := map[string]any{}
	if update.Content != nil {
		body["content"] = *update.Content
	}
	return d.mutate(ctx, "PUT", fmt.Sprintf("%s/%s", pathNotes, update.ID), body, nil, d.refetchNotes)
}

func (d *DB) DeleteNote(ctx context.Context, delete *store.DeleteNote) error {
	return d.mutate(ctx, "DELETE", fmt.Sprintf("%s/%s", pathNotes, delete.ID), nil, nil, d.refetchNotes)
}
