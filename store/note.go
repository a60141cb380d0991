package store

import (
	"context"
)

// Note is the object representing a love note.
type Note struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	CreatedTs int64  `json:"createdTs"`
}

// FindNote is the find condition for note.
type FindNote struct {
	ID *string

	// Pagination
	Limit  *int
	Offset *int
}

// UpdateNote is the update request for note. Nil fields are left as-is;
// ID and CreatedTs are never touched.
type UpdateNote struct {
	ID      string
	Content *string
}

// DeleteNote is the delete request for note.
type DeleteNote struct {
	ID string
}

const cacheKeyNotes = "collection/notes"

// CreateNote creates a new note.
func (s *Store) CreateNote(ctx context.Context, create *Note) (*Note, error) {
	done := s.track()
	note, err := s.driver.CreateNote(ctx, create)
	done(err)
	if err != nil {
		return nil, err
	}
	s.listCache.Delete(ctx, cacheKeyNotes)
	return note, nil
}

// ListNotes lists notes with filter. On a failed refresh the previous
// successfully fetched collection is returned alongside the error.
func (s *Store) ListNotes(ctx context.Context, find *FindNote) ([]*Note, error) {
	done := s.track()
	list, err := s.driver.ListNotes(ctx, find)
	done(err)
	if err != nil {
		if cached, ok := s.listCache.Get(ctx, cacheKeyNotes); ok {
			if notes, ok := cached.([]*Note); ok {
				return notes, err
			}
		}
		return nil, err
	}
	if find.ID == nil && find.Limit == nil {
		s.listCache.Set(ctx, cacheKeyNotes, list)
	}
	return list, nil
}

// GetNote gets a note by id. Returns nil when not found.
func (s *Store) GetNote(ctx context.Context, find *FindNote) (*Note, error) {
	done := s.track()
	list, err := s.driver.ListNotes(ctx, find)
	done(err)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

// UpdateNote updates a note. Missing ids are a silent no-op.
func (s *Store) UpdateNote(ctx context.Context, update *UpdateNote) error {
	done := s.track()
	err := s.driver.UpdateNote(ctx, update)
	done(err)
	if err != nil {
		return err
	}
	s.listCache.Delete(ctx, cacheKeyNotes)
	return nil
}

// DeleteNote deletes a note. Missing ids are a silent no-op.
func (s *Store) DeleteNote(ctx context.Context, delete *DeleteNote) error {
	done := s.track()
	err := s.driver.DeleteNote(ctx, delete)
	done(err)
	if err != nil {
		return err
	}
	s.listCache.Delete(ctx, cacheKeyNotes)
	return nil
}
