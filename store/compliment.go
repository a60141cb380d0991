package store

import (
	"context"
)

// Compliment is the object representing a saved compliment.
type Compliment struct {
	ID         string `json:"id"`
	Content    string `json:"content"`
	IsFavorite bool   `json:"isFavorite"`
}

// FindCompliment is the find condition for compliment.
type FindCompliment struct {
	ID         *string
	IsFavorite *bool

	// Pagination
	Limit  *int
	Offset *int
}

// UpdateCompliment is the update request for compliment.
type UpdateCompliment struct {
	ID         string
	Content    *string
	IsFavorite *bool
}

// DeleteCompliment is the delete request for compliment.
type DeleteCompliment struct {
	ID string
}

const cacheKeyCompliments = "collection/compliments"

// CreateCompliment creates a new compliment.
func (s *Store) CreateCompliment(ctx context.Context, create *Compliment) (*Compliment, error) {
	done := s.track()
	compliment, err := s.driver.CreateCompliment(ctx, create)
	done(err)
	if err != nil {
		return nil, err
	}
	s.listCache.Delete(ctx, cacheKeyCompliments)
	return compliment, nil
}

// ListCompliments lists compliments with filter. On a failed refresh the
// previous successfully fetched collection is returned alongside the error.
func (s *Store) ListCompliments(ctx context.Context, find *FindCompliment) ([]*Compliment, error) {
	done := s.track()
	list, err := s.driver.ListCompliments(ctx, find)
	done(err)
	if err != nil {
		if cached, ok := s.listCache.Get(ctx, cacheKeyCompliments); ok {
			if compliments, ok := cached.([]*Compliment); ok {
				return compliments, err
			}
		}
		return nil, err
	}
	if find.ID == nil && find.IsFavorite == nil && find.Limit == nil {
		s.listCache.Set(ctx, cacheKeyCompliments, list)
	}
	return list, nil
}

// GetCompliment gets a compliment by id. Returns nil when not found.
func (s *Store) GetCompliment(ctx context.Context, find *FindCompliment) (*Compliment, error) {
	done := s.track()
	list, err := s.driver.ListCompliments(ctx, find)
	done(err)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

// UpdateCompliment updates a compliment. Missing ids are a silent no-op.
func (s *Store) UpdateCompliment(ctx context.Context, update *UpdateCompliment) error {
	done := s.track()
	err := s.driver.UpdateCompliment(ctx, update)
	done(err)
	if err != nil {
		return err
	}
	s.listCache.Delete(ctx, cacheKeyCompliments)
	return nil
}

// ToggleFavoriteCompliment flips the favorite flag of a compliment.
// Toggling twice restores the original state. Missing ids are a silent
// no-op.
func (s *Store) ToggleFavoriteCompliment(ctx context.Context, id string) error {
	compliment, err := s.GetCompliment(ctx, &FindCompliment{ID: &id})
	if err != nil {
		return err
	}
	if compliment == nil {
		return nil
	}
	toggled := !compliment.IsFavorite
	return s.UpdateCompliment(ctx, &UpdateCompliment{ID: id, IsFavorite: &toggled})
}

// DeleteCompliment deletes a compliment. Missing ids are a silent no-op.
func (s *Store) DeleteCompliment(ctx context.Context, delete *DeleteCompliment) error {
	done := s.track()
	err := s.driver.DeleteCompliment(ctx, delete)
	done(err)
	if err != nil {
		return err
	}
	s.listCache.Delete(ctx, cacheKeyCompliments)
	return nil
}
