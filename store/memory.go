package store

import (
	"context"
)

// Memory is the object representing a photo memory.
type Memory struct {
	ID        string `json:"id"`
	ImageURL  string `json:"imageUrl"`
	Caption   string `json:"caption,omitempty"`
	CreatedTs int64  `json:"createdTs"`
}

// FindMemory is the find condition for memory.
type FindMemory struct {
	ID *string

	// Pagination
	Limit  *int
	Offset *int
}

// UpdateMemory is the update request for memory.
type UpdateMemory struct {
	ID       string
	ImageURL *string
	Caption  *string
}

// DeleteMemory is the delete request for memory.
type DeleteMemory struct {
	ID string
}

const cacheKeyMemories = "collection/memories"

// CreateMemory creates a new memory.
func (s *Store) CreateMemory(ctx context.Context, create *Memory) (*Memory, error) {
	done := s.track()
	memory, err := s.driver.CreateMemory(ctx, create)
	done(err)
	if err != nil {
		return nil, err
	}
	s.listCache.Delete(ctx, cacheKeyMemories)
	return memory, nil
}

// ListMemories lists memories with filter. On a failed refresh the
// previous successfully fetched collection is returned alongside the error.
func (s *Store) ListMemories(ctx context.Context, find *FindMemory) ([]*Memory, error) {
	done := s.track()
	list, err := s.driver.ListMemories(ctx, find)
	done(err)
	if err != nil {
		if cached, ok := s.listCache.Get(ctx, cacheKeyMemories); ok {
			if memories, ok := cached.([]*Memory); ok {
				return memories, err
			}
		}
		return nil, err
	}
	if find.ID == nil && find.Limit == nil {
		s.listCache.Set(ctx, cacheKeyMemories, list)
	}
	return list, nil
}

// GetMemory gets a memory by id. Returns nil when not found.
func (s *Store) GetMemory(ctx context.Context, find *FindMemory) (*Memory, error) {
	done := s.track()
	list, err := s.driver.ListMemories(ctx, find)
	done(err)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

// UpdateMemory updates a memory. Missing ids are a silent no-op.
func (s *Store) UpdateMemory(ctx context.Context, update *UpdateMemory) error {
	done := s.track()
	err := s.driver.UpdateMemory(ctx, update)
	done(err)
	if err != nil {
		return err
	}
	s.listCache.Delete(ctx, cacheKeyMemories)
	return nil
}

// DeleteMemory deletes a memory. Missing ids are a silent no-op.
func (s *Store) DeleteMemory(ctx context.Context, delete *DeleteMemory) error {
	done := s.track()
	err := s.driver.DeleteMemory(ctx, delete)
	done(err)
	if err != nil {
		return err
	}
	s.listCache.Delete(ctx, cacheKeyMemories)
	return nil
}
