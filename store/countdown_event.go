package store

import (
	"context"
	"time"
)

// CountdownEvent is the object representing an upcoming special date.
// Date is a calendar date in "2006-01-02" form.
type CountdownEvent struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Date  string `json:"date"`
}

// FindCountdownEvent is the find condition for countdown event.
type FindCountdownEvent struct {
	ID *string

	// Pagination
	Limit  *int
	Offset *int
}

// UpdateCountdownEvent is the update request for countdown event.
type UpdateCountdownEvent struct {
	ID    string
	Title *string
	Date  *string
}

// DeleteCountdownEvent is the delete request for countdown event.
type DeleteCountdownEvent struct {
	ID string
}

const cacheKeyCountdownEvents = "collection/countdown"

// TargetTime parses the event date as local midnight of that day.
func (e *CountdownEvent) TargetTime(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", e.Date, loc)
}

// CreateCountdownEvent creates a new countdown event.
func (s *Store) CreateCountdownEvent(ctx context.Context, create *CountdownEvent) (*CountdownEvent, error) {
	done := s.track()
	event, err := s.driver.CreateCountdownEvent(ctx, create)
	done(err)
	if err != nil {
		return nil, err
	}
	s.listCache.Delete(ctx, cacheKeyCountdownEvents)
	return event, nil
}

// ListCountdownEvents lists countdown events with filter. On a failed
// refresh the previous successfully fetched collection is returned
// alongside the error.
func (s *Store) ListCountdownEvents(ctx context.Context, find *FindCountdownEvent) ([]*CountdownEvent, error) {
	done := s.track()
	list, err := s.driver.ListCountdownEvents(ctx, find)
	done(err)
	if err != nil {
		if cached, ok := s.listCache.Get(ctx, cacheKeyCountdownEvents); ok {
			if events, ok := cached.([]*CountdownEvent); ok {
				return events, err
			}
		}
		return nil, err
	}
	if find.ID == nil && find.Limit == nil {
		s.listCache.Set(ctx, cacheKeyCountdownEvents, list)
	}
	return list, nil
}

// GetCountdownEvent gets a countdown event by id. Returns nil when not found.
func (s *Store) GetCountdownEvent(ctx context.Context, find *FindCountdownEvent) (*CountdownEvent, error) {
	done := s.track()
	list, err := s.driver.ListCountdownEvents(ctx, find)
	done(err)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

// UpdateCountdownEvent updates a countdown event. Missing ids are a silent no-op.
func (s *Store) UpdateCountdownEvent(ctx context.Context, update *UpdateCountdownEvent) error {
	done := s.track()
	err := s.driver.UpdateCountdownEvent(ctx, update)
	done(err)
	if err != nil {
		return err
	}
	s.listCache.Delete(ctx, cacheKeyCountdownEvents)
	return nil
}

// DeleteCountdownEvent deletes a countdown event. Missing ids are a silent no-op.
func (s *Store) DeleteCountdownEvent(ctx context.Context, delete *DeleteCountdownEvent) error {
	done := s.track()
	err := s.driver.DeleteCountdownEvent(ctx, delete)
	done(err)
	if err != nil {
		return err
	}
	s.listCache.Delete(ctx, cacheKeyCountdownEvents)
	return nil
}
