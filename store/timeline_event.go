package store

import (
	"context"
	"sort"
)

// TimelineEvent is the object representing a relationship milestone.
// EventDate is a calendar date in "2006-01-02" form.
type TimelineEvent struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	EventDate   string `json:"eventDate"`
	CreatedTs   int64  `json:"createdTs"`
}

// FindTimelineEvent is the find condition for timeline event.
type FindTimelineEvent struct {
	ID *string

	// Pagination
	Limit  *int
	Offset *int
}

// UpdateTimelineEvent is the update request for timeline event.
type UpdateTimelineEvent struct {
	ID          string
	Title       *string
	Description *string
	EventDate   *string
}

// DeleteTimelineEvent is the delete request for timeline event.
type DeleteTimelineEvent struct {
	ID string
}

const cacheKeyTimelineEvents = "collection/timeline"

// SortTimelineEvents orders events by event date. Ordering is a view
// concern applied after fetch, not a storage invariant; ties fall back
// to creation time so the order is stable.
func SortTimelineEvents(events []*TimelineEvent, ascending bool) {
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].EventDate != events[j].EventDate {
			if ascending {
				return events[i].EventDate < events[j].EventDate
			}
			return events[i].EventDate > events[j].EventDate
		}
		if ascending {
			return events[i].CreatedTs < events[j].CreatedTs
		}
		return events[i].CreatedTs > events[j].CreatedTs
	})
}

// CreateTimelineEvent creates a new timeline event.
func (s *Store) CreateTimelineEvent(ctx context.Context, create *TimelineEvent) (*TimelineEvent, error) {
	done := s.track()
	event, err := s.driver.CreateTimelineEvent(ctx, create)
	done(err)
	if err != nil {
		return nil, err
	}
	s.listCache.Delete(ctx, cacheKeyTimelineEvents)
	return event, nil
}

// ListTimelineEvents lists timeline events with filter. On a failed
// refresh the previous successfully fetched collection is returned
// alongside the error.
func (s *Store) ListTimelineEvents(ctx context.Context, find *FindTimelineEvent) ([]*TimelineEvent, error) {
	done := s.track()
	list, err := s.driver.ListTimelineEvents(ctx, find)
	done(err)
	if err != nil {
		if cached, ok := s.listCache.Get(ctx, cacheKeyTimelineEvents); ok {
			if events, ok := cached.([]*TimelineEvent); ok {
				return events, err
			}
		}
		return nil, err
	}
	if find.ID == nil && find.Limit == nil {
		s.listCache.Set(ctx, cacheKeyTimelineEvents, list)
	}
	return list, nil
}

// GetTimelineEvent gets a timeline event by id. Returns nil when not found.
func (s *Store) GetTimelineEvent(ctx context.Context, find *FindTimelineEvent) (*TimelineEvent, error) {
	done := s.track()
	list, err := s.driver.ListTimelineEvents(ctx, find)
	done(err)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

// UpdateTimelineEvent updates a timeline event. Missing ids are a silent no-op.
func (s *Store) UpdateTimelineEvent(ctx context.Context, update *UpdateTimelineEvent) error {
	done := s.track()
	err := s.driver.UpdateTimelineEvent(ctx, update)
	done(err)
	if err != nil {
		return err
	}
	s.listCache.Delete(ctx, cacheKeyTimelineEvents)
	return nil
}

// DeleteTimelineEvent deletes a timeline event. Missing ids are a silent no-op.
func (s *Store) DeleteTimelineEvent(ctx context.Context, delete *DeleteTimelineEvent) error {
	done := s.track()
	err := s.driver.DeleteTimelineEvent(ctx, delete)
	done(err)
	if err != nil {
		return err
	}
	s.listCache.Delete(ctx, cacheKeyTimelineEvents)
	return nil
}
