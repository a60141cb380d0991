package localfs

import (
	"context"
	"time"

	"github.com/lyrebird-labs/keepsake/store"
)

func (d *DB) CreateTimelineEvent(ctx context.Context, create *store.TimelineEvent) (*store.TimelineEvent, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if create.ID == "" {
		create.ID = store.NewUID()
	}
	if create.CreatedTs == 0 {
		create.CreatedTs = time.Now().Unix()
	}

	event := *create
	d.timelineEvents = append(d.timelineEvents, &event)
	if err := d.writeSlot(slotTimelineEvents, d.timelineEvents); err != nil {
		d.timelineEvents = d.timelineEvents[:len(d.timelineEvents)-1]
		return nil, err
	}
	return create, nil
}

func (d *DB) ListTimelineEvents(ctx context.Context, find *store.FindTimelineEvent) ([]*store.TimelineEvent, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	list := make([]*store.TimelineEvent, 0, len(d.timelineEvents))
	for _, event := range d.timelineEvents {
		if find.ID != nil && event.ID != *find.ID {
			continue
		}
		copied := *event
		list = append(list, &copied)
	}
	return store.Paginate(list, find.Limit, find.Offset), nil
}

func (d *DB) UpdateTimelineEvent(ctx context.Context, update *store.UpdateTimelineEvent) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, event := range d.timelineEvents {
		if event.ID != update.ID {
			continue
		}
		prev := *event
		if update.Title != nil {
			event.Title = *update.Title
		}
		if update.Description != nil {
			event.Description = *update.Description
		}
		if update.EventDate != nil {
			event.EventDate = *update.EventDate
		}
		if err := d.writeSlot(slotTimelineEvents, d.timelineEvents); err != nil {
			*event = prev
			return err
		}
		return nil
	}
	return nil
}

func (d *DB) DeleteTimelineEvent(ctx context.Context, delete *store.DeleteTimelineEvent) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i, event := range d.timelineEvents {
		if event.ID != delete.ID {
			continue
		}
		rest := append(d.timelineEvents[:i:i], d.timelineEvents[i+1:]...)
		if err := d.writeSlot(slotTimelineEvents, rest); err != nil {
			return err
		}
		d.timelineEvents = rest
		return nil
	}
	return nil
}
