package remote

import (
	"context"
	"fmt"

	"github.com/lyrebird-labs/keepsake/store"
)

func (d *DB) refetchTimelineEvents(ctx context.Context) error {
	var list []*store.TimelineEvent
	if err := d.get(ctx, pathTimelineEvents, &list); err != nil {
		return err
	}
	d.mu.Lock()
	d.mirror.timelineEvents = list
	d.mu.Unlock()
	return nil
}

func (d *DB) CreateTimelineEvent(ctx context.Context, create *store.TimelineEvent) (*store.TimelineEvent, error) {
	var created store.TimelineEvent
	if err := d.mutate(ctx, "POST", pathTimelineEvents, create, &created, d.refetchTimelineEvents); err != nil {
		return nil, err
	}
	return &created, nil
}

func (d *DB) ListTimelineEvents(ctx context.Context, find *store.FindTimelineEvent) ([]*store.TimelineEvent, error) {
	if err := d.refetchTimelineEvents(ctx); err != nil {
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	list := make([]*store.TimelineEvent, 0, len(d.mirror.timelineEvents))
	for _, event := range d.mirror.timelineEvents {
		if find.ID != nil && event.ID != *find.ID {
			continue
		}
		copied := *event
		list = append(list, &copied)
	}
	return store.Paginate(list, find.Limit, find.Offset), nil
}

func (d *DB) UpdateTimelineEvent(ctx context.Context, update *store.UpdateTimelineEvent) error {
	body := map[string]any{}
	if update.Title != nil {
		body["title"] = *update.Title
	}
	if update.Description != nil {
		body["description"] = *update.Description
	}
	if update.EventDate != nil {
		body["eventDate"] = *update.EventDate
	}
	return d.mutate(ctx, "PUT", fmt.Sprintf("%s/%s", pathTimelineEvents, update.ID), body, nil, d.refetchTimelineEvents)
}

func (d *DB) DeleteTimelineEvent(ctx context.Context, delete *store.DeleteTimelineEvent) error {
	return d.mutate(ctx, "DELETE", fmt.Sprintf("%s/%s", pathTimelineEvents, delete.ID), nil, nil, d.refetchTimelineEvents)
}
