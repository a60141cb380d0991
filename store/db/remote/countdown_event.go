package remote

import (
	"context"
	"fmt"

	"github.com/lyrebird-labs/keepsake/store"
)

func (d *DB) refetchCountdownEvents(ctx context.Context) error {
	var list []*store.CountdownEvent
	if err := d.get(ctx, pathCountdownEvents, &list); err != nil {
		return err
	}
	d.mu.Lock()
	d.mirror.countdownEvents = list
	d.mu.Unlock()
	return nil
}

func (d *DB) CreateCountdownEvent(ctx context.Context, create *store.CountdownEvent) (*store.CountdownEvent, error) {
	var created store.CountdownEvent
	if err := d.mutate(ctx, "POST", pathCountdownEvents, create, &created, d.refetchCountdownEvents); err != nil {
		return nil, err
	}
	return &created, nil
}

func (d *DB) ListCountdownEvents(ctx context.Context, find *store.FindCountdownEvent) ([]*store.CountdownEvent, error) {
	if err := d.refetchCountdownEvents(ctx); err != nil {
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	list := make([]*store.CountdownEvent, 0, len(d.mirror.countdownEvents))
	for _, event := range d.mirror.countdownEvents {
		if find.ID != nil && event.ID != *find.ID {
			continue
		}
		copied := *event
		list = append(list, &copied)
	}
	return store.Paginate(list, find.Limit, find.Offset), nil
}

func (d *DB) UpdateCountdownEvent(ctx context.Context, update *store.UpdateCountdownEvent) error {
	body := map[string]any{}
	if update.Title != nil {
		body["title"] = *update.Title
	}
	if update.Date != nil {
		body["date"] = *update.Date
	}
	return d.mutate(ctx, "PUT", fmt.Sprintf("%s/%s", pathCountdownEvents, update.ID), body, nil, d.refetchCountdownEvents)
}

func (d *DB) DeleteCountdownEvent(ctx context.Context, delete *store.DeleteCountdownEvent) error {
	return d.mutate(ctx, "DELETE", fmt.Sprintf("%s/%s", pathCountdownEvents, delete.ID), nil, nil, d.refetchCountdownEvents)
}
