package localfs

import (
	"context"

	"github.com/lyrebird-labs/keepsake/store"
)

func (d *DB) CreateCountdownEvent(ctx context.Context, create *store.CountdownEvent) (*store.CountdownEvent, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if create.ID == "" {
		create.ID = store.NewUID()
	}

	event := *create
	d.countdownEvents = append(d.countdownEvents, &event)
	if err := d.writeSlot(slotCountdownEvents, d.countdownEvents); err != nil {
		d.countdownEvents = d.countdownEvents[:len(d.countdownEvents)-1]
		return nil, err
	}
	return create, nil
}

func (d *DB) ListCountdownEvents(ctx context.Context, find *store.FindCountdownEvent) ([]*store.CountdownEvent, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	list := make([]*store.CountdownEvent, 0, len(d.countdownEvents))
	for _, event := range d.countdownEvents {
		if find.ID != nil && event.ID != *find.ID {
			continue
		}
		copied := *event
		list = append(list, &copied)
	}
	return store.Paginate(list, find.Limit, find.Offset), nil
}

func (d *DB) UpdateCountdownEvent(ctx context.Context, update *store.UpdateCountdownEvent) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, event := range d.countdownEvents {
		if event.ID != update.ID {
			continue
		}
		prev := *event
		if update.Title != nil {
			event.Title = *update.Title
		}
		if update.Date != nil {
			event.Date = *update.Date
		}
		if err := d.writeSlot(slotCountdownEvents, d.countdownEvents); err != nil {
			*event = prev
			return err
		}
		return nil
	}
	return nil
}

func (d *DB) DeleteCountdownEvent(ctx context.Context, delete *store.DeleteCountdownEvent) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i, event := range d.countdownEvents {
		if event.ID != delete.ID {
			continue
		}
		rest := append(d.countdownEvents[:i:i], d.countdownEvents[i+1:]...)
		if err := d.writeSlot(slotCountdownEvents, rest); err != nil {
			return err
		}
		d.countdownEvents = rest
		return nil
	}
	return nil
}
