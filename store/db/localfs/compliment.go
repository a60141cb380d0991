package localfs

import (
	"context"

	"github.com/lyrebird-labs/keepsake/store"
)

func (d *DB) CreateCompliment(ctx context.Context, create *store.Compliment) (*store.Compliment, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if create.ID == "" {
		create.ID = store.NewUID()
	}

	compliment := *create
	d.compliments = append(d.compliments, &compliment)
	if err := d.writeSlot(slotCompliments, d.compliments); err != nil {
		d.compliments = d.compliments[:len(d.compliments)-1]
		return nil, err
	}
	return create, nil
}

func (d *DB) ListCompliments(ctx context.Context, find *store.FindCompliment) ([]*store.Compliment, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	list := make([]*store.Compliment, 0, len(d.compliments))
	for _, compliment := range d.compliments {
		if find.ID != nil && compliment.ID != *find.ID {
			continue
		}
		if find.IsFavorite != nil && compliment.IsFavorite != *find.IsFavorite {
			continue
		}
		copied := *compliment
		list = append(list, &copied)
	}
	return store.Paginate(list, find.Limit, find.Offset), nil
}

func (d *DB) UpdateCompliment(ctx context.Context, update *store.UpdateCompliment) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, compliment := range d.compliments {
		if compliment.ID != update.ID {
			continue
		}
		prev := *compliment
		if update.Content != nil {
			compliment.Content = *update.Content
		}
		if update.IsFavorite != nil {
			compliment.IsFavorite = *update.IsFavorite
		}
		if err := d.writeSlot(slotCompliments, d.compliments); err != nil {
			*compliment = prev
			return err
		}
		return nil
	}
	return nil
}

func (d *DB) DeleteCompliment(ctx context.Context, delete *store.DeleteCompliment) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i, compliment := range d.compliments {
		if compliment.ID != delete.ID {
			continue
		}
		rest := append(d.compliments[:i:i], d.compliments[i+1:]...)
		if err := d.writeSlot(slotCompliments, rest); err != nil {
			return err
		}
		d.compliments = rest
		return nil
	}
	return nil
}
