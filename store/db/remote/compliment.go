package remote

import (
	"context"
	"fmt"

	"github.com/lyrebird-labs/keepsake/store"
)

func (d *DB) refetchCompliments(ctx context.Context) error {
	var list []*store.Compliment
	if err := d.get(ctx, pathCompliments, &list); err != nil {
		return err
	}
	d.mu.Lock()
	d.mirror.compliments = list
	d.mu.Unlock()
	return nil
}

func (d *DB) CreateCompliment(ctx context.Context, create *store.Compliment) (*store.Compliment, error) {
	var created store.Compliment
	if err := d.mutate(ctx, "POST", pathCompliments, create, &created, d.refetchCompliments); err != nil {
		return nil, err
	}
	return &created, nil
}

func (d *DB) ListCompliments(ctx context.Context, find *store.FindCompliment) ([]*store.Compliment, error) {
	if err := d.refetchCompliments(ctx); err != nil {
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	list := make([]*store.Compliment, 0, len(d.mirror.compliments))
	for _, compliment := range d.mirror.compliments {
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
	body := map[string]any{}
	if update.Content != nil {
		body["content"] = *update.Content
	}
	if update.IsFavorite != nil {
		body["isFavorite"] = *update.IsFavorite
	}
	return d.mutate(ctx, "PUT", fmt.Sprintf("%s/%s", pathCompliments, update.ID), body, nil, d.refetchCompliments)
}

func (d *DB) DeleteCompliment(ctx context.Context, delete *store.DeleteCompliment) error {
	return d.mutate(ctx, "DELETE", fmt.Sprintf("%s/%s", pathCompliments, delete.ID), nil, nil, d.refetchCompliments)
}
