package remote

import (
	"context"
	"fmt"

	"github.com/lyrebird-labs/keepsake/store"
)

func (d *DB) refetchMemories(ctx context.Context) error {
	var list []*store.Memory
	if err := d.get(ctx, pathMemories, &list); err != nil {
		return err
	}
	d.mu.Lock()
	d.mirror.memories = list
	d.mu.Unlock()
	return nil
}

func (d *DB) CreateMemory(ctx context.Context, create *store.Memory) (*store.Memory, error) {
	var created store.Memory
	if err := d.mutate(ctx, "POST", pathMemories, create, &created, d.refetchMemories); err != nil {
		return nil, err
	}
	return &created, nil
}

func (d *DB) ListMemories(ctx context.Context, find *store.FindMemory) ([]*store.Memory, error) {
	if err := d.refetchMemories(ctx); err != nil {
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	list := make([]*store.Memory, 0, len(d.mirror.memories))
	for _, memory := range d.mirror.memories {
		if find.ID != nil && memory.ID != *find.ID {
			continue
		}
		copied := *memory
		list = append(list, &copied)
	}
	return store.Paginate(list, find.Limit, find.Offset), nil
}

func (d *DB) UpdateMemory(ctx context.Context, update *store.UpdateMemory) error {
	body := map[string]any{}
	if update.ImageURL != nil {
		body["imageUrl"] = *update.ImageURL
	}
	if update.Caption != nil {
		body["caption"] = *update.Caption
	}
	return d.mutate(ctx, "PUT", fmt.Sprintf("%s/%s", pathMemories, update.ID), body, nil, d.refetchMemories)
}

func (d *DB) DeleteMemory(ctx context.Context, delete *store.DeleteMemory) error {
	return d.mutate(ctx, "DELETE", fmt.Sprintf("%s/%s", pathMemories, delete.ID), nil, nil, d.refetchMemories)
}
