package localfs

import (
	"context"
	"time"

	"github.com/lyrebird-labs/keepsake/store"
)

func (d *DB) CreateMemory(ctx context.Context, create *store.Memory) (*store.Memory, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if create.ID == "" {
		create.ID = store.NewUID()
	}
	if create.CreatedTs == 0 {
		create.CreatedTs = time.Now().Unix()
	}

	memory := *create
	d.memories = append([]*store.Memory{&memory}, d.memories...)
	if err := d.writeSlot(slotMemories, d.memories); err != nil {
		d.memories = d.memories[1:]
		return nil, err
	}
	return create, nil
}

func (d *DB) ListMemories(ctx context.Context, find *store.FindMemory) ([]*store.Memory, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	list := make([]*store.Memory, 0, len(d.memories))
	for _, memory := range d.memories {
		if find.ID != nil && memory.ID != *find.ID {
			continue
		}
		copied := *memory
		list = append(list, &copied)
	}
	return store.Paginate(list, find.Limit, find.Offset), nil
}

func (d *DB) UpdateMemory(ctx context.Context, update *store.UpdateMemory) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, memory := range d.memories {
		if memory.ID != update.ID {
			continue
		}
		prev := *memory
		if update.ImageURL != nil {
			memory.ImageURL = *update.ImageURL
		}
		if update.Caption != nil {
			memory.Caption = *update.Caption
		}
		if err := d.writeSlot(slotMemories, d.memories); err != nil {
			*memory = prev
			return err
		}
		return nil
	}
	return nil
}

func (d *DB) DeleteMemory(ctx context.Context, delete *store.DeleteMemory) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i, memory := range d.memories {
		if memory.ID != delete.ID {
			continue
		}
		rest := append(d.memories[:i:i], d.memories[i+1:]...)
		if err := d.writeSlot(slotMemories, rest); err != nil {
			return err
		}
		d.memories = rest
		return nil
	}
	return nil
}
