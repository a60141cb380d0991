package postgres

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/lyrebird-labs/keepsake/store"
)

func (d *DB) CreateMemory(ctx context.Context, create *store.Memory) (*store.Memory, error) {
	if create.ID == "" {
		create.ID = store.NewUID()
	}
	if create.CreatedTs == 0 {
		create.CreatedTs = time.Now().Unix()
	}

	stmt := `INSERT INTO memory (id, image_url, caption, created_ts) VALUES (` + placeholders(4) + `)`
	if _, err := d.db.ExecContext(ctx, stmt, create.ID, create.ImageURL, create.Caption, create.CreatedTs); err != nil {
		return nil, errors.Wrap(err, "failed to create memory")
	}
	return create, nil
}

func (d *DB) ListMemories(ctx context.Context, find *store.FindMemory) ([]*store.Memory, error) {
	where, args := []string{"1 = 1"}, []any{}

	if v := find.ID; v != nil {
		where, args = append(where, "memory.id = "+placeholder(len(args)+1)), append(args, *v)
	}

	query := `
		SELECT id, image_url, caption, created_ts
		FROM memory
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY memory.created_ts DESC`
	query = withPagination(query, find.Limit, find.Offset)

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query memories")
	}
	defer rows.Close()

	list := make([]*store.Memory, 0)
	for rows.Next() {
		var memory store.Memory
		if err := rows.Scan(&memory.ID, &memory.ImageURL, &memory.Caption, &memory.CreatedTs); err != nil {
			return nil, errors.Wrap(err, "failed to scan memory")
		}
		list = append(list, &memory)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate memories")
	}
	return list, nil
}

func (d *DB) UpdateMemory(ctx context.Context, update *store.UpdateMemory) error {
	set, args := []string{}, []any{}
	if v := update.ImageURL; v != nil {
		set, args = append(set, "image_url = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.Caption; v != nil {
		set, args = append(set, "caption = "+placeholder(len(args)+1)), append(args, *v)
	}
	if len(set) == 0 {
		return nil
	}

	stmt := `UPDATE memory SET ` + strings.Join(set, ", ") + ` WHERE id = ` + placeholder(len(args)+1)
	args = append(args, update.ID)
	if _, err := d.db.ExecContext(ctx, stmt, args...); err != nil {
		return errors.Wrap(err, "failed to update memory")
	}
	return nil
}

func (d *DB) DeleteMemory(ctx context.Context, delete *store.DeleteMemory) error {
	stmt := `DELETE FROM memory WHERE id = ` + placeholder(1)
	if _, err := d.db.ExecContext(ctx, stmt, delete.ID); err != nil {
		return errors.Wrap(err, "failed to delete memory")
	}
	return nil
}
