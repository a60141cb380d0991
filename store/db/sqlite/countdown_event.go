package sqlite

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/lyrebird-labs/keepsake/store"
)

func (d *DB) CreateCountdownEvent(ctx context.Context, create *store.CountdownEvent) (*store.CountdownEvent, error) {
	if create.ID == "" {
		create.ID = store.NewUID()
	}

	stmt := `INSERT INTO countdown_event (id, title, date) VALUES (` + placeholders(3) + `)`
	if _, err := d.db.ExecContext(ctx, stmt, create.ID, create.Title, create.Date); err != nil {
		return nil, errors.Wrap(err, "failed to create countdown event")
	}
	return create, nil
}

func (d *DB) ListCountdownEvents(ctx context.Context, find *store.FindCountdownEvent) ([]*store.CountdownEvent, error) {
	where, args := []string{"1 = 1"}, []any{}

	if v := find.ID; v != nil {
		where, args = append(where, "countdown_event.id = "+placeholder(len(args)+1)), append(args, *v)
	}

	query := `
		SELECT id, title, date
		FROM countdown_event
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY countdown_event.date ASC`
	query = withPagination(query, find.Limit, find.Offset)

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query countdown events")
	}
	defer rows.Close()

	list := make([]*store.CountdownEvent, 0)
	for rows.Next() {
		var event store.CountdownEvent
		if err := rows.Scan(&event.ID, &event.Title, &event.Date); err != nil {
			return nil, errors.Wrap(err, "failed to scan countdown event")
		}
		list = append(list, &event)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate countdown events")
	}
	return list, nil
}

func (d *DB) UpdateCountdownEvent(ctx context.Context, update *store.UpdateCountdownEvent) error {
	set, args := []string{}, []any{}
	if v := update.Title; v != nil {
		set, args = append(set, "title = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.Date; v != nil {
		set, args = append(set, "date = "+placeholder(len(args)+1)), append(args, *v)
	}
	if len(set) == 0 {
		return nil
	}

	stmt := `UPDATE countdown_event SET ` + strings.Join(set, ", ") + ` WHERE id = ` + placeholder(len(args)+1)
	args = append(args, update.ID)
	if _, err := d.db.ExecContext(ctx, stmt, args...); err != nil {
		return errors.Wrap(err, "failed to update countdown event")
	}
	return nil
}

func (d *DB) DeleteCountdownEvent(ctx context.Context, delete *store.DeleteCountdownEvent) error {
	stmt := `DELETE FROM countdown_event WHERE id = ` + placeholder(1)
	if _, err := d.db.ExecContext(ctx, stmt, delete.ID); err != nil {
		return errors.Wrap(err, "failed to delete countdown event")
	}
	return nil
}
