package postgres

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/lyrebird-labs/keepsake/store"
)

func (d *DB) CreateTimelineEvent(ctx context.Context, create *store.TimelineEvent) (*store.TimelineEvent, error) {
	if create.ID == "" {
		create.ID = store.NewUID()
	}
	if create.CreatedTs == 0 {
		create.CreatedTs = time.Now().Unix()
	}

	stmt := `INSERT INTO timeline_event (id, title, description, event_date, created_ts) VALUES (` + placeholders(5) + `)`
	if _, err := d.db.ExecContext(ctx, stmt, create.ID, create.Title, create.Description, create.EventDate, create.CreatedTs); err != nil {
		return nil, errors.Wrap(err, "failed to create timeline event")
	}
	return create, nil
}

func (d *DB) ListTimelineEvents(ctx context.Context, find *store.FindTimelineEvent) ([]*store.TimelineEvent, error) {
	where, args := []string{"1 = 1"}, []any{}

	if v := find.ID; v != nil {
		where, args = append(where, "timeline_event.id = "+placeholder(len(args)+1)), append(args, *v)
	}

	// Storage order is insertion order; display ordering by event date
	// is applied by consumers.
	query := `
		SELECT id, title, description, event_date, created_ts
		FROM timeline_event
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY timeline_event.created_ts ASC`
	query = withPagination(query, find.Limit, find.Offset)

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query timeline events")
	}
	defer rows.Close()

	list := make([]*store.TimelineEvent, 0)
	for rows.Next() {
		var event store.TimelineEvent
		if err := rows.Scan(&event.ID, &event.Title, &event.Description, &event.EventDate, &event.CreatedTs); err != nil {
			return nil, errors.Wrap(err, "failed to scan timeline event")
		}
		list = append(list, &event)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate timeline events")
	}
	return list, nil
}

func (d *DB) UpdateTimelineEvent(ctx context.Context, update *store.UpdateTimelineEvent) error {
	set, args := []string{}, []any{}
	if v := update.Title; v != nil {
		set, args = append(set, "title = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.Description; v != nil {
		set, args = append(set, "description = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.EventDate; v != nil {
		set, args = append(set, "event_date = "+placeholder(len(args)+1)), append(args, *v)
	}
	if len(set) == 0 {
		return nil
	}

	stmt := `UPDATE timeline_event SET ` + strings.Join(set, ", ") + ` WHERE id = ` + placeholder(len(args)+1)
	args = append(args, update.ID)
	if _, err := d.db.ExecContext(ctx, stmt, args...); err != nil {
		return errors.Wrap(err, "failed to update timeline event")
	}
	return nil
}

func (d *DB) DeleteTimelineEvent(ctx context.Context, delete *store.DeleteTimelineEvent) error {
	stmt := `DELETE FROM timeline_event WHERE id = ` + placeholder(1)
	if _, err := d.db.ExecContext(ctx, stmt, delete.ID); err != nil {
		return errors.Wrap(err, "failed to delete timeline event")
	}
	return nil
}
