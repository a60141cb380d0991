package postgres

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/lyrebird-labs/keepsake/store"
)

func (d *DB) CreateCompliment(ctx context.Context, create *store.Compliment) (*store.Compliment, error) {
	if create.ID == "" {
		create.ID = store.NewUID()
	}

	stmt := `INSERT INTO compliment (id, content, is_favorite) VALUES (` + placeholders(3) + `)`
	if _, err := d.db.ExecContext(ctx, stmt, create.ID, create.Content, create.IsFavorite); err != nil {
		return nil, errors.Wrap(err, "failed to create compliment")
	}
	return create, nil
}

func (d *DB) ListCompliments(ctx context.Context, find *store.FindCompliment) ([]*store.Compliment, error) {
	where, args := []string{"1 = 1"}, []any{}

	if v := find.ID; v != nil {
		where, args = append(where, "compliment.id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.IsFavorite; v != nil {
		where, args = append(where, "compliment.is_favorite = "+placeholder(len(args)+1)), append(args, *v)
	}

	query := `
		SELECT id, content, is_favorite
		FROM compliment
		WHERE ` + strings.Join(where, " AND ")
	query = withPagination(query, find.Limit, find.Offset)

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query compliments")
	}
	defer rows.Close()

	list := make([]*store.Compliment, 0)
	for rows.Next() {
		var compliment store.Compliment
		if err := rows.Scan(&compliment.ID, &compliment.Content, &compliment.IsFavorite); err != nil {
			return nil, errors.Wrap(err, "failed to scan compliment")
		}
		list = append(list, &compliment)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate compliments")
	}
	return list, nil
}

func (d *DB) UpdateCompliment(ctx context.Context, update *store.UpdateCompliment) error {
	set, args := []string{}, []any{}
	if v := update.Content; v != nil {
		set, args = append(set, "content = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.IsFavorite; v != nil {
		set, args = append(set, "is_favorite = "+placeholder(len(args)+1)), append(args, *v)
	}
	if len(set) == 0 {
		return nil
	}

	stmt := `UPDATE compliment SET ` + strings.Join(set, ", ") + ` WHERE id = ` + placeholder(len(args)+1)
	args = append(args, update.ID)
	if _, err := d.db.ExecContext(ctx, stmt, args...); err != nil {
		return errors.Wrap(err, "failed to update compliment")
	}
	return nil
}

func (d *DB) DeleteCompliment(ctx context.Context, delete *store.DeleteCompliment) error {
	stmt := `DELETE FROM compliment WHERE id = ` + placeholder(1)
	if _, err := d.db.ExecContext(ctx, stmt, delete.ID); err != nil {
		return errors.Wrap(err, "failed to delete compliment")
	}
	return nil
}
