package sqlite

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/lyrebird-labs/keepsake/store"
)

func (d *DB) CreateQuizQuestion(ctx context.Context, create *store.QuizQuestion) (*store.QuizQuestion, error) {
	if create.ID == "" {
		create.ID = store.NewUID()
	}

	stmt := `INSERT INTO quiz_question (id, question, answer) VALUES (` + placeholders(3) + `)`
	if _, err := d.db.ExecContext(ctx, stmt, create.ID, create.Question, create.Answer); err != nil {
		return nil, errors.Wrap(err, "failed to create quiz question")
	}
	return create, nil
}

func (d *DB) ListQuizQuestions(ctx context.Context, find *store.FindQuizQuestion) ([]*store.QuizQuestion, error) {
	where, args := []string{"1 = 1"}, []any{}

	if v := find.ID; v != nil {
		where, args = append(where, "quiz_question.id = "+placeholder(len(args)+1)), append(args, *v)
	}

	query := `
		SELECT id, question, answer
		FROM quiz_question
		WHERE ` + strings.Join(where, " AND ")
	query = withPagination(query, find.Limit, find.Offset)

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query quiz questions")
	}
	defer rows.Close()

	list := make([]*store.QuizQuestion, 0)
	for rows.Next() {
		var question store.QuizQuestion
		if err := rows.Scan(&question.ID, &question.Question, &question.Answer); err != nil {
			return nil, errors.Wrap(err, "failed to scan quiz question")
		}
		list = append(list, &question)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate quiz questions")
	}
	return list, nil
}

func (d *DB) UpdateQuizQuestion(ctx context.Context, update *store.UpdateQuizQuestion) error {
	set, args := []string{}, []any{}
	if v := update.Question; v != nil {
		set, args = append(set, "question = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.Answer; v != nil {
		set, args = append(set, "answer = "+placeholder(len(args)+1)), append(args, *v)
	}
	if len(set) == 0 {
		return nil
	}

	stmt := `UPDATE quiz_question SET ` + strings.Join(set, ", ") + ` WHERE id = ` + placeholder(len(args)+1)
	args = append(args, update.ID)
	if _, err := d.db.ExecContext(ctx, stmt, args...); err != nil {
		return errors.Wrap(err, "failed to update quiz question")
	}
	return nil
}

func (d *DB) DeleteQuizQuestion(ctx context.Context, delete *store.DeleteQuizQuestion) error {
	stmt := `DELETE FROM quiz_question WHERE id = ` + placeholder(1)
	if _, err := d.db.ExecContext(ctx, stmt, delete.ID); err != nil {
		return errors.Wrap(err, "failed to delete quiz question")
	}
	return nil
}
