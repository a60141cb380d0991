package remote

import (
	"context"
	"fmt"

	"github.com/lyrebird-labs/keepsake/store"
)

func (d *DB) refetchQuizQuestions(ctx context.Context) error {
	var list []*store.QuizQuestion
	if err := d.get(ctx, pathQuizQuestions, &list); err != nil {
		return err
	}
	d.mu.Lock()
	d.mirror.quizQuestions = list
	d.mu.Unlock()
	return nil
}

func (d *DB) CreateQuizQuestion(ctx context.Context, create *store.QuizQuestion) (*store.QuizQuestion, error) {
	var created store.QuizQuestion
	if err := d.mutate(ctx, "POST", pathQuizQuestions, create, &created, d.refetchQuizQuestions); err != nil {
		return nil, err
	}
	return &created, nil
}

func (d *DB) ListQuizQuestions(ctx context.Context, find *store.FindQuizQuestion) ([]*store.QuizQuestion, error) {
	if err := d.refetchQuizQuestions(ctx); err != nil {
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	list := make([]*store.QuizQuestion, 0, len(d.mirror.quizQuestions))
	for _, question := range d.mirror.quizQuestions {
		if find.ID != nil && question.ID != *find.ID {
			continue
		}
		copied := *question
		list = append(list, &copied)
	}
	return store.Paginate(list, find.Limit, find.Offset), nil
}

func (d *DB) UpdateQuizQuestion(ctx context.Context, update *store.UpdateQuizQuestion) error {
	body := map[string]any{}
	if update.Question != nil {
		body["question"] = *update.Question
	}
	if update.Answer != nil {
		body["answer"] = *update.Answer
	}
	return d.mutate(ctx, "PUT", fmt.Sprintf("%s/%s", pathQuizQuestions, update.ID), body, nil, d.refetchQuizQuestions)
}

func (d *DB) DeleteQuizQuestion(ctx context.Context, delete *store.DeleteQuizQuestion) error {
	return d.mutate(ctx, "DELETE", fmt.Sprintf("%s/%s", pathQuizQuestions, delete.ID), nil, nil, d.refetchQuizQuestions)
}

// EvaluateQuiz delegates scoring to the upstream evaluation endpoint.
// The remotely computed result is authoritative over any local tally.
func (d *DB) EvaluateQuiz(ctx context.Context, submission *store.QuizSubmission) (*store.QuizResult, error) {
	var result store.QuizResult
	if err := d.do(ctx, "POST", pathQuizEvaluate, submission, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

var _ store.QuizEvaluator = (*DB)(nil)
