package localfs

import (
	"context"

	"github.com/lyrebird-labs/keepsake/store"
)

func (d *DB) CreateQuizQuestion(ctx context.Context, create *store.QuizQuestion) (*store.QuizQuestion, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if create.ID == "" {
		create.ID = store.NewUID()
	}

	question := *create
	d.quizQuestions = append(d.quizQuestions, &question)
	if err := d.writeSlot(slotQuizQuestions, d.quizQuestions); err != nil {
		d.quizQuestions = d.quizQuestions[:len(d.quizQuestions)-1]
		return nil, err
	}
	return create, nil
}

func (d *DB) ListQuizQuestions(ctx context.Context, find *store.FindQuizQuestion) ([]*store.QuizQuestion, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	list := make([]*store.QuizQuestion, 0, len(d.quizQuestions))
	for _, question := range d.quizQuestions {
		if find.ID != nil && question.ID != *find.ID {
			continue
		}
		copied := *question
		list = append(list, &copied)
	}
	return store.Paginate(list, find.Limit, find.Offset), nil
}

func (d *DB) UpdateQuizQuestion(ctx context.Context, update *store.UpdateQuizQuestion) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, question := range d.quizQuestions {
		if question.ID != update.ID {
			continue
		}
		prev := *question
		if update.Question != nil {
			question.Question = *update.Question
		}
		if update.Answer != nil {
			question.Answer = *update.Answer
		}
		if err := d.writeSlot(slotQuizQuestions, d.quizQuestions); err != nil {
			*question = prev
			return err
		}
		return nil
	}
	return nil
}

func (d *DB) DeleteQuizQuestion(ctx context.Context, delete *store.DeleteQuizQuestion) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i, question := range d.quizQuestions {
		if question.ID != delete.ID {
			continue
		}
		rest := append(d.quizQuestions[:i:i], d.quizQuestions[i+1:]...)
		if err := d.writeSlot(slotQuizQuestions, rest); err != nil {
			return err
		}
		d.quizQuestions = rest
		return nil
	}
	return nil
}
