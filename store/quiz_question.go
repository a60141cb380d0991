package store

import (
	"context"
	"strings"
)

// QuizQuestion is the object representing a quiz question.
type QuizQuestion struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FindQuizQuestion is the find condition for quiz question.
type FindQuizQuestion struct {
	ID *string

	// Pagination
	Limit  *int
	Offset *int
}

// UpdateQuizQuestion is the update request for quiz question.
type UpdateQuizQuestion struct {
	ID       string
	Question *string
	Answer   *string
}

// DeleteQuizQuestion is the delete request for quiz question.
type DeleteQuizQuestion struct {
	ID string
}

// QuizAnswer is one captured answer of a quiz session.
type QuizAnswer struct {
	QuestionID    string `json:"questionId"`
	Question      string `json:"question"`
	UserAnswer    string `json:"userAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
	IsCorrect     bool   `json:"isCorrect"`
}

// QuizSubmission carries the captured answers of a finished quiz run
// for evaluation.
type QuizSubmission struct {
	Answers []QuizAnswer `json:"answers"`
}

// QuizResult is the derived outcome of a quiz session. It is computed
// per session and never persisted.
type QuizResult struct {
	TotalQuestions int          `json:"totalQuestions"`
	CorrectAnswers int          `json:"correctAnswers"`
	Score          float64      `json:"score"`
	Answers        []QuizAnswer `json:"answers"`
}

const cacheKeyQuizQuestions = "collection/quiz"

// AnswerMatches compares a submitted answer to the correct one:
// case-insensitive, trimmed of surrounding whitespace, exact equality.
// The rule applies uniformly, so an empty correct answer can only be
// matched by an (effectively) empty submission.
func AnswerMatches(correct, submitted string) bool {
	return strings.EqualFold(strings.TrimSpace(correct), strings.TrimSpace(submitted))
}

// EvaluateSubmission scores a submission locally by re-applying the
// answer matching rule to every captured entry.
func EvaluateSubmission(submission *QuizSubmission) *QuizResult {
	result := &QuizResult{
		TotalQuestions: len(submission.Answers),
		Answers:        make([]QuizAnswer, 0, len(submission.Answers)),
	}
	for _, answer := range submission.Answers {
		answer.IsCorrect = AnswerMatches(answer.CorrectAnswer, answer.UserAnswer)
		if answer.IsCorrect {
			result.CorrectAnswers++
		}
		result.Answers = append(result.Answers, answer)
	}
	if result.TotalQuestions > 0 {
		result.Score = float64(result.CorrectAnswers) / float64(result.TotalQuestions)
	}
	return result
}

// EvaluateQuiz scores a finished quiz run. When the backing driver owns
// scoring (the remote backend) its result is authoritative; otherwise
// the submission is tallied locally.
func (s *Store) EvaluateQuiz(ctx context.Context, submission *QuizSubmission) (*QuizResult, error) {
	if evaluator, ok := s.driver.(QuizEvaluator); ok {
		done := s.track()
		result, err := evaluator.EvaluateQuiz(ctx, submission)
		done(err)
		if err != nil {
			return nil, err
		}
		return result, nil
	}
	return EvaluateSubmission(submission), nil
}

// CreateQuizQuestion creates a new quiz question.
func (s *Store) CreateQuizQuestion(ctx context.Context, create *QuizQuestion) (*QuizQuestion, error) {
	done := s.track()
	question, err := s.driver.CreateQuizQuestion(ctx, create)
	done(err)
	if err != nil {
		return nil, err
	}
	s.listCache.Delete(ctx, cacheKeyQuizQuestions)
	return question, nil
}

// ListQuizQuestions lists quiz questions with filter. On a failed
// refresh the previous successfully fetched collection is returned
// alongside the error.
func (s *Store) ListQuizQuestions(ctx context.Context, find *FindQuizQuestion) ([]*QuizQuestion, error) {
	done := s.track()
	list, err := s.driver.ListQuizQuestions(ctx, find)
	done(err)
	if err != nil {
		if cached, ok := s.listCache.Get(ctx, cacheKeyQuizQuestions); ok {
			if questions, ok := cached.([]*QuizQuestion); ok {
				return questions, err
			}
		}
		return nil, err
	}
	if find.ID == nil && find.Limit == nil {
		s.listCache.Set(ctx, cacheKeyQuizQuestions, list)
	}
	return list, nil
}

// GetQuizQuestion gets a quiz question by id. Returns nil when not found.
func (s *Store) GetQuizQuestion(ctx context.Context, find *FindQuizQuestion) (*QuizQuestion, error) {
	done := s.track()
	list, err := s.driver.ListQuizQuestions(ctx, find)
	done(err)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

// UpdateQuizQuestion updates a quiz question. Missing ids are a silent no-op.
func (s *Store) UpdateQuizQuestion(ctx context.Context, update *UpdateQuizQuestion) error {
	done := s.track()
	err := s.driver.UpdateQuizQuestion(ctx, update)
	done(err)
	if err != nil {
		return err
	}
	s.listCache.Delete(ctx, cacheKeyQuizQuestions)
	return nil
}

// DeleteQuizQuestion deletes a quiz question. Missing ids are a silent no-op.
func (s *Store) DeleteQuizQuestion(ctx context.Context, delete *DeleteQuizQuestion) error {
	done := s.track()
	err := s.driver.DeleteQuizQuestion(ctx, delete)
	done(err)
	if err != nil {
		return err
	}
	s.listCache.Delete(ctx, cacheKeyQuizQuestions)
	return nil
}
