package store

import (
	"context"
)

// Driver is an interface for store driver.
// It contains all methods that a persistence backend should implement.
//
// Update and Delete are silent no-ops when the target id does not exist.
// Create assigns an id (and creation timestamp where the model has one)
// when the request carries none.
type Driver interface {
	Close() error

	// Note model related methods.
	CreateNote(ctx context.Context, create *Note) (*Note, error)
	ListNotes(ctx context.Context, find *FindNote) ([]*Note, error)
	UpdateNote(ctx context.Context, update *UpdateNote) error
	DeleteNote(ctx context.Context, delete *DeleteNote) error

	// Memory model related methods.
	CreateMemory(ctx context.Context, create *Memory) (*Memory, error)
	ListMemories(ctx context.Context, find *FindMemory) ([]*Memory, error)
	UpdateMemory(ctx context.Context, update *UpdateMemory) error
	DeleteMemory(ctx context.Context, delete *DeleteMemory) error

	// TimelineEvent model related methods.
	CreateTimelineEvent(ctx context.Context, create *TimelineEvent) (*TimelineEvent, error)
	ListTimelineEvents(ctx context.Context, find *FindTimelineEvent) ([]*TimelineEvent, error)
	UpdateTimelineEvent(ctx context.Context, update *UpdateTimelineEvent) error
	DeleteTimelineEvent(ctx context.Context, delete *DeleteTimelineEvent) error

	// CountdownEvent model related methods.
	CreateCountdownEvent(ctx context.Context, create *CountdownEvent) (*CountdownEvent, error)
	ListCountdownEvents(ctx context.Context, find *FindCountdownEvent) ([]*CountdownEvent, error)
	UpdateCountdownEvent(ctx context.Context, update *UpdateCountdownEvent) error
	DeleteCountdownEvent(ctx context.Context, delete *DeleteCountdownEvent) error

	// Compliment model related methods.
	CreateCompliment(ctx context.Context, create *Compliment) (*Compliment, error)
	ListCompliments(ctx context.Context, find *FindCompliment) ([]*Compliment, error)
	UpdateCompliment(ctx context.Context, update *UpdateCompliment) error
	DeleteCompliment(ctx context.Context, delete *DeleteCompliment) error

	// QuizQuestion model related methods.
	CreateQuizQuestion(ctx context.Context, create *QuizQuestion) (*QuizQuestion, error)
	ListQuizQuestions(ctx context.Context, find *FindQuizQuestion) ([]*QuizQuestion, error)
	UpdateQuizQuestion(ctx context.Context, update *UpdateQuizQuestion) error
	DeleteQuizQuestion(ctx context.Context, delete *DeleteQuizQuestion) error
}

// QuizEvaluator is an optional driver capability. A backend that
// implements it (the remote driver) owns quiz scoring; its result is
// authoritative over any locally computed tally.
type QuizEvaluator interface {
	EvaluateQuiz(ctx context.Context, submission *QuizSubmission) (*QuizResult, error)
}
