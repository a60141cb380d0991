// Package v1 exposes the keepsake collections and engines as a REST
// JSON API under /api/v1. The resource routes double as the upstream
// surface for instances running the remote storage backend.
package v1

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/lyrebird-labs/keepsake/internal/profile"
	"github.com/lyrebird-labs/keepsake/server/service/countdown"
	"github.com/lyrebird-labs/keepsake/server/service/gate"
	"github.com/lyrebird-labs/keepsake/server/service/quiz"
	"github.com/lyrebird-labs/keepsake/store"
)

type APIV1Service struct {
	Profile   *profile.Profile
	Store     *store.Store
	Gate      *gate.Gate
	Quiz      *quiz.Session
	Countdown *countdown.Engine

	validate *validator.Validate
}

func NewAPIV1Service(profile *profile.Profile, store *store.Store, gate *gate.Gate, quizSession *quiz.Session, engine *countdown.Engine) *APIV1Service {
	return &APIV1Service{
		Profile:   profile,
		Store:     store,
		Gate:      gate,
		Quiz:      quizSession,
		Countdown: engine,
		validate:  validator.New(),
	}
}

// Register mounts all v1 routes.
func (s *APIV1Service) Register(e *echo.Echo) {
	g := e.Group("/api/v1")

	g.GET("/notes", s.ListNotes)
	g.POST("/notes", s.CreateNote)
	g.PUT("/notes/:id", s.UpdateNote)
	g.DELETE("/notes/:id", s.DeleteNote)

	g.GET("/memories", s.ListMemories)
	g.POST("/memories", s.CreateMemory)
	g.PUT("/memories/:id", s.UpdateMemory)
	g.DELETE("/memories/:id", s.DeleteMemory)

	g.GET("/timeline", s.ListTimelineEvents)
	g.POST("/timeline", s.CreateTimelineEvent)
	g.PUT("/timeline/:id", s.UpdateTimelineEvent)
	g.DELETE("/timeline/:id", s.DeleteTimelineEvent)

	g.GET("/countdown", s.ListCountdownEvents)
	g.POST("/countdown", s.CreateCountdownEvent)
	g.PUT("/countdown/:id", s.UpdateCountdownEvent)
	g.DELETE("/countdown/:id", s.DeleteCountdownEvent)
	g.GET("/countdown/:id/remaining", s.CountdownRemaining)
	g.GET("/countdown/:id/stream", s.StreamCountdown)

	g.GET("/compliments", s.ListCompliments)
	g.GET("/compliments/random", s.RandomCompliment)
	g.POST("/compliments", s.CreateCompliment)
	g.PUT("/compliments/:id", s.UpdateCompliment)
	g.DELETE("/compliments/:id", s.DeleteCompliment)
	g.POST("/compliments/:id/favorite", s.ToggleFavoriteCompliment)

	g.GET("/quiz", s.ListQuizQuestions)
	g.POST("/quiz", s.CreateQuizQuestion)
	g.PUT("/quiz/:id", s.UpdateQuizQuestion)
	g.DELETE("/quiz/:id", s.DeleteQuizQuestion)
	g.POST("/quiz/evaluate", s.EvaluateQuiz)

	g.GET("/quiz/session", s.QuizSessionState)
	g.POST("/quiz/session/start", s.StartQuizSession)
	g.POST("/quiz/session/answer", s.AnswerQuizSession)
	g.POST("/quiz/session/quit", s.QuitQuizSession)

	g.GET("/gate", s.GateStatus)
	g.POST("/gate/unlock", s.GateUnlock)
}
