package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lyrebird-labs/keepsake/store"
)

type createQuizQuestionRequest struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

type updateQuizQuestionRequest struct {
	Question *string `json:"question" validate:"omitempty,min=1"`
	Answer   *string `json:"answer" validate:"omitempty,min=1"`
}

type answerRequest struct {
	Answer string `json:"answer"`
}

func (s *APIV1Service) ListQuizQuestions(c echo.Context) error {
	questions, err := s.Store.ListQuizQuestions(c.Request().Context(), &store.FindQuizQuestion{})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, questions)
}

func (s *APIV1Service) CreateQuizQuestion(c echo.Context) error {
	req := &createQuizQuestionRequest{}
	if err := s.bindAndValidate(c, req); err != nil {
		return err
	}
	question, err := s.Store.CreateQuizQuestion(c.Request().Context(), &store.QuizQuestion{Question: req.Question, Answer: req.Answer})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, question)
}

func (s *APIV1Service) UpdateQuizQuestion(c echo.Context) error {
	req := &updateQuizQuestionRequest{}
	if err := s.bindAndValidate(c, req); err != nil {
		return err
	}
	update := &store.UpdateQuizQuestion{ID: c.Param("id"), Question: req.Question, Answer: req.Answer}
	if err := s.Store.UpdateQuizQuestion(c.Request().Context(), update); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

func (s *APIV1Service) DeleteQuizQuestion(c echo.Context) error {
	if err := s.Store.DeleteQuizQuestion(c.Request().Context(), &store.DeleteQuizQuestion{ID: c.Param("id")}); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

// EvaluateQuiz scores a captured submission. Instances backed by the
// remote driver defer to their upstream, so chained instances agree on
// one authoritative result.
func (s *APIV1Service) EvaluateQuiz(c echo.Context) error {
	submission := &store.QuizSubmission{}
	if err := c.Bind(submission); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	result, err := s.Store.EvaluateQuiz(c.Request().Context(), submission)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, result)
}

func (s *APIV1Service) QuizSessionState(c echo.Context) error {
	return c.JSON(http.StatusOK, s.Quiz.Snapshot())
}

func (s *APIV1Service) StartQuizSession(c echo.Context) error {
	if err := s.Quiz.Start(c.Request().Context()); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, s.Quiz.Snapshot())
}

func (s *APIV1Service) AnswerQuizSession(c echo.Context) error {
	req := &answerRequest{}
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	if err := s.Quiz.SubmitAnswer(req.Answer); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, s.Quiz.Snapshot())
}

func (s *APIV1Service) QuitQuizSession(c echo.Context) error {
	s.Quiz.Quit()
	return c.JSON(http.StatusOK, s.Quiz.Snapshot())
}
