package v1

import (
	"math/rand"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lyrebird-labs/keepsake/store"
)

type createComplimentRequest struct {
	Content string `json:"content" validate:"required"`
}

type updateComplimentRequest struct {
	Content    *string `json:"content" validate:"omitempty,min=1"`
	IsFavorite *bool   `json:"isFavorite"`
}

func (s *APIV1Service) ListCompliments(c echo.Context) error {
	compliments, err := s.Store.ListCompliments(c.Request().Context(), &store.FindCompliment{})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, compliments)
}

// RandomCompliment picks one compliment at random, the "surprise me"
// action of the compliments page.
func (s *APIV1Service) RandomCompliment(c echo.Context) error {
	compliments, err := s.Store.ListCompliments(c.Request().Context(), &store.FindCompliment{})
	if err != nil {
		return toHTTPError(err)
	}
	if len(compliments) == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "no compliments saved yet")
	}
	return c.JSON(http.StatusOK, compliments[rand.Intn(len(compliments))])
}

// Compliment mutations sit behind the access gate; the gate redirects
// locked callers to the password prompt.

func (s *APIV1Service) CreateCompliment(c echo.Context) error {
	req := &createComplimentRequest{}
	if err := s.bindAndValidate(c, req); err != nil {
		return err
	}
	var compliment *store.Compliment
	err := s.gateGuard(c, func() error {
		var err error
		compliment, err = s.Store.CreateCompliment(c.Request().Context(), &store.Compliment{Content: req.Content})
		return err
	})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, compliment)
}

func (s *APIV1Service) UpdateCompliment(c echo.Context) error {
	req := &updateComplimentRequest{}
	if err := s.bindAndValidate(c, req); err != nil {
		return err
	}
	update := &store.UpdateCompliment{ID: c.Param("id"), Content: req.Content, IsFavorite: req.IsFavorite}
	err := s.gateGuard(c, func() error {
		return s.Store.UpdateCompliment(c.Request().Context(), update)
	})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

func (s *APIV1Service) DeleteCompliment(c echo.Context) error {
	err := s.gateGuard(c, func() error {
		return s.Store.DeleteCompliment(c.Request().Context(), &store.DeleteCompliment{ID: c.Param("id")})
	})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

func (s *APIV1Service) ToggleFavoriteCompliment(c echo.Context) error {
	err := s.gateGuard(c, func() error {
		return s.Store.ToggleFavoriteCompliment(c.Request().Context(), c.Param("id"))
	})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}
