package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lyrebird-labs/keepsake/store"
)

type createNoteRequest struct {
	Content string `json:"content" validate:"required"`
}

type updateNoteRequest struct {
	Content *string `json:"content" validate:"omitempty,min=1"`
}

func (s *APIV1Service) ListNotes(c echo.Context) error {
	notes, err := s.Store.ListNotes(c.Request().Context(), &store.FindNote{})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, notes)
}

func (s *APIV1Service) CreateNote(c echo.Context) error {
	req := &createNoteRequest{}
	if err := s.bindAndValidate(c, req); err != nil {
		return err
	}
	note, err := s.Store.CreateNote(c.Request().Context(), &store.Note{Content: req.Content})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, note)
}

func (s *APIV1Service) UpdateNote(c echo.Context) error {
	req := &updateNoteRequest{}
	if err := s.bindAndValidate(c, req); err != nil {
		return err
	}
	update := &store.UpdateNote{ID: c.Param("id"), Content: req.Content}
	if err := s.Store.UpdateNote(c.Request().Context(), update); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

func (s *APIV1Service) DeleteNote(c echo.Context) error {
	if err := s.Store.DeleteNote(c.Request().Context(), &store.DeleteNote{ID: c.Param("id")}); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}
