package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lyrebird-labs/keepsake/store"
)

type createMemoryRequest struct {
	ImageURL string `json:"imageUrl" validate:"required,url"`
	Caption  string `json:"caption"`
}

type updateMemoryRequest struct {
	ImageURL *string `json:"imageUrl" validate:"omitempty,url"`
	Caption  *string `json:"caption"`
}

func (s *APIV1Service) ListMemories(c echo.Context) error {
	memories, err := s.Store.ListMemories(c.Request().Context(), &store.FindMemory{})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, memories)
}

func (s *APIV1Service) CreateMemory(c echo.Context) error {
	req := &createMemoryRequest{}
	if err := s.bindAndValidate(c, req); err != nil {
		return err
	}
	memory, err := s.Store.CreateMemory(c.Request().Context(), &store.Memory{ImageURL: req.ImageURL, Caption: req.Caption})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, memory)
}

func (s *APIV1Service) UpdateMemory(c echo.Context) error {
	req := &updateMemoryRequest{}
	if err := s.bindAndValidate(c, req); err != nil {
		return err
	}
	update := &store.UpdateMemory{ID: c.Param("id"), ImageURL: req.ImageURL, Caption: req.Caption}
	if err := s.Store.UpdateMemory(c.Request().Context(), update); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

func (s *APIV1Service) DeleteMemory(c echo.Context) error {
	if err := s.Store.DeleteMemory(c.Request().Context(), &store.DeleteMemory{ID: c.Param("id")}); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}
