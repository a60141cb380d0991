package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lyrebird-labs/keepsake/store"
)

type createTimelineEventRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	EventDate   string `json:"eventDate" validate:"required,datetime=2006-01-02"`
}

type updateTimelineEventRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Description *string `json:"description"`
	EventDate   *string `json:"eventDate" validate:"omitempty,datetime=2006-01-02"`
}

func (s *APIV1Service) ListTimelineEvents(c echo.Context) error {
	events, err := s.Store.ListTimelineEvents(c.Request().Context(), &store.FindTimelineEvent{})
	if err != nil {
		return toHTTPError(err)
	}
	// Newest first unless the client asks for chronological order.
	store.SortTimelineEvents(events, c.QueryParam("order") == "asc")
	return c.JSON(http.StatusOK, events)
}

func (s *APIV1Service) CreateTimelineEvent(c echo.Context) error {
	req := &createTimelineEventRequest{}
	if err := s.bindAndValidate(c, req); err != nil {
		return err
	}
	event, err := s.Store.CreateTimelineEvent(c.Request().Context(), &store.TimelineEvent{
		Title:       req.Title,
		Description: req.Description,
		EventDate:   req.EventDate,
	})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, event)
}

func (s *APIV1Service) UpdateTimelineEvent(c echo.Context) error {
	req := &updateTimelineEventRequest{}
	if err := s.bindAndValidate(c, req); err != nil {
		return err
	}
	update := &store.UpdateTimelineEvent{
		ID:          c.Param("id"),
		Title:       req.Title,
		Description: req.Description,
		EventDate:   req.EventDate,
	}
	if err := s.Store.UpdateTimelineEvent(c.Request().Context(), update); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

func (s *APIV1Service) DeleteTimelineEvent(c echo.Context) error {
	if err := s.Store.DeleteTimelineEvent(c.Request().Context(), &store.DeleteTimelineEvent{ID: c.Param("id")}); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}
