package v1

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lyrebird-labs/keepsake/server/service/countdown"
	"github.com/lyrebird-labs/keepsake/store"
)

type createCountdownEventRequest struct {
	Title string `json:"title" validate:"required"`
	Date  string `json:"date" validate:"required,datetime=2006-01-02"`
}

type updateCountdownEventRequest struct {
	Title *string `json:"title" validate:"omitempty,min=1"`
	Date  *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

func (s *APIV1Service) ListCountdownEvents(c echo.Context) error {
	events, err := s.Store.ListCountdownEvents(c.Request().Context(), &store.FindCountdownEvent{})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, events)
}

func (s *APIV1Service) CreateCountdownEvent(c echo.Context) error {
	req := &createCountdownEventRequest{}
	if err := s.bindAndValidate(c, req); err != nil {
		return err
	}
	event, err := s.Store.CreateCountdownEvent(c.Request().Context(), &store.CountdownEvent{Title: req.Title, Date: req.Date})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, event)
}

func (s *APIV1Service) UpdateCountdownEvent(c echo.Context) error {
	req := &updateCountdownEventRequest{}
	if err := s.bindAndValidate(c, req); err != nil {
		return err
	}
	update := &store.UpdateCountdownEvent{ID: c.Param("id"), Title: req.Title, Date: req.Date}
	if err := s.Store.UpdateCountdownEvent(c.Request().Context(), update); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

func (s *APIV1Service) DeleteCountdownEvent(c echo.Context) error {
	if err := s.Store.DeleteCountdownEvent(c.Request().Context(), &store.DeleteCountdownEvent{ID: c.Param("id")}); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

// StreamCountdown pushes the remaining time as server-sent events, one
// per engine tick, until the client disconnects. Subscribing attaches
// the caller to the shared ticker; the engine idles again once the last
// watcher is gone.
func (s *APIV1Service) StreamCountdown(c echo.Context) error {
	id := c.Param("id")
	event, err := s.Store.GetCountdownEvent(c.Request().Context(), &store.FindCountdownEvent{ID: &id})
	if err != nil {
		return toHTTPError(err)
	}
	if event == nil {
		return echo.NewHTTPError(http.StatusNotFound, "countdown event not found")
	}
	target, err := event.TargetTime(time.Local)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "stored date is malformed")
	}

	ticks, detach := s.Countdown.Subscribe()
	defer detach()

	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)

	encoder := json.NewEncoder(w)
	for {
		select {
		case <-c.Request().Context().Done():
			return nil
		case now := <-ticks:
			if _, err := w.Write([]byte("data: ")); err != nil {
				return nil
			}
			if err := encoder.Encode(countdown.TimeRemaining(target, now)); err != nil {
				return nil
			}
			if _, err := w.Write([]byte("\n")); err != nil {
				return nil
			}
			w.Flush()
		}
	}
}

// CountdownRemaining reports the whole-unit time left until the event's
// date, as local midnight of that day.
func (s *APIV1Service) CountdownRemaining(c echo.Context) error {
	id := c.Param("id")
	event, err := s.Store.GetCountdownEvent(c.Request().Context(), &store.FindCountdownEvent{ID: &id})
	if err != nil {
		return toHTTPError(err)
	}
	if event == nil {
		return echo.NewHTTPError(http.StatusNotFound, "countdown event not found")
	}
	target, err := event.TargetTime(time.Local)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "stored date is malformed")
	}
	return c.JSON(http.StatusOK, countdown.TimeRemaining(target, time.Now()))
}
