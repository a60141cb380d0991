// Package rss publishes the shared notes and timeline as an RSS feed,
// so the couple can follow new entries from a feed reader.
package rss

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/feeds"
	"github.com/labstack/echo/v4"
	"github.com/yuin/goldmark"

	"github.com/lyrebird-labs/keepsake/internal/profile"
	"github.com/lyrebird-labs/keepsake/store"
)

const maxRSSItemCount = 100

type RSSService struct {
	Profile *profile.Profile
	Store   *store.Store

	markdown goldmark.Markdown
}

func NewRSSService(profile *profile.Profile, store *store.Store) *RSSService {
	return &RSSService{
		Profile:  profile,
		Store:    store,
		markdown: goldmark.New(),
	}
}

func (s *RSSService) RegisterRoutes(e *echo.Echo) {
	e.GET("/explore/rss.xml", s.GetExploreRSS)
}

func (s *RSSService) GetExploreRSS(c echo.Context) error {
	ctx := c.Request().Context()

	notes, err := s.Store.ListNotes(ctx, &store.FindNote{})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list notes").SetInternal(err)
	}
	events, err := s.Store.ListTimelineEvents(ctx, &store.FindTimelineEvent{})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list timeline events").SetInternal(err)
	}
	store.SortTimelineEvents(events, false)

	baseURL := fmt.Sprintf("http://%s:%d", s.Profile.Addr, s.Profile.Port)
	feed := &feeds.Feed{
		Title:       "Keepsake",
		Link:        &feeds.Link{Href: baseURL + "/explore"},
		Description: "Little notes and milestones",
		Created:     time.Now(),
	}

	for _, note := range notes {
		if len(feed.Items) >= maxRSSItemCount {
			break
		}
		var rendered bytes.Buffer
		if err := s.markdown.Convert([]byte(note.Content), &rendered); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to render note").SetInternal(err)
		}
		feed.Items = append(feed.Items, &feeds.Item{
			Title:       "Love note",
			Link:        &feeds.Link{Href: fmt.Sprintf("%s/notes/%s", baseURL, note.ID)},
			Description: rendered.String(),
			Created:     time.Unix(note.CreatedTs, 0),
			Id:          note.ID,
		})
	}
	for _, event := range events {
		if len(feed.Items) >= maxRSSItemCount {
			break
		}
		feed.Items = append(feed.Items, &feeds.Item{
			Title:       event.Title,
			Link:        &feeds.Link{Href: fmt.Sprintf("%s/timeline/%s", baseURL, event.ID)},
			Description: event.Description,
			Created:     time.Unix(event.CreatedTs, 0),
			Id:          event.ID,
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to build feed").SetInternal(err)
	}
	return c.Blob(http.StatusOK, "application/rss+xml", []byte(rss))
}
