package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/lyrebird-labs/keepsake/internal/clock"
	"github.com/lyrebird-labs/keepsake/internal/profile"
	"github.com/lyrebird-labs/keepsake/server/middleware"
	apiv1 "github.com/lyrebird-labs/keepsake/server/router/api/v1"
	"github.com/lyrebird-labs/keepsake/server/router/rss"
	"github.com/lyrebird-labs/keepsake/server/service/countdown"
	"github.com/lyrebird-labs/keepsake/server/service/gate"
	"github.com/lyrebird-labs/keepsake/server/service/quiz"
	"github.com/lyrebird-labs/keepsake/store"
)

type Server struct {
	Profile *profile.Profile
	Store   *store.Store

	echoServer *echo.Echo
	countdown  *countdown.Engine
}

func NewServer(ctx context.Context, profile *profile.Profile, store *store.Store) (*Server, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.LoggerMiddleware())
	e.Use(middleware.RateLimitMiddleware(middleware.NewRateLimiter()))

	s := &Server{
		Profile:    profile,
		Store:      store,
		echoServer: e,
	}

	systemClock := clock.NewSystem()

	engine := countdown.NewEngine(systemClock)
	engine.Start(ctx)
	s.countdown = engine

	accessGate := gate.New(systemClock, profile.GateSecretHash, profile.GateUnlockWindow)
	quizSession := quiz.NewSession(store, systemClock, quiz.DefaultAdvanceDelay)

	apiV1Service := apiv1.NewAPIV1Service(profile, store, accessGate, quizSession, engine)
	apiV1Service.Register(e)

	rssService := rss.NewRSSService(profile, store)
	rssService.RegisterRoutes(e)

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "Service ready.")
	})

	// Warm the collection mirror so the first page render after a
	// backend hiccup still has data to show.
	go func() {
		if err := store.RefreshAll(ctx); err != nil {
			slog.Warn("initial collection refresh failed", "error", err)
		}
	}()

	return s, nil
}

func (s *Server) Start(ctx context.Context) error {
	address := fmt.Sprintf("%s:%d", s.Profile.Addr, s.Profile.Port)
	slog.Info("server started", "address", address, "mode", s.Profile.Mode, "driver", s.Profile.Driver)
	if err := s.echoServer.Start(address); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := s.echoServer.Shutdown(ctx); err != nil {
		slog.Error("failed to shutdown server", "error", err)
	}
	if err := s.Store.Close(); err != nil {
		slog.Error("failed to close store", "error", err)
	}
	slog.Info("server stopped")
}
