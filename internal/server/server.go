package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/yislamovic/scheduler-v2/internal/config"
	apperrors "github.com/yislamovic/scheduler-v2/internal/errors"
	"github.com/yislamovic/scheduler-v2/internal/session"
)

// sessionHeader carries the opaque session token on every API call.
// The token travels as a header, not a cookie; the client owns attaching it.
const sessionHeader = "X-Session-Id"

type Server struct {
	echo      *echo.Echo
	config    *config.Config
	store     *session.Store
	startTime time.Time
}

func NewServer(cfg *config.Config, store *session.Store) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(apperrors.Middleware())

	srv := &Server{
		echo:      e,
		config:    cfg,
		store:     store,
		startTime: time.Now(),
	}

	// Register routes
	srv.registerRoutes()

	return srv
}

// Handler exposes the router for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) Start() error {
	slog.Info("Starting server", "port", s.config.Port)
	return s.echo.Start(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
