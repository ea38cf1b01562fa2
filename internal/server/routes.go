package server

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	// Observability endpoints
	s.echo.GET("/health/live", s.handleLiveness)
	s.echo.GET("/health/ready", s.handleReadiness)
	s.echo.GET("/version", s.handleVersion)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Session lifecycle
	s.echo.POST("/api/session/init", s.handleInitSession)
	s.echo.GET("/api/session/:id", s.handleCheckSession)

	// Session-scoped reads
	s.echo.GET("/api/days", s.handleListDays)
	s.echo.GET("/api/appointments", s.handleListAppointments)
	s.echo.GET("/api/interviewers", s.handleListInterviewers)

	// Mutations
	s.echo.PUT("/api/appointments/:id", s.handleBookAppointment)
	s.echo.DELETE("/api/appointments/:id", s.handleCancelAppointment)

	// Built web client (production mode). HTML5 mode falls back to
	// index.html for client-side routes; API paths are skipped.
	if s.config.StaticDir != "" {
		s.echo.Use(middleware.StaticWithConfig(middleware.StaticConfig{
			Root:  s.config.StaticDir,
			HTML5: true,
			Skipper: func(c echo.Context) bool {
				return strings.HasPrefix(c.Request().URL.Path, "/api") ||
					strings.HasPrefix(c.Request().URL.Path, "/health") ||
					c.Request().URL.Path == "/metrics"
			},
		}))
	}
}
