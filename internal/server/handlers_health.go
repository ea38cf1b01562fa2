package server

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/yislamovic/scheduler-v2/internal/version"
)

func (s *Server) handleLiveness(c echo.Context) error {
	uptime := time.Since(s.startTime).Seconds()
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"uptime": uptime,
	})
}

// handleReadiness has no external dependencies to probe; the store lives in
// process, so readiness only reports the live session count.
func (s *Server) handleReadiness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":   "ready",
		"sessions": s.store.Len(),
	})
}

func (s *Server) handleVersion(c echo.Context) error {
	return c.JSON(http.StatusOK, version.Get())
}
