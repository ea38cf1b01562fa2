package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/yislamovic/scheduler-v2/internal/domain"
	apperrors "github.com/yislamovic/scheduler-v2/internal/errors"
	"github.com/yislamovic/scheduler-v2/internal/metrics"
	"github.com/yislamovic/scheduler-v2/internal/schedule"
	"github.com/yislamovic/scheduler-v2/internal/session"
)

// resolveSession materializes the acting session from the request header.
// A missing or unknown token silently yields a fresh session; the returned
// session's id is authoritative.
func (s *Server) resolveSession(c echo.Context) *session.Session {
	token := c.Request().Header.Get(sessionHeader)
	sess, created := s.store.Resolve(token)
	if created && token != "" {
		slog.Info("Unknown session token, created replacement", "requested", token, "session_id", sess.ID)
	}
	c.Set("sessionID", sess.ID)
	return sess
}

func (s *Server) handleInitSession(c echo.Context) error {
	sess := s.store.Create(session.TriggerInit)
	if err := c.JSON(http.StatusOK, map[string]string{"sessionId": sess.ID}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleCheckSession(c echo.Context) error {
	id := c.Param("id")
	if err := c.JSON(http.StatusOK, map[string]any{
		"sessionId": id,
		"exists":    s.store.Exists(id),
	}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleListDays(c echo.Context) error {
	sess := s.resolveSession(c)
	return c.JSON(http.StatusOK, sess.Schedule.Days)
}

func (s *Server) handleListAppointments(c echo.Context) error {
	sess := s.resolveSession(c)
	return c.JSON(http.StatusOK, sess.Schedule.Appointments)
}

func (s *Server) handleListInterviewers(c echo.Context) error {
	sess := s.resolveSession(c)
	return c.JSON(http.StatusOK, sess.Schedule.Interviewers)
}

type bookRequest struct {
	Interview *domain.Interview `json:"interview"`
}

func (s *Server) handleBookAppointment(c echo.Context) error {
	sess := s.resolveSession(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		// A non-numeric id cannot name any appointment.
		return apperrors.NotFoundError("Appointment not found").WithField("appointment_id", c.Param("id"))
	}

	var req bookRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}
	if req.Interview == nil {
		return apperrors.ValidationError("interview is required")
	}

	if err := schedule.Book(sess.Schedule, id, *req.Interview); err != nil {
		metrics.BookingsTotal.WithLabelValues("not_found").Inc()
		return apperrors.NotFoundError("Appointment not found").WithField("appointment_id", id)
	}

	metrics.BookingsTotal.WithLabelValues("ok").Inc()
	slog.Info("Booked appointment", "session_id", sess.ID, "appointment_id", id, "interviewer", req.Interview.Interviewer)
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleCancelAppointment(c echo.Context) error {
	sess := s.resolveSession(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return apperrors.NotFoundError("Appointment not found").WithField("appointment_id", c.Param("id"))
	}

	if err := schedule.Cancel(sess.Schedule, id); err != nil {
		metrics.CancellationsTotal.WithLabelValues("not_found").Inc()
		return apperrors.NotFoundError("Appointment not found").WithField("appointment_id", id)
	}

	metrics.CancellationsTotal.WithLabelValues("ok").Inc()
	slog.Info("Cancelled appointment", "session_id", sess.ID, "appointment_id", id)
	return c.NoContent(http.StatusNoContent)
}
