// Package client provides a typed HTTP client for the scheduler API,
// attaching the session token to every call after init.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yislamovic/scheduler-v2/internal/domain"
)

const httpCallTimeout = 10 * time.Second

// Client talks to one scheduler instance. Call InitSession before any
// session-scoped method; afterwards the token rides along automatically.
// Not safe for concurrent InitSession calls; everything else is read-only
// on the client itself.
type Client struct {
	baseURL   string
	http      *http.Client
	sessionID string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: httpCallTimeout},
	}
}

// SessionID returns the token issued by InitSession, empty before init.
func (c *Client) SessionID() string {
	return c.sessionID
}

// InitSession asks the server for a fresh isolated session and remembers
// its token for all subsequent calls.
func (c *Client) InitSession(ctx context.Context) (string, error) {
	var resp struct {
		SessionID string `json:"sessionId"`
	}
	if err := c.call(ctx, http.MethodPost, "/api/session/init", nil, &resp); err != nil {
		return "", fmt.Errorf("session init failed: %w", err)
	}
	c.sessionID = resp.SessionID
	return resp.SessionID, nil
}

// CheckSession reports whether the server still knows the given token.
func (c *Client) CheckSession(ctx context.Context, sessionID string) (bool, error) {
	var resp struct {
		Exists bool `json:"exists"`
	}
	if err := c.call(ctx, http.MethodGet, "/api/session/"+sessionID, nil, &resp); err != nil {
		return false, fmt.Errorf("session check failed: %w", err)
	}
	return resp.Exists, nil
}

func (c *Client) Days(ctx context.Context) ([]domain.Day, error) {
	var days []domain.Day
	if err := c.call(ctx, http.MethodGet, "/api/days", nil, &days); err != nil {
		return nil, fmt.Errorf("days fetch failed: %w", err)
	}
	return days, nil
}

func (c *Client) Appointments(ctx context.Context) (map[int]domain.Appointment, error) {
	var appts map[int]domain.Appointment
	if err := c.call(ctx, http.MethodGet, "/api/appointments", nil, &appts); err != nil {
		return nil, fmt.Errorf("appointments fetch failed: %w", err)
	}
	return appts, nil
}

func (c *Client) Interviewers(ctx context.Context) (map[int]domain.Interviewer, error) {
	var ivs map[int]domain.Interviewer
	if err := c.call(ctx, http.MethodGet, "/api/interviewers", nil, &ivs); err != nil {
		return nil, fmt.Errorf("interviewers fetch failed: %w", err)
	}
	return ivs, nil
}

// Book assigns an interview to a slot. The server returns no aggregate;
// callers re-fetch Days to observe updated spot counts.
func (c *Client) Book(ctx context.Context, appointmentID int, interview domain.Interview) error {
	body := map[string]domain.Interview{"interview": interview}
	err := c.call(ctx, http.MethodPut, fmt.Sprintf("/api/appointments/%d", appointmentID), body, nil)
	if err != nil {
		return fmt.Errorf("booking appointment %d: %w", appointmentID, err)
	}
	return nil
}

// Cancel frees a slot. Same re-fetch contract as Book.
func (c *Client) Cancel(ctx context.Context, appointmentID int) error {
	err := c.call(ctx, http.MethodDelete, fmt.Sprintf("/api/appointments/%d", appointmentID), nil, nil)
	if err != nil {
		return fmt.Errorf("cancelling appointment %d: %w", appointmentID, err)
	}
	return nil
}

// Snapshot is the full session state fetched at startup.
type Snapshot struct {
	Days         []domain.Day
	Appointments map[int]domain.Appointment
	Interviewers map[int]domain.Interviewer
}

// Bootstrap fetches days, appointments and interviewers in parallel.
func (c *Client) Bootstrap(ctx context.Context) (*Snapshot, error) {
	var snap Snapshot

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		days, err := c.Days(gctx)
		snap.Days = days
		return err
	})
	g.Go(func() error {
		appts, err := c.Appointments(gctx)
		snap.Appointments = appts
		return err
	})
	g.Go(func() error {
		ivs, err := c.Interviewers(gctx)
		snap.Interviewers = ivs
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (c *Client) call(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.sessionID != "" {
		req.Header.Set("X-Session-Id", c.sessionID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrAppointmentNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
