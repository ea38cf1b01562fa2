// Package server implements the HTTP surface using Echo framework.
//
// Routes: session lifecycle (init/check), session-scoped reads (days,
// appointments, interviewers), mutations (book/cancel) and observability
// (health, version, metrics). Every API call resolves its session from the
// X-Session-Id header; unknown tokens silently get a fresh session.
package server
