package errors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func performRequest(t *testing.T, handler echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	e.Use(Middleware())
	e.GET("/test", handler)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestMiddleware_PassesThroughSuccess(t *testing.T) {
	rec := performRequest(t, func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestMiddleware_NotFound(t *testing.T) {
	rec := performRequest(t, func(c echo.Context) error {
		return NotFoundError("Appointment not found")
	})

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error": "Appointment not found"}`, rec.Body.String())
}

func TestMiddleware_WrapsPlainErrors(t *testing.T) {
	rec := performRequest(t, func(c echo.Context) error {
		return errors.New("something broke")
	})

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error": "internal server error"}`, rec.Body.String())
}

func TestMiddleware_EchoHTTPErrorPassesThrough(t *testing.T) {
	rec := performRequest(t, func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusMethodNotAllowed, "nope")
	})

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
