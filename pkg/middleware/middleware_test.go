package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

type fakeSessions map[string]string

func (f fakeSessions) GetUserBySessionID(_ context.Context, sessionID string) (string, error) {
	if id, ok := f[sessionID]; ok {
		return id, nil
	}
	return "", errors.New("session not found")
}

func newEcho(sessions SessionResolver) *echo.Echo {
	e := echo.New()
	e.Use(SessionMiddleware(sessions))
	e.GET("/matches/suggestions", func(c echo.Context) error {
		return c.String(http.StatusOK, c.Request().Header.Get(HeaderUserID))
	})
	e.GET("/health", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	return e
}

func TestSessionMiddlewareSetsUserHeader(t *testing.T) {
	e := newEcho(fakeSessions{"s1": "11111111-1111-1111-1111-111111111111"})

	req := httptest.NewRequest(http.MethodGet, "/matches/suggestions", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "s1"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "11111111-1111-1111-1111-111111111111", rec.Body.String())
}

func TestSessionMiddlewareRejectsUnknownSession(t *testing.T) {
	e := newEcho(fakeSessions{})

	req := httptest.NewRequest(http.MethodGet, "/matches/suggestions", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "nope"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/matches/suggestions", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionMiddlewareSkipsHealth(t *testing.T) {
	e := newEcho(fakeSessions{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
