package transport

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bandhan/services/gateway/handler"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSessions map[string]string

func (f fakeSessions) GetUserBySessionID(_ context.Context, sessionID string) (string, error) {
	if id, ok := f[sessionID]; ok {
		return id, nil
	}
	return "", errors.New("session not found")
}

type seen struct {
	method, path, query, userID, body string
}

func backend(t *testing.T, name string, got *seen) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		*got = seen{r.Method, r.URL.Path, r.URL.RawQuery, r.Header.Get("X-User-ID"), string(body)}
		w.Header().Set("X-Backend", name)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func request(h http.Handler, method, path, session, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if session != "" {
		req.AddCookie(&http.Cookie{Name: "session_id", Value: session})
	}
	req.Header.Set("X-User-ID", "forged")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestGatewayProxiesWithSessionUser(t *testing.T) {
	var matchSeen, userSeen seen
	matchSrv := backend(t, "match", &matchSeen)
	userSrv := backend(t, "user", &userSeen)

	e := NewRouter(handler.NewGatewayHandler(map[string]string{
		"matches": matchSrv.URL,
		"profile": userSrv.URL,
	}), fakeSessions{"s1": "user-1"})

	rec := request(e, http.MethodPost, "/matches/like?x=1", "s1", `{"likedUserId":"u2"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "match", rec.Header().Get("X-Backend"))
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
	assert.Equal(t, seen{http.MethodPost, "/matches/like", "x=1", "user-1", `{"likedUserId":"u2"}`}, matchSeen)

	rec = request(e, http.MethodGet, "/profile", "s1", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "user", rec.Header().Get("X-Backend"))
	assert.Equal(t, "user-1", userSeen.userID)
}

func TestGatewayRejectsAndRoutes(t *testing.T) {
	e := NewRouter(handler.NewGatewayHandler(map[string]string{}), fakeSessions{"s1": "user-1"})

	assert.Equal(t, http.StatusUnauthorized, request(e, http.MethodGet, "/matches/suggestions", "", "").Code)
	assert.Equal(t, http.StatusUnauthorized, request(e, http.MethodGet, "/matches/suggestions", "bad", "").Code)
	assert.Equal(t, http.StatusNotFound, request(e, http.MethodGet, "/unknown", "s1", "").Code)
	assert.Equal(t, http.StatusOK, request(e, http.MethodGet, "/health", "", "").Code)
}
