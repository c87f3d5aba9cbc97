package transport

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bandhan/pkg/db/dbtest"
	"bandhan/services/user/handler"
	"bandhan/services/user/repository"
	"bandhan/services/user/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) http.Handler {
	conn := dbtest.Open(t)
	profiles := repository.NewProfileRepository(conn)
	preferences := repository.NewPreferenceRepository(conn)

	return NewRouter(
		handler.NewProfileHandler(service.NewProfileService(profiles)),
		handler.NewPreferenceHandler(service.NewPreferenceService(preferences, profiles)),
	)
}

func call(t *testing.T, h http.Handler, method, path, userID string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestProfileLifecycle(t *testing.T) {
	h := newServer(t)
	me, other := uuid.NewString(), uuid.NewString()
	reg := map[string]string{"displayName": "Ravi", "gender": "male", "dateOfBirth": "1994-02-10"}

	rec := call(t, h, http.MethodPost, "/profile", me, reg)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, float64(15), decode(t, rec)["completionPercentage"])

	rec = call(t, h, http.MethodPost, "/profile", me, reg)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = call(t, h, http.MethodPatch, "/profile", me, map[string]interface{}{"city": "Pune", "heightCm": 178})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Pune", decode(t, rec)["city"])

	rec = call(t, h, http.MethodPatch, "/profile", me, map[string]interface{}{"gender": "unknown"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// 다른 유저가 보는 프로필에는 생년월일이 없다
	rec = call(t, h, http.MethodGet, "/profile/"+me, other, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	public := decode(t, rec)
	assert.Equal(t, "Ravi", public["displayName"])
	assert.NotContains(t, public, "dateOfBirth")

	rec = call(t, h, http.MethodDelete, "/profile", me, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = call(t, h, http.MethodGet, "/profile/"+me, other, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = call(t, h, http.MethodGet, "/profile", me, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, decode(t, rec)["isActive"])
}

func TestPreferenceEndpoints(t *testing.T) {
	h := newServer(t)
	me := uuid.NewString()

	rec := call(t, h, http.MethodPatch, "/preference", me, map[string]int{"ageMin": 25})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = call(t, h, http.MethodPost, "/profile", me, map[string]string{"displayName": "Meera", "gender": "female", "dateOfBirth": "1997-08-21"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = call(t, h, http.MethodGet, "/preference", me, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, decode(t, rec), "ageMin")

	rec = call(t, h, http.MethodPatch, "/preference", me, map[string]interface{}{"ageMin": 27, "ageMax": 33, "diet": "vegetarian"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = call(t, h, http.MethodGet, "/preference", me, nil)
	pref := decode(t, rec)
	assert.Equal(t, float64(27), pref["ageMin"])
	assert.Equal(t, "vegetarian", pref["diet"])

	rec = call(t, h, http.MethodPatch, "/preference", me, map[string]int{"heightMin": 190, "heightMax": 150})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUserHeaderRequired(t *testing.T) {
	h := newServer(t)

	rec := call(t, h, http.MethodGet, "/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = call(t, h, http.MethodGet, "/profile", "not-a-uuid", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = call(t, h, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
