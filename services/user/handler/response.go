package handler

import (
	"encoding/json"
	"net/http"

	"bandhan/pkg/apperr"
	"bandhan/pkg/helper"
	"bandhan/pkg/logger"
)

// X-User-ID 헤더에서 유저 ID를 가져온다. 실패하면 응답까지 쓴다.
func getUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	xUserID := r.Header.Get("X-User-ID")
	if xUserID == "" {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "User ID is required"})
		return "", false
	}
	userID, err := helper.ParseUserID(xUserID, "X-User-ID")
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid User ID format"})
		return "", false
	}
	return userID, true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Logger.Error().Err(err).Msg("❌ Failed to encode response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperr.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logger.Error(logger.LogEventError, "❌ Request failed", map[string]interface{}{
			"path":  r.URL.Path,
			"error": err.Error(),
		})
	}
	writeJSON(w, status, map[string]string{"error": apperr.Message(err)})
}

func decodeBody(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperr.Validation("Invalid request payload")
	}
	return nil
}
