package handler

import (
	"net/http"

	"bandhan/pkg/dto"
	"bandhan/services/user/service"
)

type PreferenceHandler struct {
	preferenceService *service.PreferenceService
}

func NewPreferenceHandler(preferenceService *service.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{preferenceService: preferenceService}
}

// 선호 조건 조회
func (h *PreferenceHandler) FindPreference(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(w, r)
	if !ok {
		return
	}

	pref, err := h.preferenceService.GetPreference(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, pref)
}

// 선호 조건 수정
func (h *PreferenceHandler) UpdatePreference(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(w, r)
	if !ok {
		return
	}

	var req dto.UpdatePreferenceRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	pref, err := h.preferenceService.UpdatePreference(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, pref)
}
