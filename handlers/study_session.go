package handlers

import (
	"errors"
	"net/http"

	"github.com/andrewpaige1/srlboard-api/movement"
	"github.com/andrewpaige1/srlboard-api/repository"
	"github.com/andrewpaige1/srlboard-api/utils"
)

type startSessionRequest struct {
	CardID string `json:"card_id" validate:"required"`
}

func (h *Handler) StartStudySession(w http.ResponseWriter, r *http.Request) {
	user, _ := utils.CurrentUser(r)

	var req startSessionRequest
	if err := h.decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	session, err := h.Sessions.Start(r.Context(), user.ID, req.CardID, h.now())
	if err != nil {
		h.internalError(w, r, "Failed to start study session", err)
		return
	}
	writeJSON(w, http.StatusCreated, session)
}

type endSessionRequest struct {
	SessionID string `json:"session_id" validate:"required"`
}

func (h *Handler) EndStudySession(w http.ResponseWriter, r *http.Request) {
	user, _ := utils.CurrentUser(r)

	var req endSessionRequest
	if err := h.decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	session, err := h.Sessions.End(r.Context(), user.ID, req.SessionID, h.now())
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "Study session not found")
		return
	case errors.Is(err, repository.ErrSessionEnded):
		writeError(w, http.StatusConflict, "Study session already ended")
		return
	case err != nil:
		h.internalError(w, r, "Failed to end study session", err)
		return
	}

	d, _ := session.Duration()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"session":          session,
		"duration_minutes": d.Minutes(),
	})
}

// GetCardStudySessions lists the caller's sessions for a card with the
// study-time summary of the finished ones.
func (h *Handler) GetCardStudySessions(w http.ResponseWriter, r *http.Request) {
	user, _ := utils.CurrentUser(r)

	cardID := r.PathValue("cardID")
	if cardID == "" {
		writeError(w, http.StatusBadRequest, "Card ID is required")
		return
	}

	sessions, err := h.Sessions.FindByCard(r.Context(), user.ID, cardID)
	if err != nil {
		h.internalError(w, r, "Failed to load study sessions", err)
		return
	}

	summary := movement.AnalyzeStudyTime(sessions)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"sessions":      sessions,
		"total_minutes": summary.TotalTimeMinutes,
		"summary":       summary,
	})
}
