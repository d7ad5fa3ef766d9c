package handlers

import (
	"net/http"

	"github.com/andrewpaige1/srlboard-api/models"
)

func (h *Handler) GetLearningStrategies(w http.ResponseWriter, r *http.Request) {
	strategies, err := h.Strategies.List(r.Context())
	if err != nil {
		h.internalError(w, r, "Failed to load learning strategies", err)
		return
	}
	writeJSON(w, http.StatusOK, strategies)
}

type createStrategyRequest struct {
	Name        string `json:"learning_strat_name" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
}

func (h *Handler) CreateLearningStrategy(w http.ResponseWriter, r *http.Request) {
	var req createStrategyRequest
	if err := h.decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	strategy := &models.LearningStrategy{Name: req.Name, Description: req.Description}
	if err := h.Strategies.Create(r.Context(), strategy); err != nil {
		h.internalError(w, r, "Failed to create learning strategy", err)
		return
	}
	writeJSON(w, http.StatusCreated, strategy)
}
