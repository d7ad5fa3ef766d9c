package handlers

import (
	"errors"
	"net/http"

	"github.com/andrewpaige1/srlboard-api/models"
	"github.com/andrewpaige1/srlboard-api/progress"
	"github.com/andrewpaige1/srlboard-api/repository"
	"github.com/andrewpaige1/srlboard-api/utils"
	"gorm.io/datatypes"
)

func (h *Handler) GetBoard(w http.ResponseWriter, r *http.Request) {
	user, _ := utils.CurrentUser(r)

	board, err := h.Boards.FindByUser(r.Context(), user.ID)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Board not found")
		return
	}
	if err != nil {
		h.internalError(w, r, "Failed to load board", err)
		return
	}
	writeJSON(w, http.StatusOK, board)
}

func (h *Handler) GetBoards(w http.ResponseWriter, r *http.Request) {
	user, _ := utils.CurrentUser(r)

	boards, err := h.Boards.ListByUser(r.Context(), user.ID)
	if err != nil {
		h.internalError(w, r, "Failed to load boards", err)
		return
	}
	writeJSON(w, http.StatusOK, boards)
}

type updateBoardRequest struct {
	BoardID string        `json:"board_id"`
	Lists   []models.List `json:"lists" validate:"required"`
}

// UpdateBoard replaces the lists of a board, the current one unless board_id
// is given.
func (h *Handler) UpdateBoard(w http.ResponseWriter, r *http.Request) {
	user, _ := utils.CurrentUser(r)

	var req updateBoardRequest
	if err := h.decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	boardID, ok := h.boardID(w, r, user.ID, req.BoardID, "Failed to update board")
	if !ok {
		return
	}

	board, err := h.Boards.UpdateLists(r.Context(), user.ID, boardID, req.Lists)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Board not found")
		return
	}
	if err != nil {
		h.internalError(w, r, "Failed to update board", err)
		return
	}
	writeJSON(w, http.StatusOK, board)
}

type updateCardRequest struct {
	BoardID     string  `json:"board_id"`
	Description *string `json:"description"`
	Difficulty  *string `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
}

// UpdateCard edits the description and difficulty of one card. Fields left
// out of the body are not touched.
func (h *Handler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	user, _ := utils.CurrentUser(r)
	cardID := r.PathValue("cardID")

	var req updateCardRequest
	if err := h.decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	boardID, ok := h.boardID(w, r, user.ID, req.BoardID, "Failed to update card")
	if !ok {
		return
	}

	board, err := h.Boards.UpdateCard(r.Context(), user.ID, boardID, cardID, func(c *models.Card) {
		if req.Description != nil {
			c.Description = *req.Description
		}
		if req.Difficulty != nil {
			c.Difficulty = *req.Difficulty
		}
	})
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "Board not found")
		return
	case errors.Is(err, repository.ErrCardNotFound):
		writeError(w, http.StatusNotFound, "Card not found")
		return
	case err != nil:
		h.internalError(w, r, "Failed to update card", err)
		return
	}
	writeJSON(w, http.StatusOK, board)
}

// boardID resolves an optional board id to the current board. On failure the
// response has been written and ok is false.
func (h *Handler) boardID(w http.ResponseWriter, r *http.Request, userID uint, requested, failure string) (string, bool) {
	if requested != "" {
		return requested, true
	}
	current, err := h.Boards.FindByUser(r.Context(), userID)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Board not found")
		return "", false
	}
	if err != nil {
		h.internalError(w, r, failure, err)
		return "", false
	}
	return current.ID, true
}

type createBoardRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

func (h *Handler) CreateBoard(w http.ResponseWriter, r *http.Request) {
	user, _ := utils.CurrentUser(r)

	var req createBoardRequest
	if err := h.decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	board := &models.Board{
		UserID: user.ID,
		Name:   req.Name,
		Lists:  datatypes.NewJSONType(models.InitialLists()),
	}
	if err := h.Boards.Create(r.Context(), board); err != nil {
		h.internalError(w, r, "Failed to create board", err)
		return
	}
	writeJSON(w, http.StatusCreated, board)
}

func (h *Handler) GetProgressReport(w http.ResponseWriter, r *http.Request) {
	user, _ := utils.CurrentUser(r)

	board, err := h.Boards.FindByUser(r.Context(), user.ID)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Board not found")
		return
	}
	if err != nil {
		h.internalError(w, r, "Failed to build progress report", err)
		return
	}
	writeJSON(w, http.StatusOK, progress.Build(board))
}
