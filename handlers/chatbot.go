package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/andrewpaige1/srlboard-api/chatbot"
	"github.com/andrewpaige1/srlboard-api/utils"
	"go.uber.org/zap"
)

const (
	defaultHistoryLimit = 10
	maxHistoryLimit     = 100
)

type envelope map[string]interface{}

func chatError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{"status": "error", "message": message})
}

// cardMovementRequest only requires the column keys to be present, so two
// empty column ids still count as a move within the same column.
type cardMovementRequest struct {
	BoardID    string  `json:"board_id" validate:"required"`
	CardID     string  `json:"card_id" validate:"required"`
	FromColumn *string `json:"from_column" validate:"required"`
	ToColumn   *string `json:"to_column" validate:"required"`
}

// HandleCardMovement answers a reported card move with a coaching reply.
func (h *Handler) HandleCardMovement(w http.ResponseWriter, r *http.Request) {
	user, _ := utils.CurrentUser(r)

	var body cardMovementRequest
	if err := h.decode(r, &body); err != nil {
		chatError(w, http.StatusBadRequest, err.Error())
		return
	}
	req := chatbot.MovementRequest{
		BoardID:    body.BoardID,
		CardID:     body.CardID,
		FromColumn: *body.FromColumn,
		ToColumn:   *body.ToColumn,
	}

	resp, err := h.Chatbot.HandleMovement(r.Context(), user.ID, req)
	if err != nil {
		h.Log.Error("failed to handle card movement", zap.Error(err), zap.String("card_id", req.CardID))
		chatError(w, http.StatusInternalServerError, "Failed to process card movement")
		return
	}
	if resp == nil {
		writeJSON(w, http.StatusOK, envelope{
			"status":   "success",
			"message":  "No movement detected",
			"response": nil,
		})
		return
	}

	writeJSON(w, http.StatusOK, envelope{
		"status":   "success",
		"message":  "Card movement processed successfully",
		"response": resp,
	})
}

var errBadPage = errors.New("limit and offset must be non-negative integers")

func pageParams(r *http.Request) (limit, offset int, err error) {
	limit, offset = defaultHistoryLimit, 0
	q := r.URL.Query()
	if v := q.Get("limit"); v != "" {
		if limit, err = strconv.Atoi(v); err != nil || limit < 0 {
			return 0, 0, errBadPage
		}
	}
	if v := q.Get("offset"); v != "" {
		if offset, err = strconv.Atoi(v); err != nil || offset < 0 {
			return 0, 0, errBadPage
		}
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	return limit, offset, nil
}

func (h *Handler) GetChatbotHistory(w http.ResponseWriter, r *http.Request) {
	user, _ := utils.CurrentUser(r)

	limit, offset, err := pageParams(r)
	if err != nil {
		chatError(w, http.StatusBadRequest, err.Error())
		return
	}

	logs, total, err := h.Chatbot.History(r.Context(), user.ID, limit, offset)
	if err != nil {
		h.Log.Error("failed to load chatbot history", zap.Error(err))
		chatError(w, http.StatusInternalServerError, "Failed to load chatbot history")
		return
	}

	writeJSON(w, http.StatusOK, envelope{
		"status": "success",
		"data":   logs,
		"pagination": envelope{
			"total":  total,
			"limit":  limit,
			"offset": offset,
		},
	})
}

func (h *Handler) GetChatbotStats(w http.ResponseWriter, r *http.Request) {
	user, _ := utils.CurrentUser(r)

	stats, err := h.Chatbot.Stats(r.Context(), user.ID)
	if err != nil {
		h.Log.Error("failed to load chatbot stats", zap.Error(err))
		chatError(w, http.StatusInternalServerError, "Failed to load chatbot stats")
		return
	}
	writeJSON(w, http.StatusOK, envelope{"status": "success", "stats": stats})
}

type chatMessageRequest struct {
	Message  string `json:"message" validate:"required"`
	UserName string `json:"user_name"`
}

func (h *Handler) HandleChatMessage(w http.ResponseWriter, r *http.Request) {
	user, _ := utils.CurrentUser(r)

	var req chatMessageRequest
	if err := h.decode(r, &req); err != nil {
		chatError(w, http.StatusBadRequest, err.Error())
		return
	}

	name := req.UserName
	if name == "" {
		name = user.FirstName
	}
	if name == "" {
		name = user.Username
	}

	reply := h.Chatbot.Chat(r.Context(), user.ID, req.Message, name)
	writeJSON(w, http.StatusOK, envelope{"status": "success", "reply": reply})
}
