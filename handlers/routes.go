package handlers

import "net/http"

// Routes registers every endpoint. secure wraps the handlers that need a
// signed-in user.
func (h *Handler) Routes(secure func(http.HandlerFunc) http.Handler) *http.ServeMux {
	mux := http.NewServeMux()

	// Auth
	mux.HandleFunc("POST /api/auth/register", h.Register)
	mux.HandleFunc("POST /api/auth/login", h.Login)
	mux.Handle("POST /api/auth/logout", secure(h.Logout))

	// Board
	mux.Handle("GET /api/board", secure(h.GetBoard))
	mux.Handle("PUT /api/board", secure(h.UpdateBoard))
	mux.Handle("PATCH /api/board/cards/{cardID}", secure(h.UpdateCard))
	mux.Handle("GET /api/boards", secure(h.GetBoards))
	mux.Handle("POST /api/boards", secure(h.CreateBoard))
	mux.Handle("GET /api/board/progress-report", secure(h.GetProgressReport))

	// Study sessions
	mux.Handle("POST /api/study-sessions/start", secure(h.StartStudySession))
	mux.Handle("POST /api/study-sessions/end", secure(h.EndStudySession))
	mux.Handle("GET /api/study-sessions/card/{cardID}", secure(h.GetCardStudySessions))

	// Learning strategies
	mux.Handle("GET /api/learning-strategies", secure(h.GetLearningStrategies))
	mux.Handle("POST /api/learning-strategies", secure(h.CreateLearningStrategy))

	// Chatbot
	mux.Handle("POST /api/chatbot/card-movement", secure(h.HandleCardMovement))
	mux.Handle("GET /api/chatbot/history", secure(h.GetChatbotHistory))
	mux.Handle("GET /api/chatbot/stats", secure(h.GetChatbotStats))
	mux.Handle("POST /api/chatbot/message", secure(h.HandleChatMessage))

	return mux
}
