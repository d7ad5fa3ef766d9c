package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/andrewpaige1/srlboard-api/auth"
	"github.com/andrewpaige1/srlboard-api/models"
	"github.com/andrewpaige1/srlboard-api/repository"
	"github.com/andrewpaige1/srlboard-api/utils"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

type credentials struct {
	Username  string `json:"username" validate:"required,max=100"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"first_name" validate:"max=100"`
}

// Register creates the user together with its first board.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentials
	if err := h.decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.internalError(w, r, "Failed to create user", err)
		return
	}

	user := &models.User{
		Username:     strings.TrimSpace(req.Username),
		PasswordHash: hash,
		FirstName:    req.FirstName,
	}
	board := &models.Board{
		Name:  "My Board",
		Lists: datatypes.NewJSONType(models.InitialLists()),
	}

	err = h.Users.Create(r.Context(), user, board)
	if errors.Is(err, repository.ErrDuplicate) {
		writeError(w, http.StatusConflict, "Username already exists")
		return
	}
	if err != nil {
		h.internalError(w, r, "Failed to create user", err)
		return
	}

	h.Log.Info("registered user", zap.Uint("user_id", user.ID), zap.String("username", user.Username))
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message":  "User registered successfully",
		"user":     user,
		"board_id": board.ID,
	})
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := h.decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.Users.FindByUsername(r.Context(), strings.TrimSpace(req.Username))
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusUnauthorized, auth.ErrInvalidCredentials.Error())
		return
	}
	if err != nil {
		h.internalError(w, r, "Failed to log in", err)
		return
	}
	if err := auth.CheckPassword(user.PasswordHash, req.Password); err != nil {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}

	token, expires, err := h.Tokens.CreateToken(user.ID, user.Username)
	if err != nil {
		h.internalError(w, r, "Failed to log in", err)
		return
	}

	http.SetCookie(w, h.authCookie(token, expires))
	h.recordActivity(r, user, models.ActionLogin, user.Username+" logged in")

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":    "Login successful",
		"token":      token,
		"expires_at": expires,
		"user":       user,
	})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	cookie := h.authCookie("", time.Unix(0, 0))
	cookie.MaxAge = -1
	http.SetCookie(w, cookie)

	if user, ok := utils.CurrentUser(r); ok {
		h.recordActivity(r, user, models.ActionLogout, user.Username+" logged out")
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logout successful"})
}

func (h *Handler) authCookie(value string, expires time.Time) *http.Cookie {
	c := &http.Cookie{
		Name:     auth.CookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if h.Cookie.Domain != "" {
		c.Domain = h.Cookie.Domain
		c.Secure = true
		c.SameSite = http.SameSiteNoneMode
	}
	return c
}

// recordActivity never fails the request.
func (h *Handler) recordActivity(r *http.Request, user *models.User, action, description string) {
	entry := &models.ActivityLog{
		UserID:      user.ID,
		Username:    user.Username,
		ActionType:  action,
		Description: description,
		CreatedAt:   h.now(),
	}
	if err := h.Activity.Append(r.Context(), entry); err != nil {
		h.Log.Warn("failed to append activity log", zap.Error(err), zap.String("action", action))
	}
}
