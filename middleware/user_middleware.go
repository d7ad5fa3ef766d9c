package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/andrewpaige1/srlboard-api/models"
	"github.com/andrewpaige1/srlboard-api/repository"
	"github.com/andrewpaige1/srlboard-api/utils"
	"go.uber.org/zap"
)

type UserFinder interface {
	FindByID(ctx context.Context, id uint) (*models.User, error)
}

// RequireUser loads the user named by the verified token and attaches it to
// the request context. Tokens for deleted users are rejected.
func RequireUser(users UserFinder, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := utils.GetUserID(r)
			if !ok {
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			user, err := users.FindByID(r.Context(), userID)
			if errors.Is(err, repository.ErrNotFound) {
				writeError(w, http.StatusUnauthorized, "User not found")
				return
			}
			if err != nil {
				log.Error("failed to load user", zap.Error(err), zap.Uint("user_id", userID))
				writeError(w, http.StatusInternalServerError, "Failed to load user")
				return
			}

			next.ServeHTTP(w, r.WithContext(utils.WithUser(r.Context(), user)))
		})
	}
}
