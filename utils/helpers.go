package utils

import (
	"context"
	"net/http"
	"strconv"

	"github.com/andrewpaige1/srlboard-api/models"
	jwtmiddleware "github.com/auth0/go-jwt-middleware/v2"
	"github.com/auth0/go-jwt-middleware/v2/validator"
)

type contextKey string

const userKey contextKey = "user"

// GetUserID returns the user id from the verified token subject.
func GetUserID(r *http.Request) (uint, bool) {
	claims, ok := r.Context().Value(jwtmiddleware.ContextKey{}).(*validator.ValidatedClaims)
	if !ok || claims == nil {
		return 0, false
	}
	id, err := strconv.ParseUint(claims.RegisteredClaims.Subject, 10, 0)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// CurrentUser returns the user attached by the auth middleware.
func CurrentUser(r *http.Request) (*models.User, bool) {
	user, ok := r.Context().Value(userKey).(*models.User)
	return user, ok && user != nil
}
