package middleware

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/andrewpaige1/srlboard-api/auth"
	jwtmiddleware "github.com/auth0/go-jwt-middleware/v2"
	"github.com/auth0/go-jwt-middleware/v2/validator"
	"go.uber.org/zap"
)

// EnsureValidToken rejects requests without a valid token in the
// Authorization header or the auth cookie.
func EnsureValidToken(v *validator.Validator, log *zap.Logger) func(http.Handler) http.Handler {
	errorHandler := func(w http.ResponseWriter, r *http.Request, err error) {
		if errors.Is(err, jwtmiddleware.ErrJWTMissing) {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		log.Debug("rejected token", zap.Error(err), zap.String("path", r.URL.Path))
		writeError(w, http.StatusUnauthorized, "Invalid token")
	}

	mw := jwtmiddleware.New(
		v.ValidateToken,
		jwtmiddleware.WithErrorHandler(errorHandler),
		jwtmiddleware.WithTokenExtractor(jwtmiddleware.MultiTokenExtractor(
			jwtmiddleware.AuthHeaderTokenExtractor,
			jwtmiddleware.CookieTokenExtractor(auth.CookieName),
		)),
	)

	return func(next http.Handler) http.Handler {
		return mw.CheckJWT(next)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
