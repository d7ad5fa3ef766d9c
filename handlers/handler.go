package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/andrewpaige1/srlboard-api/auth"
	"github.com/andrewpaige1/srlboard-api/chatbot"
	"github.com/andrewpaige1/srlboard-api/repository"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// CookieConfig controls the auth cookie. An empty Domain means local
// development: the cookie is not marked Secure.
type CookieConfig struct {
	Domain string
}

type Deps struct {
	Users      *repository.UserRepository
	Boards     *repository.BoardRepository
	Sessions   *repository.StudySessionRepository
	Strategies *repository.StrategyRepository
	Activity   *repository.ActivityLogRepository
	Chatbot    *chatbot.Service
	Tokens     *auth.Tokens
	Cookie     CookieConfig
	Log        *zap.Logger
}

// Handler serves every API endpoint. Handlers behind RequireUser read the
// caller from the request context.
type Handler struct {
	Deps
	validate *validator.Validate
	now      func() time.Time
}

func New(deps Deps) *Handler {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	deps.Log = deps.Log.With(zap.String("component", "handlers"))
	return &Handler{Deps: deps, validate: v, now: time.Now}
}

var (
	errNoBody      = errors.New("No data provided")
	errInvalidJSON = errors.New("Invalid JSON body")
)

// decode reads a JSON body into dst and validates it. The returned error is
// safe to show to the client.
func (h *Handler) decode(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errNoBody
		}
		return errInvalidJSON
	}

	err := h.validate.Struct(dst)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if fe.Tag() == "required" {
			return fmt.Errorf("Missing required field: %s", fe.Field())
		}
		return fmt.Errorf("Invalid field: %s", fe.Field())
	}
	return err
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// internalError logs err and answers with a generic message.
func (h *Handler) internalError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	h.Log.Error(msg, zap.Error(err), zap.String("path", r.URL.Path))
	writeError(w, http.StatusInternalServerError, msg)
}
