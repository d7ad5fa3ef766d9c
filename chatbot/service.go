package chatbot

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/andrewpaige1/srlboard-api/models"
	"github.com/andrewpaige1/srlboard-api/movement"
	"github.com/andrewpaige1/srlboard-api/repository"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

type BoardStore interface {
	FindByUser(ctx context.Context, userID uint) (*models.Board, error)
	FindByID(ctx context.Context, userID uint, boardID string) (*models.Board, error)
}

type SessionStore interface {
	FindByCard(ctx context.Context, userID uint, cardID string) ([]models.StudySession, error)
}

type StrategyStore interface {
	FindByID(ctx context.Context, id string) (*models.LearningStrategy, error)
}

type UserStore interface {
	FindByID(ctx context.Context, id uint) (*models.User, error)
}

// AuditLog stores every chatbot reply and serves the history endpoints.
type AuditLog interface {
	Append(ctx context.Context, log *models.ChatbotLog) error
	ListByUser(ctx context.Context, userID uint, limit, offset int) ([]models.ChatbotLog, error)
	CountByUser(ctx context.Context, userID uint) (int64, error)
	AllByUser(ctx context.Context, userID uint) ([]models.ChatbotLog, error)
}

type ActivityLog interface {
	Append(ctx context.Context, log *models.ActivityLog) error
}

// Stores groups the collaborators of a Service.
type Stores struct {
	Boards     BoardStore
	Sessions   SessionStore
	Strategies StrategyStore
	Users      UserStore
	Audit      AuditLog
	Activity   ActivityLog
}

// MovementRequest is a card reported as moved between two columns. Empty
// column ids are allowed and compare like any other id.
type MovementRequest struct {
	BoardID    string `json:"board_id"`
	CardID     string `json:"card_id"`
	FromColumn string `json:"from_column"`
	ToColumn   string `json:"to_column"`
}

type Service struct {
	stores    Stores
	generator *Generator
	log       *zap.Logger
	now       func() time.Time
}

type Option func(*Service)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithSelector(sel Selector) Option {
	return func(s *Service) { s.generator = NewGenerator(sel) }
}

func NewService(stores Stores, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		stores:    stores,
		generator: NewGenerator(nil),
		log:       log.With(zap.String("component", "chatbot")),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// HandleMovement analyses a card movement and returns the coaching reply.
// A movement within the same column returns a nil Response. A missing board,
// card or strategy yields a reply built from neutral defaults; only
// unexpected store failures are returned as errors.
func (s *Service) HandleMovement(ctx context.Context, userID uint, req MovementRequest) (*Response, error) {
	if req.FromColumn == req.ToColumn {
		return nil, nil
	}

	card, err := s.findCard(ctx, userID, req.BoardID, req.CardID)
	if err != nil {
		return nil, err
	}

	sessions, err := s.stores.Sessions.FindByCard(ctx, userID, req.CardID)
	if err != nil {
		return nil, fmt.Errorf("failed to load study sessions: %w", err)
	}

	strategy, err := s.findStrategy(ctx, card.LearningStrategy)
	if err != nil {
		return nil, err
	}

	now := s.now()
	analysis := movement.Analyze(card, sessions, req.FromColumn, req.ToColumn, now)
	rt := Classify(req.FromColumn, req.ToColumn, analysis.Pattern, analysis.StudyTime, analysis.Complexity)
	resp := s.generator.Generate(rt, Context{Card: card, Strategy: strategy, Analysis: analysis}, now)

	s.logActivity(ctx, userID, req, card)
	s.audit(ctx, &models.ChatbotLog{
		UserID:              userID,
		Kind:                models.ChatKindCardMovement,
		CardID:              req.CardID,
		FromColumn:          req.FromColumn,
		ToColumn:            req.ToColumn,
		ResponseType:        string(resp.ResponseType),
		Message:             resp.Message,
		Suggestions:         datatypes.NewJSONType(resp.Suggestions),
		ReflectionQuestions: datatypes.NewJSONType(resp.ReflectionQuestions),
		ContextSummary:      datatypes.NewJSONType(resp.ContextSummary),
		MovementType:        string(analysis.Column.MovementType),
		Phase:               analysis.Column.Phase,
		IsMilestone:         analysis.Column.IsMilestone,
		CreatedAt:           now,
	})

	return &resp, nil
}

// findCard returns the zero Card when the board or card does not exist.
func (s *Service) findCard(ctx context.Context, userID uint, boardID, cardID string) (models.Card, error) {
	var (
		board *models.Board
		err   error
	)
	if boardID != "" {
		board, err = s.stores.Boards.FindByID(ctx, userID, boardID)
	} else {
		board, err = s.stores.Boards.FindByUser(ctx, userID)
	}
	if errors.Is(err, repository.ErrNotFound) {
		s.log.Debug("board not found", zap.Uint("user_id", userID), zap.String("board_id", boardID))
		return models.Card{}, nil
	}
	if err != nil {
		return models.Card{}, fmt.Errorf("failed to load board: %w", err)
	}

	card, _ := board.FindCard(cardID)
	return card, nil
}

func (s *Service) findStrategy(ctx context.Context, id string) (*models.LearningStrategy, error) {
	if id == "" {
		return nil, nil
	}
	strategy, err := s.stores.Strategies.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load learning strategy: %w", err)
	}
	return strategy, nil
}

func (s *Service) logActivity(ctx context.Context, userID uint, req MovementRequest, card models.Card) {
	username := "unknown"
	if user, err := s.stores.Users.FindByID(ctx, userID); err == nil {
		username = user.Username
	}
	title := card.Title
	if title == "" {
		title = "unknown"
	}

	entry := &models.ActivityLog{
		UserID:      userID,
		Username:    username,
		ActionType:  models.ActionCardMovement,
		Description: fmt.Sprintf("%s moved card '%s' from %s to %s", username, title, req.FromColumn, req.ToColumn),
		BoardID:     req.BoardID,
		CardID:      req.CardID,
		FromColumn:  req.FromColumn,
		ToColumn:    req.ToColumn,
		CreatedAt:   s.now(),
	}
	if err := s.stores.Activity.Append(ctx, entry); err != nil {
		s.log.Warn("failed to append activity log", zap.Error(err), zap.String("card_id", req.CardID))
	}
}

// audit never fails the caller.
func (s *Service) audit(ctx context.Context, entry *models.ChatbotLog) {
	if err := s.stores.Audit.Append(ctx, entry); err != nil {
		s.log.Warn("failed to append chatbot log",
			zap.Error(err),
			zap.Uint("user_id", entry.UserID),
			zap.String("type", entry.Kind),
		)
	}
}

// Chat answers a free-form message and records the exchange.
func (s *Service) Chat(ctx context.Context, userID uint, message, userName string) string {
	reply := Reply(message, userName)
	s.audit(ctx, &models.ChatbotLog{
		UserID:              userID,
		Kind:                models.ChatKindGeneral,
		Message:             message,
		Reply:               reply,
		Suggestions:         datatypes.NewJSONType([]string{}),
		ReflectionQuestions: datatypes.NewJSONType([]string{}),
		CreatedAt:           s.now(),
	})
	return reply
}

// History returns one page of a user's chatbot logs, newest first, and the
// total number of logs.
func (s *Service) History(ctx context.Context, userID uint, limit, offset int) ([]models.ChatbotLog, int64, error) {
	logs, err := s.stores.Audit.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list chatbot logs: %w", err)
	}
	total, err := s.stores.Audit.CountByUser(ctx, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count chatbot logs: %w", err)
	}
	return logs, total, nil
}

type CardActivity struct {
	CardID string `json:"card_id"`
	Count  int    `json:"count"`
}

type Stats struct {
	TotalInteractions int            `json:"total_interactions"`
	ResponseTypes     map[string]int `json:"response_types"`
	MovementTypes     map[string]int `json:"movement_types"`
	MostActiveCards   []CardActivity `json:"most_active_cards"`
}

const mostActiveCardsLimit = 5

func (s *Service) Stats(ctx context.Context, userID uint) (Stats, error) {
	logs, err := s.stores.Audit.AllByUser(ctx, userID)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to load chatbot logs: %w", err)
	}
	return BuildStats(logs), nil
}

// BuildStats summarizes chatbot logs. Logs without a response type are
// counted as "unknown"; only forward, backward and same movements are counted.
func BuildStats(logs []models.ChatbotLog) Stats {
	st := Stats{
		TotalInteractions: len(logs),
		ResponseTypes:     map[string]int{},
		MovementTypes: map[string]int{
			string(movement.Forward):  0,
			string(movement.Backward): 0,
			string(movement.Same):     0,
		},
		MostActiveCards: []CardActivity{},
	}

	index := map[string]int{}
	for _, l := range logs {
		rt := l.ResponseType
		if rt == "" {
			rt = "unknown"
		}
		st.ResponseTypes[rt]++

		if _, ok := st.MovementTypes[l.MovementType]; ok {
			st.MovementTypes[l.MovementType]++
		}

		if l.CardID == "" {
			continue
		}
		if i, ok := index[l.CardID]; ok {
			st.MostActiveCards[i].Count++
			continue
		}
		index[l.CardID] = len(st.MostActiveCards)
		st.MostActiveCards = append(st.MostActiveCards, CardActivity{CardID: l.CardID, Count: 1})
	}

	sort.SliceStable(st.MostActiveCards, func(i, j int) bool {
		return st.MostActiveCards[i].Count > st.MostActiveCards[j].Count
	})
	if len(st.MostActiveCards) > mostActiveCardsLimit {
		st.MostActiveCards = st.MostActiveCards[:mostActiveCardsLimit]
	}
	return st
}
