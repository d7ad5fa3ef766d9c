package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	ChatKindCardMovement = "card_movement"
	ChatKindGeneral      = "general_chat"
)

// ContextSummary is the condensed analysis attached to every chatbot reply.
type ContextSummary struct {
	CardTitle        string  `json:"card_title"`
	CardDifficulty   string  `json:"card_difficulty"`
	CardPriority     string  `json:"card_priority"`
	MovementType     string  `json:"movement_type"`
	Phase            string  `json:"phase"`
	IsMilestone      bool    `json:"is_milestone"`
	StudyPattern     string  `json:"study_pattern"`
	TotalTimeMinutes float64 `json:"total_time_minutes"`
	MovementPattern  string  `json:"movement_pattern"`
	Complexity       string  `json:"complexity"`
}

// ChatbotLog is the write-only audit trail of chatbot replies.
type ChatbotLog struct {
	ID                  uint                               `gorm:"primaryKey" json:"id"`
	UserID              uint                               `gorm:"not null;index" json:"user_id"`
	Kind                string                             `gorm:"size:32;not null;default:card_movement" json:"type"`
	CardID              string                             `gorm:"size:100;index" json:"card_id,omitempty"`
	FromColumn          string                             `gorm:"size:32" json:"from_column,omitempty"`
	ToColumn            string                             `gorm:"size:32" json:"to_column,omitempty"`
	ResponseType        string                             `gorm:"size:64" json:"response_type,omitempty"`
	Message             string                             `json:"message"`
	Reply               string                             `json:"reply,omitempty"`
	Suggestions         datatypes.JSONType[[]string]       `json:"suggestions"`
	ReflectionQuestions datatypes.JSONType[[]string]       `json:"reflection_questions"`
	ContextSummary      datatypes.JSONType[ContextSummary] `json:"context_summary"`
	MovementType        string                             `gorm:"size:32" json:"movement_type,omitempty"`
	Phase               string                             `gorm:"size:64" json:"phase,omitempty"`
	IsMilestone         bool                               `json:"is_milestone"`
	CreatedAt           time.Time                          `gorm:"index" json:"created_at"`
}
