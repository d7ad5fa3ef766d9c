package models

import "time"

const (
	ActionLogin        = "login"
	ActionLogout       = "logout"
	ActionCardMovement = "card_movement"
)

type ActivityLog struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index" json:"user_id"`
	Username    string    `gorm:"size:100" json:"username"`
	ActionType  string    `gorm:"size:32;not null" json:"action_type"`
	Description string    `gorm:"size:1000" json:"description"`
	BoardID     string    `gorm:"size:32" json:"board_id,omitempty"`
	CardID      string    `gorm:"size:100" json:"card_id,omitempty"`
	FromColumn  string    `gorm:"size:32" json:"from_column,omitempty"`
	ToColumn    string    `gorm:"size:32" json:"to_column,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
