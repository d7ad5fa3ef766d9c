package models

import "time"

type LearningStrategy struct {
	ID          string    `gorm:"primaryKey;size:32" json:"_id"`
	Name        string    `gorm:"column:learning_strat_name;not null;size:200" json:"learning_strat_name"`
	Description string    `gorm:"size:2000" json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
