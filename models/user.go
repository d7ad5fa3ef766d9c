package models

import "gorm.io/gorm"

// User represents a user in the system
type User struct {
	gorm.Model
	Username     string  `gorm:"unique;not null;size:100" json:"username"`
	PasswordHash string  `gorm:"not null" json:"-"`
	FirstName    string  `gorm:"size:100" json:"first_name"`
	Boards       []Board `gorm:"foreignKey:UserID" json:"-"`
}
