package models

import "time"

// StudySession is a timed interval of work on a card. EndTime stays nil while
// the session is running.
type StudySession struct {
	ID        string     `gorm:"primaryKey;size:32" json:"_id"`
	UserID    uint       `gorm:"not null;index" json:"user_id"`
	CardID    string     `gorm:"not null;index;size:100" json:"card_id"`
	StartTime time.Time  `gorm:"not null" json:"start_time"`
	EndTime   *time.Time `gorm:"default:null" json:"end_time"`
}

// Duration is only known for finished sessions.
func (s StudySession) Duration() (time.Duration, bool) {
	if s.EndTime == nil || s.StartTime.IsZero() {
		return 0, false
	}
	return s.EndTime.Sub(s.StartTime), true
}
