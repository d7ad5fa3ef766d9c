package repository

import (
	"context"
	"time"

	"github.com/andrewpaige1/srlboard-api/models"
	"gorm.io/gorm"
)

type StudySessionRepository struct {
	db *gorm.DB
}

func NewStudySessionRepository(db *gorm.DB) *StudySessionRepository {
	return &StudySessionRepository{db: db}
}

// FindByCard returns the user's sessions for a card, oldest first.
func (r *StudySessionRepository) FindByCard(ctx context.Context, userID uint, cardID string) ([]models.StudySession, error) {
	sessions := []models.StudySession{}
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND card_id = ?", userID, cardID).
		Order("start_time ASC").
		Find(&sessions).Error
	return sessions, err
}

func (r *StudySessionRepository) Start(ctx context.Context, userID uint, cardID string, at time.Time) (*models.StudySession, error) {
	id, err := newID()
	if err != nil {
		return nil, err
	}
	session := &models.StudySession{
		ID:        id,
		UserID:    userID,
		CardID:    cardID,
		StartTime: at.UTC(),
	}
	if err := r.db.WithContext(ctx).Create(session).Error; err != nil {
		return nil, err
	}
	return session, nil
}

func (r *StudySessionRepository) End(ctx context.Context, userID uint, sessionID string, at time.Time) (*models.StudySession, error) {
	var session models.StudySession
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND user_id = ?", sessionID, userID).First(&session).Error; err != nil {
			return translate(err)
		}
		if session.EndTime != nil {
			return ErrSessionEnded
		}
		end := at.UTC()
		session.EndTime = &end
		return tx.Model(&session).Update("end_time", end).Error
	})
	if err != nil {
		return nil, err
	}
	return &session, nil
}
