package repository

import (
	"context"

	"github.com/andrewpaige1/srlboard-api/models"
	"gorm.io/gorm"
)

// ChatbotLogRepository stores chatbot replies. Entries are never updated.
type ChatbotLogRepository struct {
	db *gorm.DB
}

func NewChatbotLogRepository(db *gorm.DB) *ChatbotLogRepository {
	return &ChatbotLogRepository{db: db}
}

func (r *ChatbotLogRepository) Append(ctx context.Context, log *models.ChatbotLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

// ListByUser pages through a user's logs, newest first.
func (r *ChatbotLogRepository) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]models.ChatbotLog, error) {
	logs := []models.ChatbotLog{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&logs).Error
	return logs, err
}

func (r *ChatbotLogRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ChatbotLog{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// AllByUser returns every log of a user in insertion order.
func (r *ChatbotLogRepository) AllByUser(ctx context.Context, userID uint) ([]models.ChatbotLog, error) {
	logs := []models.ChatbotLog{}
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&logs).Error
	return logs, err
}

type ActivityLogRepository struct {
	db *gorm.DB
}

func NewActivityLogRepository(db *gorm.DB) *ActivityLogRepository {
	return &ActivityLogRepository{db: db}
}

func (r *ActivityLogRepository) Append(ctx context.Context, log *models.ActivityLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *ActivityLogRepository) ListByUser(ctx context.Context, userID uint) ([]models.ActivityLog, error) {
	logs := []models.ActivityLog{}
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&logs).Error
	return logs, err
}
