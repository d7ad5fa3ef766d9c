package repository

import (
	"context"

	"github.com/andrewpaige1/srlboard-api/models"
	"gorm.io/gorm"
)

type StrategyRepository struct {
	db *gorm.DB
}

func NewStrategyRepository(db *gorm.DB) *StrategyRepository {
	return &StrategyRepository{db: db}
}

func (r *StrategyRepository) FindByID(ctx context.Context, id string) (*models.LearningStrategy, error) {
	var strategy models.LearningStrategy
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&strategy).Error; err != nil {
		return nil, translate(err)
	}
	return &strategy, nil
}

func (r *StrategyRepository) List(ctx context.Context) ([]models.LearningStrategy, error) {
	strategies := []models.LearningStrategy{}
	err := r.db.WithContext(ctx).Order("learning_strat_name ASC").Find(&strategies).Error
	return strategies, err
}

func (r *StrategyRepository) Create(ctx context.Context, strategy *models.LearningStrategy) error {
	if strategy.ID == "" {
		id, err := newID()
		if err != nil {
			return err
		}
		strategy.ID = id
	}
	return r.db.WithContext(ctx).Create(strategy).Error
}
