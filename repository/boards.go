package repository

import (
	"context"

	"github.com/andrewpaige1/srlboard-api/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type BoardRepository struct {
	db *gorm.DB
}

func NewBoardRepository(db *gorm.DB) *BoardRepository {
	return &BoardRepository{db: db}
}

// FindByUser returns the user's current board, the first one created.
func (r *BoardRepository) FindByUser(ctx context.Context, userID uint) (*models.Board, error) {
	var board models.Board
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Order("id ASC").
		First(&board).Error
	if err != nil {
		return nil, translate(err)
	}
	return &board, nil
}

// FindByID only finds boards owned by userID.
func (r *BoardRepository) FindByID(ctx context.Context, userID uint, boardID string) (*models.Board, error) {
	var board models.Board
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", boardID, userID).
		First(&board).Error
	if err != nil {
		return nil, translate(err)
	}
	return &board, nil
}

func (r *BoardRepository) ListByUser(ctx context.Context, userID uint) ([]models.Board, error) {
	boards := []models.Board{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&boards).Error
	return boards, err
}

func (r *BoardRepository) Create(ctx context.Context, board *models.Board) error {
	if board.ID == "" {
		id, err := newID()
		if err != nil {
			return err
		}
		board.ID = id
	}
	if board.Lists.Data() == nil {
		board.Lists = datatypes.NewJSONType(models.InitialLists())
	}
	return r.db.WithContext(ctx).Create(board).Error
}

// UpdateLists replaces the lists of a board. Concurrent updates are not
// detected, the last write wins.
func (r *BoardRepository) UpdateLists(ctx context.Context, userID uint, boardID string, lists []models.List) (*models.Board, error) {
	if lists == nil {
		lists = []models.List{}
	}
	result := r.db.WithContext(ctx).
		Model(&models.Board{}).
		Where("id = ? AND user_id = ?", boardID, userID).
		Update("lists", datatypes.NewJSONType(lists))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.FindByID(ctx, userID, boardID)
}

// UpdateCard applies edit to one card of a board and saves the lists. The
// rest of the document is written back as loaded. ErrCardNotFound is returned
// when no list holds cardID.
func (r *BoardRepository) UpdateCard(ctx context.Context, userID uint, boardID, cardID string, edit func(*models.Card)) (*models.Board, error) {
	var board models.Board
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND user_id = ?", boardID, userID).First(&board).Error; err != nil {
			return translate(err)
		}

		lists := board.Data()
		found := false
		for i := range lists {
			for j := range lists[i].Cards {
				if lists[i].Cards[j].ID == cardID {
					edit(&lists[i].Cards[j])
					found = true
					break
				}
			}
			if found {
				break
			}
		}
		if !found {
			return ErrCardNotFound
		}

		board.Lists = datatypes.NewJSONType(lists)
		return tx.Model(&board).Update("lists", board.Lists).Error
	})
	if err != nil {
		return nil, err
	}
	return &board, nil
}
