package db

import (
	"github.com/milohq/milo/internal/models"
	"gorm.io/gorm"
)

type ConversationRepository struct {
	database *gorm.DB
}

func NewConversationRepository(database *gorm.DB) *ConversationRepository {
	return &ConversationRepository{database: database}
}

func (repo *ConversationRepository) ListByUserAndKind(userID uint, kind string) ([]models.ConversationTurn, error) {
	turns := make([]models.ConversationTurn, 0)
	if err := repo.database.
		Where("user_id = ? AND kind = ?", userID, kind).
		Order("created_at ASC, id ASC").
		Find(&turns).Error; err != nil {
		return nil, err
	}
	return turns, nil
}

func (repo *ConversationRepository) CountByUserAndKind(userID uint, kind string) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.ConversationTurn{}).
		Where("user_id = ? AND kind = ?", userID, kind).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *ConversationRepository) Create(turn *models.ConversationTurn) error {
	return repo.database.Create(turn).Error
}

// AppendExchange persists a user/AI turn pair together with any user-record
// updates in a single transaction. Either all writes land or none do.
func (repo *ConversationRepository) AppendExchange(userTurn *models.ConversationTurn, aiTurn *models.ConversationTurn, userUpdates map[string]any) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(userTurn).Error; err != nil {
			return err
		}
		if err := tx.Create(aiTurn).Error; err != nil {
			return err
		}
		if len(userUpdates) == 0 {
			return nil
		}
		return tx.Model(&models.User{}).
			Where("id = ?", userTurn.UserID).
			Updates(userUpdates).Error
	})
}
