package db

import (
	"github.com/milohq/milo/internal/models"
	"gorm.io/gorm"
)

type JournalRepository struct {
	database *gorm.DB
}

func NewJournalRepository(database *gorm.DB) *JournalRepository {
	return &JournalRepository{database: database}
}

func (repo *JournalRepository) Create(entry *models.JournalEntry) error {
	return repo.database.Create(entry).Error
}

func (repo *JournalRepository) FindByID(entryID string) (models.JournalEntry, error) {
	var entry models.JournalEntry
	if err := repo.database.First(&entry, "id = ?", entryID).Error; err != nil {
		return models.JournalEntry{}, err
	}
	return entry, nil
}

func (repo *JournalRepository) ListByUser(userID uint, limit int) ([]models.JournalEntry, error) {
	entries := make([]models.JournalEntry, 0)
	query := repo.database.Where("user_id = ?", userID).Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *JournalRepository) DeleteByIDAndUser(entryID string, userID uint) error {
	return repo.database.Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&models.JournalEntry{}).Error
}

// SaveAnalysis records the sentiment score on the entry and the derived risk
// level on the owning user atomically.
func (repo *JournalRepository) SaveAnalysis(entryID string, userID uint, score float64, riskLevel int) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.JournalEntry{}).
			Where("id = ? AND user_id = ?", entryID, userID).
			Update("sentiment_score", score).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).
			Where("id = ?", userID).
			Update("risk_level", riskLevel).Error
	})
}
