package db

import (
	"github.com/milohq/milo/internal/models"
	"gorm.io/gorm"
)

type SOSRepository struct {
	database *gorm.DB
}

func NewSOSRepository(database *gorm.DB) *SOSRepository {
	return &SOSRepository{database: database}
}

func (repo *SOSRepository) Create(event *models.SOSEvent) error {
	return repo.database.Create(event).Error
}

func (repo *SOSRepository) ListByUser(userID uint) ([]models.SOSEvent, error) {
	events := make([]models.SOSEvent, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}
