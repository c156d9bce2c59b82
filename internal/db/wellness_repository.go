package db

import (
	"errors"

	"github.com/milohq/milo/internal/models"
	"gorm.io/gorm"
)

type WellnessRepository struct {
	database *gorm.DB
}

func NewWellnessRepository(database *gorm.DB) *WellnessRepository {
	return &WellnessRepository{database: database}
}

func (repo *WellnessRepository) Create(plan *models.WellnessPlan) error {
	return repo.database.Create(plan).Error
}

func (repo *WellnessRepository) LatestByUser(userID uint) (models.WellnessPlan, bool, error) {
	var plan models.WellnessPlan
	err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		First(&plan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.WellnessPlan{}, false, nil
	}
	if err != nil {
		return models.WellnessPlan{}, false, err
	}
	return plan, true, nil
}
