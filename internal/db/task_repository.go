package db

import (
	"errors"
	"time"

	"github.com/milohq/milo/internal/models"
	"gorm.io/gorm"
)

type TaskRepository struct {
	database *gorm.DB
}

func NewTaskRepository(database *gorm.DB) *TaskRepository {
	return &TaskRepository{database: database}
}

func (repo *TaskRepository) ListByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) ([]models.DailyTask, error) {
	tasks := make([]models.DailyTask, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Order("id ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (repo *TaskRepository) CreateAll(tasks []models.DailyTask) error {
	if len(tasks) == 0 {
		return nil
	}
	return repo.database.Create(&tasks).Error
}

func (repo *TaskRepository) FindByUserDayAndKey(userID uint, dayStart time.Time, dayEnd time.Time, taskKey string) (models.DailyTask, bool, error) {
	var task models.DailyTask
	err := repo.database.
		Where("user_id = ? AND date >= ? AND date < ? AND task_key = ?", userID, dayStart, dayEnd, taskKey).
		First(&task).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.DailyTask{}, false, nil
	}
	if err != nil {
		return models.DailyTask{}, false, err
	}
	return task, true, nil
}

func (repo *TaskRepository) Save(task *models.DailyTask) error {
	return repo.database.Save(task).Error
}

// ReplaceForDay swaps the whole task list for one calendar day in a single
// transaction, preserving completion state for keys that survive the swap.
func (repo *TaskRepository) ReplaceForDay(userID uint, dayStart time.Time, dayEnd time.Time, tasks []models.DailyTask) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		existing := make([]models.DailyTask, 0)
		if err := tx.
			Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
			Find(&existing).Error; err != nil {
			return err
		}

		completedByKey := make(map[string]models.DailyTask, len(existing))
		for _, task := range existing {
			if task.Completed {
				completedByKey[task.TaskKey] = task
			}
		}

		if err := tx.
			Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
			Delete(&models.DailyTask{}).Error; err != nil {
			return err
		}

		for index := range tasks {
			if previous, wasCompleted := completedByKey[tasks[index].TaskKey]; wasCompleted {
				tasks[index].Completed = true
				tasks[index].CompletedAt = previous.CompletedAt
			}
		}

		if len(tasks) == 0 {
			return nil
		}
		return tx.Create(&tasks).Error
	})
}
