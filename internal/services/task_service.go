package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/milohq/milo/internal/models"
)

var ErrTaskNotFound = errors.New("task not found")

type TaskDayRepository interface {
	ListByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) ([]models.DailyTask, error)
	CreateAll(tasks []models.DailyTask) error
	FindByUserDayAndKey(userID uint, dayStart time.Time, dayEnd time.Time, taskKey string) (models.DailyTask, bool, error)
	Save(task *models.DailyTask) error
	ReplaceForDay(userID uint, dayStart time.Time, dayEnd time.Time, tasks []models.DailyTask) error
}

type TaskUserRepository interface {
	FindByID(userID uint) (models.User, error)
}

type TaskPlanRepository interface {
	LatestByUser(userID uint) (models.WellnessPlan, bool, error)
}

type TaskService struct {
	tasks TaskDayRepository
	users TaskUserRepository
	plans TaskPlanRepository
	now   func() time.Time
}

func NewTaskService(tasks TaskDayRepository, users TaskUserRepository, plans TaskPlanRepository) *TaskService {
	return &TaskService{
		tasks: tasks,
		users: users,
		plans: plans,
		now:   time.Now,
	}
}

// TasksForDay resolves the day's task list. A persisted record wins because
// it carries completion state; otherwise the list is derived from the latest
// wellness plan, and failing that generated from the user's risk tier.
// Whatever the path, mandatory tasks are present in the result.
func (service *TaskService) TasksForDay(userID uint, day time.Time, location *time.Location) ([]models.DailyTask, error) {
	dayStart, dayEnd := DayRange(day, location)

	existing, err := service.tasks.ListByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("load daily tasks: %w", err)
	}
	if len(existing) > 0 {
		withMandatory := EnsureMandatoryTasks(userID, dayStart, existing)
		if appended := withMandatory[len(existing):]; len(appended) > 0 {
			if err := service.tasks.CreateAll(appended); err != nil {
				return nil, fmt.Errorf("backfill mandatory tasks: %w", err)
			}
		}
		return withMandatory, nil
	}

	generated, err := service.generateForDay(userID, dayStart)
	if err != nil {
		return nil, err
	}
	if err := service.tasks.CreateAll(generated); err != nil {
		return nil, fmt.Errorf("persist generated tasks: %w", err)
	}
	return generated, nil
}

func (service *TaskService) generateForDay(userID uint, dayStart time.Time) ([]models.DailyTask, error) {
	plan, found, err := service.plans.LatestByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("load wellness plan: %w", err)
	}
	if found && len(plan.Activities) > 0 {
		return EnsureMandatoryTasks(userID, dayStart, BuildPlanTasks(userID, dayStart, plan.Activities)), nil
	}

	user, err := service.users.FindByID(userID)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	riskLevel := user.RiskLevel
	if !models.IsValidRiskLevel(riskLevel) {
		riskLevel = models.DefaultRiskLevel
	}
	return EnsureMandatoryTasks(userID, dayStart, BuildRiskTasks(userID, dayStart, riskLevel)), nil
}

// ToggleTask flips one task's completion state, stamping or clearing the
// completion time.
func (service *TaskService) ToggleTask(userID uint, day time.Time, taskKey string, location *time.Location) (models.DailyTask, error) {
	dayStart, dayEnd := DayRange(day, location)

	task, found, err := service.tasks.FindByUserDayAndKey(userID, dayStart, dayEnd, taskKey)
	if err != nil {
		return models.DailyTask{}, fmt.Errorf("load task: %w", err)
	}
	if !found {
		return models.DailyTask{}, ErrTaskNotFound
	}

	task.Completed = !task.Completed
	if task.Completed {
		completedAt := service.now()
		task.CompletedAt = &completedAt
	} else {
		task.CompletedAt = nil
	}

	if err := service.tasks.Save(&task); err != nil {
		return models.DailyTask{}, fmt.Errorf("save task: %w", err)
	}
	return task, nil
}

// RegenerateFromPlan replaces the day's list with tasks derived from a fresh
// wellness plan, keeping completion state for surviving keys.
func (service *TaskService) RegenerateFromPlan(userID uint, day time.Time, location *time.Location, activities []string) error {
	dayStart, dayEnd := DayRange(day, location)
	tasks := EnsureMandatoryTasks(userID, dayStart, BuildPlanTasks(userID, dayStart, activities))
	if err := service.tasks.ReplaceForDay(userID, dayStart, dayEnd, tasks); err != nil {
		return fmt.Errorf("replace daily tasks: %w", err)
	}
	return nil
}
