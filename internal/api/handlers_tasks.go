package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/milohq/milo/internal/services"
)

func (handler *Handler) GetDailyTasks(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	day, err := parseDayQuery(c.Query("date"), time.Now(), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	handler.ensureDependencies()
	tasks, err := handler.taskService.TasksForDay(user.ID, day, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load tasks")
	}
	return c.JSON(fiber.Map{"tasks": tasks})
}

func (handler *Handler) ToggleDailyTask(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	day, err := parseDayQuery(c.Query("date"), time.Now(), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	handler.ensureDependencies()
	task, err := handler.taskService.ToggleTask(user.ID, day, c.Params("taskKey"), handler.location)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			return apiError(c, fiber.StatusNotFound, "task not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to toggle task")
	}
	return c.JSON(task)
}
