package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/milohq/milo/internal/services"
)

func (handler *Handler) GetWellnessPlan(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	plan, found, err := handler.wellnessService.LatestPlan(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load wellness plan")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "no wellness plan yet")
	}
	return c.JSON(plan)
}

func (handler *Handler) AnalyzeWellness(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	plan, err := handler.wellnessService.Analyze(c.UserContext(), user.ID, handler.location)
	switch {
	case err == nil:
	case errors.Is(err, services.ErrAssistantUnavailable):
		return apiError(c, fiber.StatusBadGateway, "assistant unavailable")
	case errors.Is(err, services.ErrAnalysisUnparseable):
		return apiError(c, fiber.StatusBadGateway, "analysis unparseable")
	default:
		return apiError(c, fiber.StatusInternalServerError, "failed to run analysis")
	}

	return c.JSON(plan)
}
