package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/milohq/milo/internal/services"
)

func (handler *Handler) OnboardingHistory(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	history, err := handler.onboardingService.History(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load onboarding history")
	}
	return c.JSON(fiber.Map{"messages": history})
}

func (handler *Handler) OnboardingMessage(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := messageInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	reply, err := handler.onboardingService.SubmitMessage(c.UserContext(), user.ID, input.Message)
	switch {
	case err == nil:
	case errors.Is(err, services.ErrEmptyMessage):
		return apiError(c, fiber.StatusBadRequest, "message is required")
	case errors.Is(err, services.ErrOnboardingComplete):
		return apiError(c, fiber.StatusConflict, "onboarding already complete")
	case errors.Is(err, services.ErrAssistantUnavailable):
		return apiError(c, fiber.StatusBadGateway, "assistant unavailable")
	default:
		return apiError(c, fiber.StatusInternalServerError, "failed to process message")
	}

	return c.JSON(fiber.Map{
		"question":   reply.Question,
		"isComplete": reply.IsComplete,
	})
}
