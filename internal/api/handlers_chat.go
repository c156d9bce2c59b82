package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/milohq/milo/internal/services"
)

func (handler *Handler) ChatHistory(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	history, err := handler.chatService.History(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load chat history")
	}
	return c.JSON(fiber.Map{"messages": history})
}

func (handler *Handler) ChatMessage(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := messageInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	aiTurn, err := handler.chatService.SendMessage(c.UserContext(), user.ID, input.Message)
	switch {
	case err == nil:
	case errors.Is(err, services.ErrEmptyMessage):
		return apiError(c, fiber.StatusBadRequest, "message is required")
	case errors.Is(err, services.ErrAssistantUnavailable):
		return apiError(c, fiber.StatusBadGateway, "assistant unavailable")
	default:
		return apiError(c, fiber.StatusInternalServerError, "failed to process message")
	}

	return c.JSON(aiTurn)
}
