package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/milohq/milo/internal/services"
)

func (handler *Handler) TriggerSOS(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	event, err := handler.sosService.Trigger(user.ID)
	if err != nil {
		if errors.Is(err, services.ErrNoTrustedContact) {
			return apiError(c, fiber.StatusBadRequest, "no trusted contact on file")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to record sos")
	}
	return c.Status(fiber.StatusCreated).JSON(event)
}

func (handler *Handler) SOSHistory(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	events, err := handler.sosService.History(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load sos history")
	}
	return c.JSON(fiber.Map{"events": events})
}
