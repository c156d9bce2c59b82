package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/milohq/milo/internal/services"
)

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	return c.JSON(fiber.Map{
		"user":            user,
		"riskLabel":       services.RiskLabel(user.RiskLevel),
		"riskDescription": services.RiskDescription(user.RiskLevel),
		"showSupport":     services.RiskRequiresSupportBanner(user.RiskLevel),
	})
}

func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := profileInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	updated, err := handler.profileService.UpdateProfile(user.ID, services.ProfileInput{
		Name:                input.Name,
		Role:                input.Role,
		FreeTime:            input.FreeTime,
		TrustedContactName:  input.TrustedContactName,
		TrustedContactPhone: input.TrustedContactPhone,
	})
	switch {
	case err == nil:
	case errors.Is(err, services.ErrInvalidName),
		errors.Is(err, services.ErrInvalidRole),
		errors.Is(err, services.ErrInvalidFreeTime),
		errors.Is(err, services.ErrInvalidContactPhone):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	default:
		return apiError(c, fiber.StatusInternalServerError, "failed to update profile")
	}

	return c.JSON(updated)
}

func (handler *Handler) DeleteAccount(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	if err := handler.profileService.DeleteAccount(user.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete account")
	}

	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}
