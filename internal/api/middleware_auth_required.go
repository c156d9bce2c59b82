package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	user, err := handler.authenticateRequest(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	c.Locals(contextUserKey, user)
	if requiresOnboarding(user) && !isOnboardingPath(c.Path()) {
		if c.Path() == "/api/auth/logout" {
			return c.Next()
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "onboarding required"})
	}

	return c.Next()
}

func isOnboardingPath(path string) bool {
	cleanPath := strings.TrimSpace(path)
	return cleanPath == "/api/onboarding" || strings.HasPrefix(cleanPath, "/api/onboarding/")
}
