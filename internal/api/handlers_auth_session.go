package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/milohq/milo/internal/models"
	"golang.org/x/crypto/bcrypt"
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	input := credentialsInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	credentials, err := normalizeCredentials(input)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if err := validatePasswordStrength(credentials.Password); err != nil {
		return apiError(c, fiber.StatusBadRequest, "weak password")
	}

	handler.ensureDependencies()
	exists, err := handler.authService.RegistrationEmailExists(credentials.Email)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create account")
	}
	if exists {
		return apiError(c, fiber.StatusConflict, "email already exists")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(credentials.Password), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to secure password")
	}

	user := models.User{
		Email:        credentials.Email,
		PasswordHash: string(passwordHash),
		RiskLevel:    models.DefaultRiskLevel,
		CreatedAt:    time.Now().In(handler.location),
	}
	if err := handler.authService.CreateUser(&user); err != nil {
		return apiError(c, fiber.StatusConflict, "email already exists")
	}

	if err := handler.setAuthCookie(c, &user, true); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	input := credentialsInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	credentials, err := normalizeCredentials(input)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	user, err := handler.authService.FindByNormalizedEmail(credentials.Email)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credentials.Password)); err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	if user.MustChangePassword {
		return apiError(c, fiber.StatusForbidden, "password change required")
	}

	if err := handler.setAuthCookie(c, &user, credentials.RememberMe); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.JSON(user)
}

// ChangePassword completes the reset flow: the caller proves ownership with
// the current (typically temporary) password, the must-change flag is
// cleared, and a session is issued. Reachable without a session because a
// flagged account cannot log in.
func (handler *Handler) ChangePassword(c *fiber.Ctx) error {
	input := changePasswordInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.CurrentPassword == "" {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	user, err := handler.authService.FindByNormalizedEmail(email)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.CurrentPassword)); err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	if err := validatePasswordStrength(input.NewPassword); err != nil {
		return apiError(c, fiber.StatusBadRequest, "weak password")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to secure password")
	}

	user.PasswordHash = string(passwordHash)
	user.MustChangePassword = false
	if err := handler.authService.SaveUser(&user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update password")
	}

	if err := handler.setAuthCookie(c, &user, false); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.JSON(user)
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}
