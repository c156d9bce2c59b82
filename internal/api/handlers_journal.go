package api

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/milohq/milo/internal/services"
)

const defaultJournalPageSize = 50

func (handler *Handler) CreateJournalEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := journalEntryInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	entry, err := handler.journalService.CreateEntry(user.ID, input.Content, input.Mood)
	switch {
	case err == nil:
	case errors.Is(err, services.ErrJournalContentRequired):
		return apiError(c, fiber.StatusBadRequest, "content is required")
	case errors.Is(err, services.ErrInvalidMood):
		return apiError(c, fiber.StatusBadRequest, "invalid mood")
	default:
		return apiError(c, fiber.StatusInternalServerError, "failed to create entry")
	}

	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (handler *Handler) ListJournalEntries(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	limit := defaultJournalPageSize
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return apiError(c, fiber.StatusBadRequest, "invalid limit")
		}
		limit = parsed
	}

	handler.ensureDependencies()
	entries, err := handler.journalService.ListEntries(user.ID, limit)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load entries")
	}
	return c.JSON(fiber.Map{"entries": entries})
}

func (handler *Handler) DeleteJournalEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	if err := handler.journalService.DeleteEntry(user.ID, c.Params("id")); err != nil {
		if errors.Is(err, services.ErrJournalEntryNotFound) {
			return apiError(c, fiber.StatusNotFound, "entry not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to delete entry")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) AnalyzeJournalEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	analysis, err := handler.journalService.AnalyzeEntry(c.UserContext(), user.ID, c.Params("id"))
	switch {
	case err == nil:
	case errors.Is(err, services.ErrJournalEntryNotFound):
		return apiError(c, fiber.StatusNotFound, "entry not found")
	case errors.Is(err, services.ErrSentimentUnavailable):
		return apiError(c, fiber.StatusBadGateway, "sentiment analysis unavailable")
	default:
		return apiError(c, fiber.StatusInternalServerError, "failed to analyze entry")
	}

	return c.JSON(fiber.Map{
		"entry":     analysis.Entry,
		"score":     analysis.Score,
		"riskLevel": analysis.RiskLevel,
	})
}
