package api

import "github.com/gofiber/fiber/v2"

const (
	maxPHQ9Score = 27
	maxGAD7Score = 21
)

func (handler *Handler) SubmitAssessment(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := assessmentInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if input.PHQ9Score < 0 || input.PHQ9Score > maxPHQ9Score {
		return apiError(c, fiber.StatusBadRequest, "invalid phq9 score")
	}
	if input.GAD7Score < 0 || input.GAD7Score > maxGAD7Score {
		return apiError(c, fiber.StatusBadRequest, "invalid gad7 score")
	}

	handler.ensureDependencies()
	result, err := handler.profileService.SubmitAssessment(user.ID, input.PHQ9Score, input.GAD7Score, input.SafetyRisk)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save assessment")
	}

	return c.JSON(fiber.Map{
		"riskLevel":   result.RiskLevel,
		"label":       result.Label,
		"description": result.Description,
		"tasks":       result.Tasks,
	})
}
