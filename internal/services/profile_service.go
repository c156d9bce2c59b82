package services

import (
	"fmt"
	"strings"

	"github.com/milohq/milo/internal/models"
)

type ProfileUserRepository interface {
	FindByID(userID uint) (models.User, error)
	UpdateProfile(userID uint, name string, role string, freeTime string, contactName string, contactPhone string) error
	UpdateRiskLevel(userID uint, riskLevel int) error
	DeleteAccountAndRelatedData(userID uint) error
}

type ProfileService struct {
	users ProfileUserRepository
}

func NewProfileService(users ProfileUserRepository) *ProfileService {
	return &ProfileService{users: users}
}

func (service *ProfileService) FetchProfile(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}

func (service *ProfileService) UpdateProfile(userID uint, input ProfileInput) (models.User, error) {
	if err := ValidateProfileInput(input); err != nil {
		return models.User{}, err
	}

	if err := service.users.UpdateProfile(
		userID,
		strings.TrimSpace(input.Name),
		input.Role,
		input.FreeTime,
		strings.TrimSpace(input.TrustedContactName),
		input.TrustedContactPhone,
	); err != nil {
		return models.User{}, fmt.Errorf("update profile: %w", err)
	}

	return service.users.FindByID(userID)
}

type AssessmentResult struct {
	RiskLevel   int
	Label       string
	Description string
	Tasks       []string
}

// SubmitAssessment scores the questionnaire and persists the resulting tier
// on the user record.
func (service *ProfileService) SubmitAssessment(userID uint, phq9Score int, gad7Score int, safetyRisk bool) (AssessmentResult, error) {
	riskLevel := clampRiskLevel(RiskFromQuestionnaire(phq9Score, gad7Score, safetyRisk))
	if err := service.users.UpdateRiskLevel(userID, riskLevel); err != nil {
		return AssessmentResult{}, fmt.Errorf("persist risk level: %w", err)
	}

	return AssessmentResult{
		RiskLevel:   riskLevel,
		Label:       RiskLabel(riskLevel),
		Description: RiskDescription(riskLevel),
		Tasks:       TasksForRisk(riskLevel),
	}, nil
}

func (service *ProfileService) DeleteAccount(userID uint) error {
	return service.users.DeleteAccountAndRelatedData(userID)
}
