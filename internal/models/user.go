package models

import "time"

const (
	RoleStudent      = "student"
	RoleProfessional = "professional"
)

const (
	MinRiskLevel = 1
	MaxRiskLevel = 5

	// DefaultRiskLevel is assumed for users who have not completed an
	// assessment yet, matching the dashboard's fallback tier.
	DefaultRiskLevel = 2
)

type User struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	Email               string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash        string    `gorm:"not null" json:"-"`
	Name                string    `gorm:"not null;default:''" json:"name"`
	Role                string    `gorm:"not null;default:''" json:"role"`
	FreeTime            string    `gorm:"not null;default:''" json:"freeTime"`
	RiskLevel           int       `gorm:"not null;default:2" json:"riskLevel"`
	OnboardingComplete  bool      `gorm:"not null;default:false" json:"onboardingComplete"`
	TrustedContactName  string    `gorm:"not null;default:''" json:"trustedContactName"`
	TrustedContactPhone string    `gorm:"not null;default:''" json:"trustedContactPhone"`
	MustChangePassword  bool      `gorm:"not null;default:false" json:"-"`
	CreatedAt           time.Time `gorm:"not null" json:"createdAt"`
}

func IsValidRole(role string) bool {
	return role == RoleStudent || role == RoleProfessional
}

func IsValidRiskLevel(level int) bool {
	return level >= MinRiskLevel && level <= MaxRiskLevel
}
