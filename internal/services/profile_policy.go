package services

import (
	"errors"
	"regexp"
	"strings"

	"github.com/milohq/milo/internal/models"
)

var (
	ErrInvalidName         = errors.New("name must contain only letters and spaces")
	ErrInvalidRole         = errors.New("role must be student or professional")
	ErrInvalidFreeTime     = errors.New("free time must be a valid HH:MM-HH:MM range")
	ErrInvalidContactPhone = errors.New("phone number must contain only digits")
)

var (
	namePattern     = regexp.MustCompile(`^[a-zA-Z ]+$`)
	phonePattern    = regexp.MustCompile(`^\d+$`)
	freeTimePattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d-([01]\d|2[0-3]):[0-5]\d$`)
)

type ProfileInput struct {
	Name                string
	Role                string
	FreeTime            string
	TrustedContactName  string
	TrustedContactPhone string
}

// ValidateProfileInput applies the same field rules the onboarding form has
// always enforced. Empty optional fields pass.
func ValidateProfileInput(input ProfileInput) error {
	name := strings.TrimSpace(input.Name)
	if name == "" || !namePattern.MatchString(name) {
		return ErrInvalidName
	}
	if !models.IsValidRole(input.Role) {
		return ErrInvalidRole
	}
	if input.FreeTime != "" && !isValidFreeTimeRange(input.FreeTime) {
		return ErrInvalidFreeTime
	}
	if contactName := strings.TrimSpace(input.TrustedContactName); contactName != "" && !namePattern.MatchString(contactName) {
		return ErrInvalidName
	}
	if input.TrustedContactPhone != "" && !phonePattern.MatchString(input.TrustedContactPhone) {
		return ErrInvalidContactPhone
	}
	return nil
}

func isValidFreeTimeRange(value string) bool {
	if !freeTimePattern.MatchString(value) {
		return false
	}
	parts := strings.SplitN(value, "-", 2)
	// HH:MM strings compare correctly lexicographically.
	return parts[0] < parts[1]
}
