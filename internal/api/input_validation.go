package api

import (
	"errors"
	"net/mail"
	"strings"
	"time"
)

func normalizeCredentials(credentials credentialsInput) (credentialsInput, error) {
	credentials.Email = strings.ToLower(strings.TrimSpace(credentials.Email))
	credentials.Password = strings.TrimSpace(credentials.Password)

	if credentials.Email == "" || credentials.Password == "" {
		return credentialsInput{}, errors.New("missing credentials")
	}
	if _, err := mail.ParseAddress(credentials.Email); err != nil {
		return credentialsInput{}, errors.New("invalid email")
	}

	return credentials, nil
}

func validatePasswordStrength(password string) error {
	if !passwordLengthRegex.MatchString(password) {
		return errors.New("password too short")
	}

	if passwordUpperRegex.MatchString(password) &&
		passwordLowerRegex.MatchString(password) &&
		passwordDigitRegex.MatchString(password) {
		return nil
	}
	return errors.New("weak password")
}

// parseDayQuery resolves an optional ?date=YYYY-MM-DD query, defaulting to
// the current day in the handler's location.
func parseDayQuery(raw string, now time.Time, location *time.Location) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return now, nil
	}
	parsed, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(raw), location)
	if err != nil {
		return time.Time{}, errors.New("invalid date")
	}
	return parsed, nil
}
