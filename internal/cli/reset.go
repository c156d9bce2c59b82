package cli

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/milohq/milo/internal/db"
	"github.com/milohq/milo/internal/models"
	"github.com/milohq/milo/internal/security"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RunResetPasswordCommand resets a user's password from the terminal. In
// interactive mode the operator types the new password (no echo); otherwise a
// temporary password is generated and the user is forced to change it on
// next login.
func RunResetPasswordCommand(dbPath string, email string, interactive bool) error {
	normalizedEmail := strings.ToLower(strings.TrimSpace(email))
	if normalizedEmail == "" {
		return errors.New("email is required")
	}
	if _, err := mail.ParseAddress(normalizedEmail); err != nil {
		return fmt.Errorf("invalid email address: %w", err)
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	var user models.User
	if err := database.Where("email = ?", normalizedEmail).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("user %s not found", normalizedEmail)
		}
		return fmt.Errorf("load user: %w", err)
	}

	var newPassword string
	if interactive {
		newPassword, err = promptNewPassword()
		if err != nil {
			return err
		}
	} else {
		newPassword, err = generateTemporaryPassword(12)
		if err != nil {
			return fmt.Errorf("generate temporary password: %w", err)
		}
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user.PasswordHash = string(passwordHash)
	user.MustChangePassword = !interactive
	if err := database.Save(&user).Error; err != nil {
		return fmt.Errorf("update user password: %w", err)
	}

	fmt.Println("✅ Password reset successful")
	if interactive {
		fmt.Println("The new password is active immediately.")
	} else {
		fmt.Printf("Temporary password: %s\n", newPassword)
		fmt.Println("User must change password on next login.")
	}

	return nil
}

func generateTemporaryPassword(length int) (string, error) {
	if length < 8 {
		length = 8
	}

	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"
	return security.RandomString(length, alphabet)
}
