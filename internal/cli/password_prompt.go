package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

const minimumPasswordLength = 8

func promptNewPassword() (string, error) {
	fmt.Print("New password: ")
	first, err := readPasswordNoEcho(os.Stdin)
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	fmt.Print("Confirm password: ")
	second, err := readPasswordNoEcho(os.Stdin)
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("read password confirmation: %w", err)
	}

	password := strings.TrimSpace(string(first))
	if password != strings.TrimSpace(string(second)) {
		return "", errors.New("passwords do not match")
	}
	if len(password) < minimumPasswordLength {
		return "", fmt.Errorf("password must be at least %d characters", minimumPasswordLength)
	}
	return password, nil
}
