package cli

import (
	"bytes"
	"errors"
	"fmt"
	"net/mail"
	"os"
	"strings"

	"github.com/moodmates/moodmates/internal/db"
	"github.com/moodmates/moodmates/internal/security"
	"golang.org/x/crypto/bcrypt"
)

const temporaryPasswordAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"

// RunResetPasswordCommand resets a user's password directly against the
// database file. There is no email recovery flow, so this is the escape
// hatch for a locked-out account. With prompt set, the operator types the
// new password; otherwise a temporary one is generated and printed.
func RunResetPasswordCommand(dbPath string, email string, prompt bool) error {
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

	users := db.NewUserRepository(database)
	user, err := users.FindByNormalizedEmail(normalizedEmail)
	if errors.Is(err, db.ErrNotFound) {
		return fmt.Errorf("user %s not found", normalizedEmail)
	}
	if err != nil {
		return fmt.Errorf("load user: %w", err)
	}

	var newPassword string
	if prompt {
		newPassword, err = promptNewPassword(os.Stdin)
	} else {
		newPassword, err = generateTemporaryPassword(12)
	}
	if err != nil {
		return err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := users.UpdatePasswordHash(user.ID, string(passwordHash)); err != nil {
		return fmt.Errorf("update user password: %w", err)
	}

	fmt.Println("Password reset successful")
	if !prompt {
		fmt.Printf("Temporary password: %s\n", newPassword)
	}
	return nil
}

func promptNewPassword(stdin *os.File) (string, error) {
	fmt.Print("New password: ")
	first, err := readHiddenLine(stdin)
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	fmt.Print("Repeat password: ")
	second, err := readHiddenLine(stdin)
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	if !bytes.Equal(first, second) {
		return "", errors.New("passwords do not match")
	}
	if err := validatePromptedPassword(string(first)); err != nil {
		return "", err
	}
	return string(first), nil
}

func validatePromptedPassword(password string) error {
	if len(strings.TrimSpace(password)) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	return nil
}

func generateTemporaryPassword(length int) (string, error) {
	if length < 8 {
		length = 8
	}
	return security.RandomString(length, temporaryPasswordAlphabet)
}
