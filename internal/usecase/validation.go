package usecase

import (
	"strings"
	"unicode/utf8"

	domainErrors "github.com/polkiloo/customerhub/internal/domain/errors"
)

// MinPasswordLength is the shortest accepted password, counted in characters.
const MinPasswordLength = 5

// ValidateRegistration checks sign-up input and returns the normalized name and email.
func ValidateRegistration(name, email, password string) (string, string, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return "", "", domainErrors.ErrMissingField
	}
	if err := ValidatePassword(password); err != nil {
		return "", "", err
	}
	return name, email, nil
}

// ValidateCredentials checks login input and returns the normalized email.
func ValidateCredentials(email, password string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", domainErrors.ErrMissingField
	}
	return email, nil
}

// ValidatePassword rejects passwords shorter than MinPasswordLength characters.
func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return domainErrors.ErrWeakPassword
	}
	return nil
}
