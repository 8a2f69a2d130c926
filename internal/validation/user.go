// Package validation provides input validation utilities
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// PasswordPolicyMessage is the fixed message returned whenever a signup
// password fails the policy.
const PasswordPolicyMessage = "Password must contain at least one capital letter and one number and special character"

var (
	nameRegex  = regexp.MustCompile(`^\w+$`)
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^[0-9]{10}$`)
)

// ValidatePassword checks the signup password policy: at least 8 characters,
// one uppercase letter, one digit and one letter.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return errors.New(PasswordPolicyMessage)
	}

	hasUpper := false
	hasLower := false
	hasDigit := false
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return errors.New(PasswordPolicyMessage)
	}

	return nil
}

// ValidateName checks a first or last name: word characters only, 3-20 chars.
func ValidateName(field, name string) error {
	if len(name) < 3 {
		return fmt.Errorf("%s must be at least 3 characters", field)
	}
	if len(name) > 20 {
		return fmt.Errorf("%s must be less than 20 characters", field)
	}
	if !nameRegex.MatchString(name) {
		return fmt.Errorf("Please enter a valid %s", field)
	}
	return nil
}

// ValidateEmail checks basic email format.
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return errors.New("Please enter a valid email address")
	}
	if len(email) > 254 {
		return errors.New("email must not exceed 254 characters")
	}
	return nil
}

// ValidatePhoneNumber checks the phone number is exactly 10 digits.
func ValidatePhoneNumber(phone string) error {
	if !phoneRegex.MatchString(phone) {
		return fmt.Errorf("%s is not a valid phone number", phone)
	}
	return nil
}

// NormalizeEmail lowercases and trims an email address for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
