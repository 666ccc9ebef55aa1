package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateEmail checks if an email address is valid
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ValidationError{Field: "email", Message: "email is required"}
	}
	if !emailRegex.MatchString(email) {
		return ValidationError{Field: "email", Message: "invalid email format"}
	}
	return nil
}

// ValidatePassword checks if a password meets requirements
func ValidatePassword(password string) error {
	if password == "" {
		return ValidationError{Field: "password", Message: "password is required"}
	}
	if len(password) < 8 {
		return ValidationError{Field: "password", Message: "password must be at least 8 characters"}
	}
	return nil
}

// ValidateName checks if a name is valid
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ValidationError{Field: "name", Message: "name is required"}
	}
	if len(name) < 2 {
		return ValidationError{Field: "name", Message: "name must be at least 2 characters"}
	}
	return nil
}

// ValidateGender checks that a gender value is one the profile accepts
func ValidateGender(gender string) error {
	switch gender {
	case "male", "female", "unspecified", "":
		return nil
	default:
		return ValidationError{Field: "gender", Message: "gender must be male, female or unspecified"}
	}
}

// ValidateBio bounds the free-text profile bio
func ValidateBio(bio string) error {
	if len(bio) > 1000 {
		return ValidationError{Field: "bio", Message: "bio must be at most 1000 characters"}
	}
	return nil
}

// ValidateMessage bounds the free-text message on a relationship request
func ValidateMessage(message string) error {
	if len(message) > 500 {
		return ValidationError{Field: "message", Message: "message must be at most 500 characters"}
	}
	return nil
}
