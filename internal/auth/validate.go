package auth

import (
	"regexp"
	"unicode"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail reports whether email has a plausible mailbox shape.
func ValidateEmail(email string) bool {
	if len(email) > 254 {
		return false
	}
	return emailPattern.MatchString(email)
}

// ValidatePassword enforces the password policy: at least 8 characters with
// at least one letter and one digit.
func ValidatePassword(password string) bool {
	if len(password) < 8 {
		return false
	}

	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}
