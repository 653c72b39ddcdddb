package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last@example.co.uk",
		"user+tag@example.com",
	}
	for _, email := range valid {
		assert.True(t, ValidateEmail(email), "expected %q to be valid", email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@example.com",
		"user@",
		"user@example",
		"user name@example.com",
		"user@@example.com",
		strings.Repeat("a", 250) + "@e.com",
	}
	for _, email := range invalid {
		assert.False(t, ValidateEmail(email), "expected %q to be invalid", email)
	}
}

func TestValidatePassword(t *testing.T) {
	valid := []string{
		"password1",
		"Tr0ub4dor&3",
		"abcdefg9",
	}
	for _, password := range valid {
		assert.True(t, ValidatePassword(password), "expected %q to be valid", password)
	}

	invalid := []string{
		"",
		"short1",
		"onlyletters",
		"12345678",
		"!!!!!!!!",
	}
	for _, password := range invalid {
		assert.False(t, ValidatePassword(password), "expected %q to be invalid", password)
	}
}
