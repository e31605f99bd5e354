// Package auth issues and validates JWT bearer tokens for the media
// generation endpoints, which spend upstream quota and must not be open
// to anonymous callers.
package auth

import (
	"fmt"
	"os"
	"strings"
)

// minPasswordLength is the minimum accepted API password length.
const minPasswordLength = 12

// minSecretLength is the minimum accepted JWT signing secret length.
// HS256 secrets shorter than the hash output are brute-forceable.
const minSecretLength = 32

// weakPasswordList contains common passwords that are rejected outright.
var weakPasswordList = []string{
	"admin",
	"password",
	"123456",
	"secret",
	"admin123",
	"password123",
	"123456789",
	"qwerty",
	"letmein",
	"welcome",
	"changeme",
	"default",
	"root",
	"test",
}

// ValidateStartupConfig validates the authentication configuration from
// environment variables. It must be called before the server starts so
// a misconfigured deployment fails fast instead of serving with weak or
// missing credentials.
//
// Requirements:
//   - JWT_SECRET must be set and at least 32 characters
//   - API_USER must not be empty
//   - API_PASSWORD must be at least 12 characters and not a known weak
//     password
func ValidateStartupConfig() error {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return fmt.Errorf("auth configuration invalid: JWT_SECRET must not be empty")
	}
	if len(secret) < minSecretLength {
		return fmt.Errorf("auth configuration invalid: JWT_SECRET must be at least %d characters (current length: %d)",
			minSecretLength, len(secret))
	}

	user := os.Getenv("API_USER")
	if user == "" {
		return fmt.Errorf("auth configuration invalid: API_USER must not be empty")
	}

	pass := os.Getenv("API_PASSWORD")
	if pass == "" {
		return fmt.Errorf("auth configuration invalid: API_PASSWORD must not be empty")
	}
	if len(pass) < minPasswordLength {
		return fmt.Errorf("auth configuration invalid: API_PASSWORD must be at least %d characters (current length: %d)",
			minPasswordLength, len(pass))
	}

	lowerPass := strings.ToLower(pass)
	for _, weak := range weakPasswordList {
		if lowerPass == weak || strings.HasPrefix(lowerPass, weak) {
			return fmt.Errorf("auth configuration invalid: API_PASSWORD must not be based on a common weak password")
		}
	}

	return nil
}
