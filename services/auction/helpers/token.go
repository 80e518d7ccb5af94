package helpers

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	model "auction-house/internal/models"
)

// GenerateToken mints a signed session token for an authenticated identity.
// The role claim mirrors whether the identity is the reserved admin account.
func GenerateToken(jwtSecret, username string, ttl time.Duration) (string, error) {
	role := "user"
	if model.IsAdmin(username) {
		role = "admin"
	}

	claims := jwt.MapClaims{
		"username": username,
		"role":     role,
		"exp":      time.Now().Add(ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(jwtSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}
