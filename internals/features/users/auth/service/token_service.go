package service

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"chwc_backend/internals/configs"
)

const accessTTL = 24 * time.Hour

type AccessClaims struct {
	Identifier string `json:"identifier"`
	UserType   string `json:"user_type"`
	RoleName   string `json:"role_name"`
	jwt.RegisteredClaims
}

// MintAccessToken signs a 24h access token for a successful login.
func MintAccessToken(identifier, userType, roleName string) (string, error) {
	secret := configs.JWTSecret
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET is not set")
	}

	now := time.Now().UTC()
	claims := AccessClaims{
		Identifier: identifier,
		UserType:   userType,
		RoleName:   roleName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identifier,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(accessTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
