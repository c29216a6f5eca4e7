// Package utils holds small helpers shared by handlers and services.
package utils

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"corepay/internal/config"
	"corepay/internal/models"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

func jwtSecret() ([]byte, error) {
	secret := config.GetEnv("JWT_SECRET", "")
	if secret == "" {
		return nil, errors.New("JWT_SECRET not configured")
	}
	return []byte(secret), nil
}

// GenerateTokens returns a signed access token and refresh token for the
// given customer claims.
func GenerateTokens(claims *models.CustomerClaims) (accessToken, refreshToken string, err error) {
	secret, err := jwtSecret()
	if err != nil {
		return "", "", err
	}

	now := time.Now()
	sign := func(ttl time.Duration) (string, error) {
		c := models.CustomerClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
				IssuedAt:  jwt.NewNumericDate(now),
				Issuer:    "corepay-api",
				Subject:   strconv.FormatUint(uint64(claims.CustomerID), 10),
			},
			CustomerID: claims.CustomerID,
			Email:      claims.Email,
		}
		return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(secret)
	}

	if accessToken, err = sign(accessTokenTTL); err != nil {
		return "", "", err
	}
	if refreshToken, err = sign(refreshTokenTTL); err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

// ParseToken parses and validates a JWT token string.
func ParseToken(tokenStr string) (*jwt.Token, *models.CustomerClaims, error) {
	secret, err := jwtSecret()
	if err != nil {
		return nil, nil, err
	}

	parsed, err := jwt.ParseWithClaims(tokenStr, &models.CustomerClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return nil, nil, err
	}

	claims, ok := parsed.Claims.(*models.CustomerClaims)
	if !ok || !parsed.Valid {
		return nil, nil, errors.New("invalid token claims")
	}
	return parsed, claims, nil
}
