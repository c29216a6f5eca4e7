// Package middleware provides HTTP middleware for the fiber app.
package middleware

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"corepay/internal/services/auth"
	"corepay/internal/utils"
)

// AuthMiddleware validates the bearer token and loads the customer claims
// into the request context.
type AuthMiddleware struct {
	authService auth.Service
}

func NewAuthMiddleware(authService auth.Service) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// Handler checks for a Bearer token, validates signature and expiry, and
// rejects tokens whose customer no longer exists.
func (m *AuthMiddleware) Handler(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return utils.Unauthorized(c, "missing authorization header")
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return utils.Unauthorized(c, "invalid authorization format")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	_, claims, err := utils.ParseToken(tokenString)
	if err != nil {
		log.Printf("token validation error: %v", err)
		return utils.Unauthorized(c, "invalid token")
	}

	if _, err := m.authService.GetCustomerByID(claims.CustomerID); err != nil {
		log.Printf("customer %d from token not found", claims.CustomerID)
		return utils.Unauthorized(c, "invalid token")
	}

	c.Locals("claims", claims)
	c.Locals("customerID", claims.CustomerID)
	return c.Next()
}
