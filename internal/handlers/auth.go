// Package handlers maps HTTP requests onto the core services. Handlers only
// parse input, call one service operation, and render the result; every
// business rule lives below this layer.
package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"corepay/internal/models"
	"corepay/internal/repositories"
	"corepay/internal/services/auth"
	"corepay/internal/services/customer"
	"corepay/internal/utils"
)

type AuthHandler struct {
	authService     auth.Service
	customerService customer.Service
}

func NewAuthHandler(authService auth.Service, customerService customer.Service) *AuthHandler {
	return &AuthHandler{authService: authService, customerService: customerService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input models.CreateCustomerInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}

	created, err := h.customerService.Create(&input)
	if err != nil {
		if errors.Is(err, repositories.ErrEmailTaken) {
			return utils.Error(c, fiber.StatusConflict, "email already taken")
		}
		return utils.DomainError(c, err)
	}

	return utils.Created(c, created)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}

	cust, access, refresh, err := h.authService.Login(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return utils.Unauthorized(c, "invalid credentials")
		}
		return utils.InternalError(c, "login failed")
	}

	return utils.Success(c, fiber.Map{
		"customer":      cust,
		"access_token":  access,
		"refresh_token": refresh,
	})
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var input struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}

	access, refresh, err := h.authService.RefreshTokens(input.RefreshToken)
	if err != nil {
		return utils.Unauthorized(c, "invalid refresh token")
	}

	return utils.Success(c, fiber.Map{
		"access_token":  access,
		"refresh_token": refresh,
	})
}
