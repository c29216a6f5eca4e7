package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"corepay/internal/models"
	"corepay/internal/services/customer"
	"corepay/internal/utils"
)

type CustomerHandler struct {
	customerService customer.Service
}

func NewCustomerHandler(customerService customer.Service) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

func claimsFromContext(c *fiber.Ctx) (*models.CustomerClaims, error) {
	claims, ok := c.Locals("claims").(*models.CustomerClaims)
	if !ok || claims == nil {
		return nil, fiber.ErrUnauthorized
	}
	return claims, nil
}

func (h *CustomerHandler) GetCustomer(c *fiber.Ctx) error {
	claims, err := claimsFromContext(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "invalid customer id")
	}
	// Customers can only read their own profile.
	if uint(id) != claims.CustomerID {
		return utils.Error(c, fiber.StatusForbidden, "access denied")
	}

	cust, err := h.customerService.GetByID(uint(id))
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Success(c, cust)
}
