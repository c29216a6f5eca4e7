package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	domainerr "corepay/internal/errors"
)

func Success(c *fiber.Ctx, data interface{}) error {
	return c.JSON(data)
}

func Created(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

func Unauthorized(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusUnauthorized, message)
}

func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusNotFound, message)
}

func InternalError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message)
}

// statusByCode maps each domain error code to its stable HTTP status.
var statusByCode = map[string]int{
	domainerr.ErrCustomerNotFound.Code:    fiber.StatusNotFound,
	domainerr.ErrInvalidAmount.Code:       fiber.StatusBadRequest,
	domainerr.ErrInvalidKind.Code:         fiber.StatusBadRequest,
	domainerr.ErrInvalidPrice.Code:        fiber.StatusBadRequest,
	domainerr.ErrInvalidDiscountRate.Code: fiber.StatusBadRequest,
	domainerr.ErrInsufficientFunds.Code:   fiber.StatusUnprocessableEntity,
	domainerr.ErrConflict.Code:            fiber.StatusConflict,
	domainerr.ErrStorageUnavailable.Code:  fiber.StatusServiceUnavailable,
}

// DomainError renders a business or storage error with its stable status
// code, falling back to 500 for anything unrecognized.
func DomainError(c *fiber.Ctx, err error) error {
	var de *domainerr.DomainError
	if errors.As(err, &de) {
		status, ok := statusByCode[de.Code]
		if !ok {
			status = fiber.StatusInternalServerError
		}
		return c.Status(status).JSON(fiber.Map{
			"error": de.Message,
			"code":  de.Code,
			"field": de.Field,
		})
	}
	return InternalError(c, err.Error())
}
