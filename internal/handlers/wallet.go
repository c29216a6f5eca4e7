package handlers

import (
	"github.com/gofiber/fiber/v2"

	"corepay/internal/services/card"
	"corepay/internal/services/wallet"
	"corepay/internal/utils"
)

type WalletHandler struct {
	walletService wallet.Service
}

func NewWalletHandler(walletService wallet.Service) *WalletHandler {
	return &WalletHandler{walletService: walletService}
}

func (h *WalletHandler) GetBalance(c *fiber.Ctx) error {
	claims, err := claimsFromContext(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	balance, err := h.walletService.GetBalance(c.Context(), claims.CustomerID)
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Success(c, fiber.Map{"wallet": balance})
}

func (h *WalletHandler) TopUp(c *fiber.Ctx) error {
	claims, err := claimsFromContext(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input struct {
		Amount float64       `json:"amount"`
		Card   *card.Details `json:"card"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}

	// Card-funded top-ups tokenize the card first; the token is the only
	// card artifact we keep in the response.
	var funding *card.Token
	if input.Card != nil {
		funding, err = card.Tokenize(*input.Card)
		if err != nil {
			return utils.BadRequest(c, err.Error())
		}
	}

	balance, err := h.walletService.TopUp(c.Context(), claims.CustomerID, input.Amount)
	if err != nil {
		return utils.DomainError(c, err)
	}

	resp := fiber.Map{
		"message": "top up successful",
		"amount":  input.Amount,
		"wallet":  balance,
	}
	if funding != nil {
		resp["funding"] = funding
	}
	return utils.Success(c, resp)
}

func (h *WalletHandler) Purchase(c *fiber.Ctx) error {
	claims, err := claimsFromContext(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input struct {
		ProductName string  `json:"product_name"`
		Price       float64 `json:"price"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}
	if input.ProductName == "" {
		return utils.BadRequest(c, "product_name is required")
	}

	order, balance, err := h.walletService.Purchase(c.Context(), claims.CustomerID, input.ProductName, input.Price)
	if err != nil {
		return utils.DomainError(c, err)
	}

	return utils.Created(c, fiber.Map{
		"order":  order,
		"wallet": balance,
	})
}

func (h *WalletHandler) ListOrders(c *fiber.Ctx) error {
	claims, err := claimsFromContext(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	orders, err := h.walletService.ListOrders(c.Context(), claims.CustomerID)
	if err != nil {
		return utils.DomainError(c, err)
	}

	return utils.Success(c, fiber.Map{
		"orders": orders,
		"total":  len(orders),
	})
}
