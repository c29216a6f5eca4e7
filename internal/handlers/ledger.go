package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"corepay/internal/services/ledger"
	"corepay/internal/utils"
)

type LedgerHandler struct {
	ledgerService ledger.Service
}

func NewLedgerHandler(ledgerService ledger.Service) *LedgerHandler {
	return &LedgerHandler{ledgerService: ledgerService}
}

func (h *LedgerHandler) RecordTransaction(c *fiber.Ctx) error {
	var input struct {
		Name   string  `json:"name"`
		Type   string  `json:"type"`
		Amount float64 `json:"amount"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}
	if input.Name == "" {
		return utils.BadRequest(c, "name is required")
	}

	tx, err := h.ledgerService.Record(c.Context(), input.Name, input.Type, input.Amount)
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Created(c, tx)
}

func (h *LedgerHandler) ListTransactions(c *fiber.Ctx) error {
	var filter ledger.Filter
	filter.Type = c.Query("type")

	if raw := c.Query("start"); raw != "" {
		start, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return utils.BadRequest(c, "start must be RFC3339")
		}
		filter.Start = &start
	}
	if raw := c.Query("end"); raw != "" {
		end, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return utils.BadRequest(c, "end must be RFC3339")
		}
		filter.End = &end
	}

	result, err := h.ledgerService.Filter(c.Context(), filter)
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Success(c, result)
}

func (h *LedgerHandler) Dashboard(c *fiber.Ctx) error {
	year := 0
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return utils.BadRequest(c, "year must be a positive integer")
		}
		year = parsed
	}

	dash, err := h.ledgerService.YearlyDashboard(c.Context(), year)
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Success(c, dash)
}
