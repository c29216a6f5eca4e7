package wallet

import (
	"context"

	"corepay/internal/models"
)

// Service defines the wallet ledger operations exposed to the API layer.
type Service interface {
	TopUp(ctx context.Context, customerID uint, amount float64) (float64, error)
	Purchase(ctx context.Context, customerID uint, productName string, grossPrice float64) (*models.Order, float64, error)
	ListOrders(ctx context.Context, customerID uint) ([]models.Order, error)
	GetBalance(ctx context.Context, customerID uint) (float64, error)
}
