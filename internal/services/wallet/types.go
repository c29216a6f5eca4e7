package wallet

import (
	"context"
	"time"

	"corepay/internal/models"
)

// Config holds configuration for wallet operations.
type Config struct {
	ProcessingTimeout time.Duration
	CacheTTL          time.Duration
}

// CacheOperator is the caching surface the wallet service uses for balance
// reads. repositories/cache.CacheService satisfies it.
type CacheOperator interface {
	GetCustomer(ctx context.Context, id uint) (*models.Customer, error)
	CacheCustomer(ctx context.Context, customer *models.Customer) error
	InvalidateCustomer(ctx context.Context, id uint) error
}

// MetricsCollector receives wallet operation metrics.
type MetricsCollector interface {
	RecordOperationDuration(operation string, duration time.Duration)
	RecordTransaction(operation string, amount float64)
	RecordBalanceChange(customerID uint, oldBalance, newBalance float64)
	RecordError(operation, errType string)
}
