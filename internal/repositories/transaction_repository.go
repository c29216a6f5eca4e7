package repositories

import (
	"time"

	"corepay/internal/models"
)

// TransactionFilter narrows ledger queries. Nil fields match everything;
// both date bounds are inclusive.
type TransactionFilter struct {
	Type  string
	Start *time.Time
	End   *time.Time
}

// TransactionRepository defines the interface for ledger entry persistence.
type TransactionRepository interface {
	Create(tx *models.Transaction) error
	Find(filter TransactionFilter) ([]models.Transaction, error)
}
