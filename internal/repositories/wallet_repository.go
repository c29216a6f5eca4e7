package repositories

import (
	"errors"

	"corepay/internal/models"
)

var (
	ErrEmailTaken        = errors.New("email already taken")
	ErrBalanceConflict   = errors.New("balance changed concurrently")
	ErrDatabaseOperation = errors.New("database operation failed")
)

// WalletRepository defines the persistence surface the wallet ledger needs:
// customer reads (plain and row-locked), balance writes, and order storage.
// ExecuteInTransaction runs fn against a repository bound to a single database
// transaction; any error rolls the whole unit back.
type WalletRepository interface {
	GetCustomerByID(id uint) (*models.Customer, error)
	// GetCustomerForUpdate acquires a row lock on the customer; only
	// meaningful inside ExecuteInTransaction.
	GetCustomerForUpdate(id uint) (*models.Customer, error)
	// UpdateBalanceIf applies the write only when the stored balance still
	// equals oldBalance, returning ErrBalanceConflict otherwise. Inside a
	// row-locked transaction the condition cannot fail; it exists so
	// deployments without FOR UPDATE support still cannot lose updates.
	UpdateBalanceIf(customerID uint, oldBalance, newBalance float64) error

	CreateOrder(order *models.Order) error
	OrdersByCustomer(customerID uint) ([]models.Order, error)

	ExecuteInTransaction(fn func(WalletRepository) error) error
}
