package repositories

import "corepay/internal/models"

// CustomerRepository defines the interface for customer profile operations.
// Balance mutations go through WalletRepository instead so they stay inside
// its transactional scope.
type CustomerRepository interface {
	Create(customer *models.Customer) error
	GetByID(id uint) (*models.Customer, error)
	GetByEmail(email string) (*models.Customer, error)
	Update(customer *models.Customer) error
	Delete(id uint) error
}
