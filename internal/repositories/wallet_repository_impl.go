package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domainerr "corepay/internal/errors"
	"corepay/internal/models"
)

type walletRepository struct {
	db *gorm.DB
}

func NewWalletRepository(db *gorm.DB) WalletRepository {
	return &walletRepository{db: db}
}

func (r *walletRepository) GetCustomerByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerr.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return &customer, nil
}

func (r *walletRepository) GetCustomerForUpdate(id uint) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&customer, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerr.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to lock customer row: %w", err)
	}
	return &customer, nil
}

func (r *walletRepository) UpdateBalanceIf(customerID uint, oldBalance, newBalance float64) error {
	result := r.db.Model(&models.Customer{}).
		Where("id = ? AND wallet = ?", customerID, oldBalance).
		Update("wallet", newBalance)
	if result.Error != nil {
		return fmt.Errorf("failed to update balance: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBalanceConflict
	}
	return nil
}

func (r *walletRepository) CreateOrder(order *models.Order) error {
	if err := r.db.Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

func (r *walletRepository) OrdersByCustomer(customerID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("customer_id = ?", customerID).
		Order("purchase_date ASC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (r *walletRepository) ExecuteInTransaction(fn func(WalletRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&walletRepository{db: tx})
	})
}
