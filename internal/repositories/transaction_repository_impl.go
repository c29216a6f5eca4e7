package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"corepay/internal/models"
)

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(tx *models.Transaction) error {
	if err := r.db.Create(tx).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

func (r *transactionRepository) Find(filter TransactionFilter) ([]models.Transaction, error) {
	query := r.db.Model(&models.Transaction{})
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Start != nil {
		query = query.Where("date >= ?", *filter.Start)
	}
	if filter.End != nil {
		query = query.Where("date <= ?", *filter.End)
	}

	var transactions []models.Transaction
	if err := query.Order("date ASC").Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to find transactions: %w", err)
	}
	return transactions, nil
}
