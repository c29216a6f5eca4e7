package models

import "time"

// Ledger entry kinds.
const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

// Transaction is an immutable income or expense ledger entry, independent of
// any customer wallet.
type Transaction struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Reference string    `gorm:"uniqueIndex;not null" json:"reference"`
	Name      string    `gorm:"not null" json:"name"`
	Type      string    `gorm:"not null;index" json:"type"`
	Amount    float64   `gorm:"not null" json:"amount"`
	Date      time.Time `gorm:"index;not null" json:"date"`
}
