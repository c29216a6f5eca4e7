package models

import (
	"gorm.io/gorm"
)

// Customer is an account holder with a stored-value wallet. Wallet holds the
// spendable balance and must never go negative; DiscountRate is a percentage
// in [0, 100] or nil when the customer has no discount.
type Customer struct {
	gorm.Model
	Name         string   `gorm:"not null" json:"name"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	Password     string   `gorm:"not null" json:"-"`
	Phone        string   `gorm:"not null" json:"phone"`
	DiscountRate *float64 `gorm:"column:rate_discount" json:"rate_discount"`
	Wallet       float64  `gorm:"not null;default:0" json:"wallet"`
}

// CreateCustomerInput carries the fields accepted at registration.
type CreateCustomerInput struct {
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Password     string   `json:"password"`
	Phone        string   `json:"phone"`
	DiscountRate *float64 `json:"rate_discount"`
	Wallet       float64  `json:"wallet"`
}
