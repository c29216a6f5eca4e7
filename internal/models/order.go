package models

import "time"

// Order records a single successful purchase. Rows are immutable once
// inserted; DiscountedPrice is what was actually charged to the wallet.
type Order struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	Reference       string    `gorm:"uniqueIndex;not null" json:"reference"`
	CustomerID      uint      `gorm:"index;not null" json:"customer_id"`
	ProductName     string    `gorm:"not null" json:"product_name"`
	Price           float64   `gorm:"not null" json:"price"`
	DiscountedPrice float64   `gorm:"not null" json:"discounted_price"`
	PurchaseDate    time.Time `gorm:"index;not null" json:"purchase_date"`
}
