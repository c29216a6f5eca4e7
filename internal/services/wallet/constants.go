package wallet

import "time"

// Operation names used for metrics.
const (
	OpTopUp    = "top_up"
	OpPurchase = "purchase"
)

// Default configuration values.
const (
	DefaultTimeout  = 30 * time.Second
	DefaultCacheTTL = 5 * time.Minute
)
