package ledger

import (
	"time"

	"corepay/internal/models"
)

// Filter narrows a ledger query. Zero-value fields match everything; both
// date bounds are inclusive.
type Filter struct {
	Type  string
	Start *time.Time
	End   *time.Time
}

// FilterResult carries the matching entries plus the net balance over them
// (sum of income minus sum of expense).
type FilterResult struct {
	Transactions []models.Transaction `json:"transactions"`
	Balance      float64              `json:"balance"`
}
