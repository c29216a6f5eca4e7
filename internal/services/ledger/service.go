// Package ledger records income/expense entries and derives monthly and
// yearly summaries from them. Month buckets are computed in UTC.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	domainerr "corepay/internal/errors"
	"corepay/internal/models"
	"corepay/internal/repositories"
)

// Service defines the financial ledger operations exposed to the API layer.
type Service interface {
	Record(ctx context.Context, name, kind string, amount float64) (*models.Transaction, error)
	Filter(ctx context.Context, f Filter) (*FilterResult, error)
	YearlyDashboard(ctx context.Context, year int) (*models.YearlyDashboard, error)
}

type service struct {
	repo repositories.TransactionRepository
	now  func() time.Time
}

// NewService creates a new ledger service.
func NewService(repo repositories.TransactionRepository) Service {
	if repo == nil {
		panic("repo is required")
	}
	return &service{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func validKind(kind string) bool {
	return kind == models.TransactionTypeIncome || kind == models.TransactionTypeExpense
}

func (s *service) Record(ctx context.Context, name, kind string, amount float64) (*models.Transaction, error) {
	if !validKind(kind) {
		return nil, domainerr.ErrInvalidKind.WithField("type")
	}
	if amount < 0 {
		return nil, domainerr.ErrInvalidAmount.WithField("amount")
	}

	tx := &models.Transaction{
		Reference: uuid.NewString(),
		Name:      name,
		Type:      kind,
		Amount:    amount,
		Date:      s.now(),
	}
	if err := s.repo.Create(tx); err != nil {
		return nil, storageErr(err)
	}
	return tx, nil
}

func (s *service) Filter(ctx context.Context, f Filter) (*FilterResult, error) {
	if f.Type != "" && !validKind(f.Type) {
		return nil, domainerr.ErrInvalidKind.WithField("type")
	}

	transactions, err := s.repo.Find(repositories.TransactionFilter{
		Type:  f.Type,
		Start: f.Start,
		End:   f.End,
	})
	if err != nil {
		return nil, storageErr(err)
	}

	var balance float64
	for _, tx := range transactions {
		if tx.Type == models.TransactionTypeIncome {
			balance += tx.Amount
		} else {
			balance -= tx.Amount
		}
	}

	return &FilterResult{Transactions: transactions, Balance: balance}, nil
}

func (s *service) YearlyDashboard(ctx context.Context, year int) (*models.YearlyDashboard, error) {
	if year == 0 {
		year = s.now().Year()
	}

	// One range query covers the reference year and the one before it.
	start := time.Date(year-1, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year+1, time.January, 1, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond)

	transactions, err := s.repo.Find(repositories.TransactionFilter{Start: &start, End: &end})
	if err != nil {
		return nil, storageErr(err)
	}

	dash := &models.YearlyDashboard{Year: year}
	var prevIncome, prevExpense float64

	for _, tx := range transactions {
		date := tx.Date.UTC()
		switch date.Year() {
		case year:
			month := int(date.Month()) - 1
			if tx.Type == models.TransactionTypeIncome {
				dash.MonthlyIncome[month] += tx.Amount
				dash.TotalIncome += tx.Amount
			} else {
				dash.MonthlyExpense[month] += tx.Amount
				dash.TotalExpense += tx.Amount
			}
		case year - 1:
			if tx.Type == models.TransactionTypeIncome {
				prevIncome += tx.Amount
			} else {
				prevExpense += tx.Amount
			}
		}
	}

	dash.IncomeGrowth = growthRate(dash.TotalIncome, prevIncome)
	dash.ExpenseGrowth = growthRate(dash.TotalExpense, prevExpense)
	return dash, nil
}

// growthRate is zero when there is no previous volume, never NaN.
func growthRate(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

func storageErr(err error) error {
	var de *domainerr.DomainError
	if errors.As(err, &de) {
		return err
	}
	return fmt.Errorf("%w: %v", domainerr.ErrStorageUnavailable, err)
}
