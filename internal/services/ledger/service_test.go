package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domainerr "corepay/internal/errors"
	"corepay/internal/models"
	"corepay/internal/repositories"
)

type MockTransactionRepo struct {
	mock.Mock
}

func (m *MockTransactionRepo) Create(tx *models.Transaction) error {
	args := m.Called(tx)
	return args.Error(0)
}

func (m *MockTransactionRepo) Find(filter repositories.TransactionFilter) ([]models.Transaction, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Transaction), args.Error(1)
}

func fixedNow() time.Time {
	return time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
}

func newTestService(repo repositories.TransactionRepository) *service {
	return &service{repo: repo, now: fixedNow}
}

func entry(kind string, amount float64, date time.Time) models.Transaction {
	return models.Transaction{Name: "entry", Type: kind, Amount: amount, Date: date}
}

func TestRecord(t *testing.T) {
	t.Run("persists income with timestamp", func(t *testing.T) {
		repo := new(MockTransactionRepo)
		repo.On("Create", mock.Anything).Return(nil)

		tx, err := newTestService(repo).Record(context.Background(), "salary", models.TransactionTypeIncome, 1200)

		require.NoError(t, err)
		assert.Equal(t, "salary", tx.Name)
		assert.Equal(t, models.TransactionTypeIncome, tx.Type)
		assert.Equal(t, float64(1200), tx.Amount)
		assert.Equal(t, fixedNow(), tx.Date)
		assert.NotEmpty(t, tx.Reference)
		repo.AssertExpectations(t)
	})

	t.Run("zero amount is allowed", func(t *testing.T) {
		repo := new(MockTransactionRepo)
		repo.On("Create", mock.Anything).Return(nil)

		_, err := newTestService(repo).Record(context.Background(), "adjustment", models.TransactionTypeExpense, 0)

		assert.NoError(t, err)
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		repo := new(MockTransactionRepo)

		_, err := newTestService(repo).Record(context.Background(), "salary", "transfer", 100)

		assert.ErrorIs(t, err, domainerr.ErrInvalidKind)
		repo.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		repo := new(MockTransactionRepo)

		_, err := newTestService(repo).Record(context.Background(), "refund", models.TransactionTypeIncome, -1)

		assert.ErrorIs(t, err, domainerr.ErrInvalidAmount)
		repo.AssertNotCalled(t, "Create", mock.Anything)
	})
}

func TestFilter(t *testing.T) {
	t.Run("balance is income minus expense", func(t *testing.T) {
		now := fixedNow()
		repo := new(MockTransactionRepo)
		repo.On("Find", mock.Anything).Return([]models.Transaction{
			entry(models.TransactionTypeIncome, 100, now),
			entry(models.TransactionTypeIncome, 50, now),
			entry(models.TransactionTypeExpense, 30, now),
		}, nil)

		result, err := newTestService(repo).Filter(context.Background(), Filter{})

		require.NoError(t, err)
		assert.Len(t, result.Transactions, 3)
		assert.Equal(t, float64(120), result.Balance)
	})

	t.Run("passes kind and inclusive bounds to the repository", func(t *testing.T) {
		start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, time.March, 31, 23, 59, 59, 0, time.UTC)

		repo := new(MockTransactionRepo)
		repo.On("Find", repositories.TransactionFilter{
			Type:  models.TransactionTypeIncome,
			Start: &start,
			End:   &end,
		}).Return([]models.Transaction{}, nil)

		_, err := newTestService(repo).Filter(context.Background(), Filter{
			Type:  models.TransactionTypeIncome,
			Start: &start,
			End:   &end,
		})

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		repo := new(MockTransactionRepo)

		_, err := newTestService(repo).Filter(context.Background(), Filter{Type: "transfer"})

		assert.ErrorIs(t, err, domainerr.ErrInvalidKind)
		repo.AssertNotCalled(t, "Find", mock.Anything)
	})
}

func TestYearlyDashboard(t *testing.T) {
	day := func(year int, month time.Month) time.Time {
		return time.Date(year, month, 10, 8, 30, 0, 0, time.UTC)
	}

	t.Run("buckets by calendar month and computes growth", func(t *testing.T) {
		repo := new(MockTransactionRepo)
		repo.On("Find", mock.Anything).Return([]models.Transaction{
			entry(models.TransactionTypeIncome, 100, day(2025, time.January)),
			entry(models.TransactionTypeIncome, 50, day(2025, time.January)),
			entry(models.TransactionTypeIncome, 75, day(2025, time.December)),
			entry(models.TransactionTypeExpense, 40, day(2025, time.March)),
			entry(models.TransactionTypeIncome, 150, day(2024, time.July)),
			entry(models.TransactionTypeExpense, 80, day(2024, time.February)),
		}, nil)

		dash, err := newTestService(repo).YearlyDashboard(context.Background(), 2025)

		require.NoError(t, err)
		assert.Equal(t, 2025, dash.Year)
		assert.Equal(t, float64(150), dash.MonthlyIncome[0])
		assert.Equal(t, float64(75), dash.MonthlyIncome[11])
		assert.Equal(t, float64(40), dash.MonthlyExpense[2])
		assert.Equal(t, float64(225), dash.TotalIncome)
		assert.Equal(t, float64(40), dash.TotalExpense)
		// 2024 income 150 -> 2025 income 225 is +50%; expense 80 -> 40 is -50%.
		assert.Equal(t, float64(50), dash.IncomeGrowth)
		assert.Equal(t, float64(-50), dash.ExpenseGrowth)
	})

	t.Run("empty previous year yields zero growth", func(t *testing.T) {
		repo := new(MockTransactionRepo)
		repo.On("Find", mock.Anything).Return([]models.Transaction{
			entry(models.TransactionTypeIncome, 500, day(2025, time.May)),
			entry(models.TransactionTypeExpense, 120, day(2025, time.May)),
		}, nil)

		dash, err := newTestService(repo).YearlyDashboard(context.Background(), 2025)

		require.NoError(t, err)
		assert.Equal(t, float64(0), dash.IncomeGrowth)
		assert.Equal(t, float64(0), dash.ExpenseGrowth)
	})

	t.Run("year with no transactions is all zeroes", func(t *testing.T) {
		repo := new(MockTransactionRepo)
		repo.On("Find", mock.Anything).Return([]models.Transaction{}, nil)

		dash, err := newTestService(repo).YearlyDashboard(context.Background(), 2025)

		require.NoError(t, err)
		assert.Equal(t, [12]float64{}, dash.MonthlyIncome)
		assert.Equal(t, [12]float64{}, dash.MonthlyExpense)
		assert.Equal(t, float64(0), dash.TotalIncome)
		assert.Equal(t, float64(0), dash.IncomeGrowth)
	})

	t.Run("defaults to the current year", func(t *testing.T) {
		repo := new(MockTransactionRepo)
		repo.On("Find", mock.MatchedBy(func(f repositories.TransactionFilter) bool {
			return f.Start != nil && f.Start.Year() == 2024 && f.End != nil && f.End.Year() == 2025
		})).Return([]models.Transaction{}, nil)

		dash, err := newTestService(repo).YearlyDashboard(context.Background(), 0)

		require.NoError(t, err)
		assert.Equal(t, 2025, dash.Year)
		repo.AssertExpectations(t)
	})
}

func TestGrowthRate(t *testing.T) {
	assert.Equal(t, float64(0), growthRate(0, 0))
	assert.Equal(t, float64(0), growthRate(500, 0))
	assert.Equal(t, float64(100), growthRate(200, 100))
	assert.Equal(t, float64(-100), growthRate(0, 75))
}
