package wallet

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	domainerr "corepay/internal/errors"
	"corepay/internal/models"
	"corepay/internal/repositories"
	"corepay/internal/services/discount"
)

type service struct {
	repo    repositories.WalletRepository
	cache   CacheOperator
	config  Config
	metrics MetricsCollector
	locks   *customerLocks
}

// NewService creates a new wallet service.
func NewService(repo repositories.WalletRepository, cache CacheOperator, config Config, metrics MetricsCollector) Service {
	if repo == nil {
		panic("repo is required")
	}
	if cache == nil {
		panic("cache is required")
	}
	if config.ProcessingTimeout == 0 {
		config.ProcessingTimeout = DefaultTimeout
	}
	if config.CacheTTL == 0 {
		config.CacheTTL = DefaultCacheTTL
	}
	if metrics == nil {
		metrics = &NoopMetricsCollector{}
	}

	return &service{
		repo:    repo,
		cache:   cache,
		config:  config,
		metrics: metrics,
		locks:   newCustomerLocks(),
	}
}

func (s *service) TopUp(ctx context.Context, customerID uint, amount float64) (float64, error) {
	start := time.Now()
	defer func() { s.metrics.RecordOperationDuration(OpTopUp, time.Since(start)) }()

	if amount <= 0 {
		s.metrics.RecordError(OpTopUp, domainerr.ErrInvalidAmount.Code)
		return 0, domainerr.ErrInvalidAmount.WithField("amount")
	}

	lock := s.locks.get(customerID)
	lock.Lock()
	defer lock.Unlock()

	var newBalance float64
	err := s.repo.ExecuteInTransaction(func(tx repositories.WalletRepository) error {
		customer, err := tx.GetCustomerForUpdate(customerID)
		if err != nil {
			return err
		}

		newBalance = roundCents(customer.Wallet + amount)
		if err := tx.UpdateBalanceIf(customerID, customer.Wallet, newBalance); err != nil {
			return err
		}

		s.metrics.RecordBalanceChange(customerID, customer.Wallet, newBalance)
		return nil
	})
	if err != nil {
		s.metrics.RecordError(OpTopUp, errKind(err))
		return 0, wrapStorage(err)
	}

	s.invalidate(ctx, customerID)
	s.metrics.RecordTransaction(OpTopUp, amount)
	return newBalance, nil
}

func (s *service) Purchase(ctx context.Context, customerID uint, productName string, grossPrice float64) (*models.Order, float64, error) {
	start := time.Now()
	defer func() { s.metrics.RecordOperationDuration(OpPurchase, time.Since(start)) }()

	if grossPrice <= 0 {
		s.metrics.RecordError(OpPurchase, domainerr.ErrInvalidAmount.Code)
		return nil, 0, domainerr.ErrInvalidAmount.WithField("price")
	}

	lock := s.locks.get(customerID)
	lock.Lock()
	defer lock.Unlock()

	var (
		order      *models.Order
		newBalance float64
	)
	err := s.repo.ExecuteInTransaction(func(tx repositories.WalletRepository) error {
		customer, err := tx.GetCustomerForUpdate(customerID)
		if err != nil {
			return err
		}

		netPrice, err := discount.Apply(grossPrice, customer.DiscountRate)
		if err != nil {
			return err
		}

		// The funds check runs against the net price: that is the amount
		// actually charged.
		if customer.Wallet < netPrice {
			return domainerr.ErrInsufficientFunds
		}

		order = &models.Order{
			Reference:       uuid.NewString(),
			CustomerID:      customerID,
			ProductName:     productName,
			Price:           grossPrice,
			DiscountedPrice: netPrice,
			PurchaseDate:    time.Now().UTC(),
		}
		if err := tx.CreateOrder(order); err != nil {
			return err
		}

		newBalance = roundCents(customer.Wallet - netPrice)
		if err := tx.UpdateBalanceIf(customerID, customer.Wallet, newBalance); err != nil {
			return err
		}

		s.metrics.RecordBalanceChange(customerID, customer.Wallet, newBalance)
		return nil
	})
	if err != nil {
		s.metrics.RecordError(OpPurchase, errKind(err))
		return nil, 0, wrapStorage(err)
	}

	s.invalidate(ctx, customerID)
	s.metrics.RecordTransaction(OpPurchase, order.DiscountedPrice)
	return order, newBalance, nil
}

func (s *service) ListOrders(ctx context.Context, customerID uint) ([]models.Order, error) {
	if _, err := s.repo.GetCustomerByID(customerID); err != nil {
		return nil, wrapStorage(err)
	}

	orders, err := s.repo.OrdersByCustomer(customerID)
	if err != nil {
		return nil, wrapStorage(err)
	}
	return orders, nil
}

func (s *service) GetBalance(ctx context.Context, customerID uint) (float64, error) {
	if customer, err := s.cache.GetCustomer(ctx, customerID); err == nil {
		return customer.Wallet, nil
	}

	customer, err := s.repo.GetCustomerByID(customerID)
	if err != nil {
		return 0, wrapStorage(err)
	}

	if err := s.cache.CacheCustomer(ctx, customer); err != nil {
		// Cache failures never fail the read.
		s.metrics.RecordError("cache_set", "customer")
	}
	return customer.Wallet, nil
}

func (s *service) invalidate(ctx context.Context, customerID uint) {
	if err := s.cache.InvalidateCustomer(ctx, customerID); err != nil {
		s.metrics.RecordError("cache_invalidate", "customer")
	}
}

// wrapStorage passes domain errors through untouched and folds everything
// else into STORAGE_UNAVAILABLE so callers can tell business rejections from
// transient persistence failures.
func wrapStorage(err error) error {
	var de *domainerr.DomainError
	if errors.As(err, &de) {
		return err
	}
	if errors.Is(err, repositories.ErrBalanceConflict) {
		return domainerr.ErrConflict
	}
	return fmt.Errorf("%w: %v", domainerr.ErrStorageUnavailable, err)
}

func errKind(err error) string {
	var de *domainerr.DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return domainerr.ErrStorageUnavailable.Code
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
