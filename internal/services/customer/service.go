// Package customer handles customer profile lifecycle: registration with a
// bcrypt-hashed password, lookup, and discount rate updates. Wallet balance
// mutations live in the wallet service, never here.
package customer

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	domainerr "corepay/internal/errors"
	"corepay/internal/models"
	"corepay/internal/repositories"
)

type Service interface {
	Create(input *models.CreateCustomerInput) (*models.Customer, error)
	GetByID(id uint) (*models.Customer, error)
	SetDiscountRate(id uint, rate *float64) error
}

type service struct {
	repo repositories.CustomerRepository
}

func NewService(repo repositories.CustomerRepository) Service {
	return &service{repo: repo}
}

func (s *service) Create(input *models.CreateCustomerInput) (*models.Customer, error) {
	if input.Email == "" {
		return nil, errors.New("email is required")
	}
	if input.Password == "" {
		return nil, errors.New("password is required")
	}
	if input.Wallet < 0 {
		return nil, domainerr.ErrInvalidAmount.WithField("wallet")
	}
	if input.DiscountRate != nil && (*input.DiscountRate < 0 || *input.DiscountRate > 100) {
		return nil, domainerr.ErrInvalidDiscountRate.WithField("rate_discount")
	}

	if existing, _ := s.repo.GetByEmail(input.Email); existing != nil {
		return nil, repositories.ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("failed to hash password")
	}

	c := &models.Customer{
		Name:         input.Name,
		Email:        input.Email,
		Password:     string(hashed),
		Phone:        input.Phone,
		DiscountRate: input.DiscountRate,
		Wallet:       input.Wallet,
	}
	if err := s.repo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) GetByID(id uint) (*models.Customer, error) {
	return s.repo.GetByID(id)
}

func (s *service) SetDiscountRate(id uint, rate *float64) error {
	if rate != nil && (*rate < 0 || *rate > 100) {
		return domainerr.ErrInvalidDiscountRate.WithField("rate_discount")
	}

	c, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	c.DiscountRate = rate
	return s.repo.Update(c)
}
