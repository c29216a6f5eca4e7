// Package auth issues and refreshes JWT sessions for customers.
package auth

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"

	"corepay/internal/models"
	"corepay/internal/repositories"
	"corepay/internal/utils"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type Service interface {
	Login(email, password string) (*models.Customer, string, string, error)
	RefreshTokens(refreshToken string) (string, string, error)
	GetCustomerByID(id uint) (*models.Customer, error)
}

type service struct {
	repo repositories.CustomerRepository
}

func NewService(repo repositories.CustomerRepository) Service {
	return &service{repo: repo}
}

func (s *service) Login(email, password string) (*models.Customer, string, string, error) {
	customer, err := s.repo.GetByEmail(email)
	if err != nil {
		log.Printf("login failed: no customer for %s", email)
		return nil, "", "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(customer.Password), []byte(password)); err != nil {
		log.Printf("login failed: bad password for customer %d", customer.ID)
		return nil, "", "", ErrInvalidCredentials
	}

	access, refresh, err := utils.GenerateTokens(&models.CustomerClaims{
		CustomerID: customer.ID,
		Email:      customer.Email,
	})
	if err != nil {
		return nil, "", "", err
	}
	return customer, access, refresh, nil
}

func (s *service) RefreshTokens(refreshToken string) (string, string, error) {
	_, claims, err := utils.ParseToken(refreshToken)
	if err != nil {
		return "", "", errors.New("invalid refresh token")
	}

	customer, err := s.repo.GetByID(claims.CustomerID)
	if err != nil {
		return "", "", errors.New("customer not found")
	}

	return utils.GenerateTokens(&models.CustomerClaims{
		CustomerID: customer.ID,
		Email:      customer.Email,
	})
}

func (s *service) GetCustomerByID(id uint) (*models.Customer, error) {
	return s.repo.GetByID(id)
}
