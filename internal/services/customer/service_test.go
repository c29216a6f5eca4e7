package customer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	domainerr "corepay/internal/errors"
	"corepay/internal/models"
	"corepay/internal/repositories"
)

type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) Create(c *models.Customer) error {
	args := m.Called(c)
	return args.Error(0)
}

func (m *MockCustomerRepo) GetByID(id uint) (*models.Customer, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *MockCustomerRepo) GetByEmail(email string) (*models.Customer, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *MockCustomerRepo) Update(c *models.Customer) error {
	args := m.Called(c)
	return args.Error(0)
}

func (m *MockCustomerRepo) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func ptr(v float64) *float64 { return &v }

func TestCreate(t *testing.T) {
	t.Run("hashes the password before storing", func(t *testing.T) {
		repo := new(MockCustomerRepo)
		repo.On("GetByEmail", "a@b.co").Return(nil, domainerr.ErrCustomerNotFound)
		repo.On("Create", mock.Anything).Return(nil)

		created, err := NewService(repo).Create(&models.CreateCustomerInput{
			Name:     "Ada",
			Email:    "a@b.co",
			Password: "secret-pw",
			Phone:    "0123456789",
			Wallet:   50,
		})

		require.NoError(t, err)
		assert.NotEqual(t, "secret-pw", created.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("secret-pw")))
		assert.Equal(t, float64(50), created.Wallet)
		repo.AssertExpectations(t)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		repo := new(MockCustomerRepo)
		repo.On("GetByEmail", "a@b.co").Return(&models.Customer{}, nil)

		_, err := NewService(repo).Create(&models.CreateCustomerInput{
			Email:    "a@b.co",
			Password: "pw",
		})

		assert.ErrorIs(t, err, repositories.ErrEmailTaken)
		repo.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("rejects negative opening balance", func(t *testing.T) {
		repo := new(MockCustomerRepo)

		_, err := NewService(repo).Create(&models.CreateCustomerInput{
			Email:    "a@b.co",
			Password: "pw",
			Wallet:   -1,
		})

		assert.ErrorIs(t, err, domainerr.ErrInvalidAmount)
	})

	t.Run("rejects out-of-range discount rate", func(t *testing.T) {
		repo := new(MockCustomerRepo)

		_, err := NewService(repo).Create(&models.CreateCustomerInput{
			Email:        "a@b.co",
			Password:     "pw",
			DiscountRate: ptr(101),
		})

		assert.ErrorIs(t, err, domainerr.ErrInvalidDiscountRate)
	})
}

func TestSetDiscountRate(t *testing.T) {
	t.Run("updates the stored rate", func(t *testing.T) {
		repo := new(MockCustomerRepo)
		repo.On("GetByID", uint(1)).Return(&models.Customer{}, nil)
		repo.On("Update", mock.MatchedBy(func(c *models.Customer) bool {
			return c.DiscountRate != nil && *c.DiscountRate == 25
		})).Return(nil)

		err := NewService(repo).SetDiscountRate(1, ptr(25))

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("rejects out-of-range rate", func(t *testing.T) {
		repo := new(MockCustomerRepo)

		err := NewService(repo).SetDiscountRate(1, ptr(-1))

		assert.ErrorIs(t, err, domainerr.ErrInvalidDiscountRate)
		repo.AssertNotCalled(t, "GetByID", mock.Anything)
	})
}
