package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tablebook/internal/domain"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if args.Error(0) == nil && u != nil {
		u.ID = 5
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type mockJWT struct {
	mock.Mock
}

func (m *mockJWT) GenerateToken(userID int64, role string) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

func TestRegister_Customer(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "alice@example.com").Return(nil, gorm.ErrRecordNotFound)
	users.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	svc := NewService(users, new(mockJWT))

	u, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "Alice@Example.com",
		Password: "supersecret",
		Name:     "Alice",
	}, domain.RoleCustomer)

	assert.NoError(t, err)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.Equal(t, domain.RoleCustomer, u.Role)
	assert.Empty(t, u.PasswordHash) // never leaks out of the service
}

func TestRegister_EmailTaken(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "alice@example.com").
		Return(&domain.User{ID: 1, Email: "alice@example.com"}, nil)

	svc := NewService(users, new(mockJWT))

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "alice@example.com",
		Password: "supersecret",
		Name:     "Alice",
	}, domain.RoleCustomer)

	assert.ErrorIs(t, err, ErrEmailTaken)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_WeakPassword(t *testing.T) {
	svc := NewService(new(MockUserRepository), new(mockJWT))

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "alice@example.com",
		Password: "short",
		Name:     "Alice",
	}, domain.RoleCustomer)

	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestLogin_Success(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.DefaultCost)

	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "alice@example.com").Return(&domain.User{
		ID:           5,
		Email:        "alice@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleCustomer,
	}, nil)

	jwt := new(mockJWT)
	jwt.On("GenerateToken", int64(5), "customer").Return("token-123", nil)

	svc := NewService(users, jwt)

	result, err := svc.Login(context.Background(), LoginRequest{
		Email:    "alice@example.com",
		Password: "supersecret",
	})

	assert.NoError(t, err)
	assert.Equal(t, "token-123", result.AccessToken)
	assert.Equal(t, int64(5), result.User.ID)
	assert.Empty(t, result.User.PasswordHash)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.DefaultCost)

	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "alice@example.com").Return(&domain.User{
		ID:           5,
		Email:        "alice@example.com",
		PasswordHash: string(hash),
	}, nil)

	svc := NewService(users, new(mockJWT))

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(users, new(mockJWT))

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever1",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
