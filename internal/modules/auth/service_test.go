package auth

import (
	"context"
	"testing"

	"concierge/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Mock repositories
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 42 // simulate DB insert
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

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type MockJWT struct {
	mock.Mock
}

func (m *MockJWT) GenerateToken(userID int64, role string) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

func TestService_Register_Success(t *testing.T) {
	users := new(MockUserRepository)
	jwt := new(MockJWT)

	users.On("ExistsByEmail", mock.Anything, "marie@example.com").Return(false, nil)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)
	jwt.On("GenerateToken", int64(42), "client").Return("signed-token", nil)

	svc := NewService(users, jwt)
	result, err := svc.Register(context.Background(), RegisterRequest{
		Email:     "Marie@Example.com",
		Password:  "secret123",
		FirstName: "Marie",
		LastName:  "Dubois",
	})

	assert.NoError(t, err)
	assert.Equal(t, "signed-token", result.Token)
	assert.Equal(t, "marie@example.com", result.User.Email)
	assert.Equal(t, domain.RoleClient, result.User.Role)
	assert.NotEqual(t, "secret123", result.User.PasswordHash)
	users.AssertExpectations(t)
	jwt.AssertExpectations(t)
}

func TestService_Register_EmailTaken(t *testing.T) {
	users := new(MockUserRepository)
	jwt := new(MockJWT)

	users.On("ExistsByEmail", mock.Anything, "taken@example.com").Return(true, nil)

	svc := NewService(users, jwt)
	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:     "taken@example.com",
		Password:  "secret123",
		FirstName: "A",
		LastName:  "B",
	})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Register_UnknownRoleRejected(t *testing.T) {
	users := new(MockUserRepository)
	jwt := new(MockJWT)

	svc := NewService(users, jwt)
	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:     "x@example.com",
		Password:  "secret123",
		FirstName: "A",
		LastName:  "B",
		Role:      "superuser",
	})

	assert.ErrorIs(t, err, ErrInvalidRole)
	users.AssertNotCalled(t, "ExistsByEmail", mock.Anything, mock.Anything)
}

func TestService_Register_AdminRoleAccepted(t *testing.T) {
	users := new(MockUserRepository)
	jwt := new(MockJWT)

	users.On("ExistsByEmail", mock.Anything, "boss@example.com").Return(false, nil)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)
	jwt.On("GenerateToken", int64(42), "admin").Return("t", nil)

	svc := NewService(users, jwt)
	result, err := svc.Register(context.Background(), RegisterRequest{
		Email:     "boss@example.com",
		Password:  "secret123",
		FirstName: "Chef",
		LastName:  "Conciergerie",
		Role:      "admin",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, result.User.Role)
}

func TestService_Login_Success(t *testing.T) {
	users := new(MockUserRepository)
	jwt := new(MockJWT)

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	users.On("GetByEmail", mock.Anything, "marie@example.com").Return(&domain.User{
		ID:           7,
		Email:        "marie@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleClient,
	}, nil)
	jwt.On("GenerateToken", int64(7), "client").Return("signed-token", nil)

	svc := NewService(users, jwt)
	result, err := svc.Login(context.Background(), LoginRequest{
		Email:    "marie@example.com",
		Password: "secret123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "signed-token", result.Token)
}

func TestService_Login_WrongPassword(t *testing.T) {
	users := new(MockUserRepository)
	jwt := new(MockJWT)

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	users.On("GetByEmail", mock.Anything, "marie@example.com").Return(&domain.User{
		ID:           7,
		Email:        "marie@example.com",
		PasswordHash: string(hash),
	}, nil)

	svc := NewService(users, jwt)
	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "marie@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	jwt.AssertNotCalled(t, "GenerateToken", mock.Anything, mock.Anything)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	users := new(MockUserRepository)
	jwt := new(MockJWT)

	users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(users, jwt)
	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
