package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"autohire/internal/domain"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 42
	}
	return args.Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
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
	users := new(MockUserRepo)
	jwt := new(MockJWT)

	users.On("EmailExists", mock.Anything, "new@autohire.local").Return(false, nil)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)
	jwt.On("GenerateToken", int64(42), "customer").Return("tok_abc", nil)

	service := NewService(users, jwt)

	resp, err := service.Register(context.Background(), RegisterRequest{
		Name:     "New User",
		Email:    "new@autohire.local",
		Password: "secret123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "tok_abc", resp.Token)
	assert.Equal(t, "customer", resp.User.Role)
}

func TestService_Register_EmailTaken(t *testing.T) {
	users := new(MockUserRepo)

	users.On("EmailExists", mock.Anything, "dup@autohire.local").Return(true, nil)

	service := NewService(users, new(MockJWT))

	_, err := service.Register(context.Background(), RegisterRequest{
		Name:     "Dup",
		Email:    "dup@autohire.local",
		Password: "secret123",
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Login(t *testing.T) {
	users := new(MockUserRepo)
	jwt := new(MockJWT)

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	user := &domain.User{ID: 42, Email: "demo@autohire.local", PasswordHash: string(hash), Role: domain.RoleCustomer}
	users.On("GetByEmail", mock.Anything, "demo@autohire.local").Return(user, nil)
	jwt.On("GenerateToken", int64(42), "customer").Return("tok_abc", nil)

	service := NewService(users, jwt)

	resp, err := service.Login(context.Background(), LoginRequest{
		Email:    "demo@autohire.local",
		Password: "secret123",
	})
	assert.NoError(t, err)
	assert.Equal(t, "tok_abc", resp.Token)

	_, err = service.Login(context.Background(), LoginRequest{
		Email:    "demo@autohire.local",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	users := new(MockUserRepo)
	users.On("GetByEmail", mock.Anything, "ghost@autohire.local").Return(nil, gorm.ErrRecordNotFound)

	service := NewService(users, new(MockJWT))

	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "ghost@autohire.local",
		Password: "whatever",
	})

	// same error as a bad password, so probing emails reveals nothing
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
