package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"autohire/internal/domain"
)

// Service contains all business logic for authentication
type Service struct {
	users UserRepository
	jwt   jwtService
}

func NewService(users UserRepository, jwt jwtService) *Service {
	return &Service{users: users, jwt: jwt}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	exists, err := s.users.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Name:         req.Name,
		Phone:        req.Phone,
		Role:         domain.RoleCustomer,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.issue(user)
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issue(user)
}

func (s *Service) Me(ctx context.Context, userID int64) (*UserPublic, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	pub := publicUser(user)
	return &pub, nil
}

func (s *Service) issue(user *domain.User) (*AuthResponse, error) {
	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}
	return &AuthResponse{User: publicUser(user), Token: token}, nil
}

func publicUser(u *domain.User) UserPublic {
	return UserPublic{
		ID:    u.ID,
		Role:  string(u.Role),
		Name:  u.Name,
		Email: u.Email,
	}
}
