package service

import (
	"database/sql"
	"errors"
	"fmt"

	"zomighty/internal/auth"
	"zomighty/internal/domain"
)

type AuthService struct {
	users UserRepository
}

func NewAuthService(users UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Register creates a new account. Username and email are checked separately
// so the caller gets a precise conflict message.
func (s *AuthService) Register(req *domain.RegisterRequest) error {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return fmt.Errorf("%w: missing required fields", ErrValidation)
	}

	taken, err := s.users.UsernameExists(req.Username)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("%w: username already taken", ErrConflict)
	}

	taken, err = s.users.EmailExists(req.Email)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("%w: email already registered", ErrConflict)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return err
	}

	return s.users.CreateUser(&domain.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
	})
}

// Login verifies credentials and returns a signed token. Unknown user and
// wrong password produce the same error so login failures leak nothing.
func (s *AuthService) Login(req *domain.LoginRequest) (string, error) {
	if req.Username == "" || req.Password == "" {
		return "", fmt.Errorf("%w: missing username or password", ErrValidation)
	}

	user, err := s.users.GetUserByUsername(req.Username)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: bad username or password", ErrUnauthorized)
	}
	if err != nil {
		return "", err
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return "", fmt.Errorf("%w: bad username or password", ErrUnauthorized)
	}

	return auth.GenerateToken(user.ID)
}

var _ AuthServiceInterface = (*AuthService)(nil)
