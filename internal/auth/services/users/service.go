// Package users implements the credential directory: registration with
// bcrypt password digests and login verification.
package users

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/dkachur-dev/weather-dashboard/internal/auth/models"
	"github.com/dkachur-dev/weather-dashboard/internal/auth/repository/memory"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// dummyHash is compared against when the email is unknown, so a failed
// login costs the same whether the account exists or not.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)

type Repository interface {
	Create(ctx context.Context, user models.User) error
	GetByEmail(ctx context.Context, email string) (models.User, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register stores a new user with a bcrypt digest of the password.
// Returns ErrUserExists if the email is already taken.
func (s *Service) Register(ctx context.Context, email, password, name string) (models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{Email: email, PasswordHash: string(hash), Name: name}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, memory.ErrUserExists) {
			return models.User{}, ErrUserExists
		}
		return models.User{}, err
	}
	return user, nil
}

// Authenticate verifies the password against the stored digest. Unknown
// email and wrong password both collapse to ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		// Burn a comparison anyway to keep timing flat.
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return models.User{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}
