// Package memory provides an in-process user store. It exists behind
// the users.Repository interface so a persistent backend can replace it
// without touching the auth flow.
package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/dkachur-dev/weather-dashboard/internal/auth/models"
)

var (
	ErrUserExists   = errors.New("user already exists")
	ErrUserNotFound = errors.New("user not found")
)

// UserRepository keeps users in a map guarded by a RWMutex. Register
// and login are the only writers/readers, so whole-map locking is
// enough at this scale.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]models.User)}
}

func (r *UserRepository) Create(_ context.Context, user models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Email]; ok {
		return ErrUserExists
	}
	r.users[user.Email] = user
	return nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[email]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}
