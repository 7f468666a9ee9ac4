package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkachur-dev/weather-dashboard/internal/auth/models"
	"github.com/dkachur-dev/weather-dashboard/internal/auth/repository/memory"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository()

	user := models.User{Email: "user@example.com", PasswordHash: "digest", Name: "Test User"}
	require.NoError(t, repo.Create(ctx, user))

	got, err := repo.GetByEmail(ctx, "user@example.com")
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestUserRepository_DuplicateCreate(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository()

	user := models.User{Email: "user@example.com", PasswordHash: "digest", Name: "Test User"}
	require.NoError(t, repo.Create(ctx, user))
	assert.ErrorIs(t, repo.Create(ctx, user), memory.ErrUserExists)
}

func TestUserRepository_GetMissing(t *testing.T) {
	repo := memory.NewUserRepository()

	_, err := repo.GetByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, memory.ErrUserNotFound)
}

func TestUserRepository_ConcurrentRegistration(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository()

	const workers = 32
	var wg sync.WaitGroup
	errs := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- repo.Create(ctx, models.User{Email: "race@example.com", Name: "Racer"})
		}()
	}
	wg.Wait()
	close(errs)

	var created, duplicates int
	for err := range errs {
		switch {
		case err == nil:
			created++
		default:
			duplicates++
		}
	}

	assert.Equal(t, 1, created, "exactly one registration must win, got %d", created)
	assert.Equal(t, workers-1, duplicates)
}
