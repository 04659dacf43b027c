package repository

import (
	"context"
	"errors"

	"github.com/tawonga-banda/pharmacy-pos/internal/models"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// userRepository holds the fixed cashier table from configuration.
type userRepository struct {
	byUsername map[string]models.User
}

func NewUserRepo(users []models.User) UserRepository {
	byUsername := make(map[string]models.User, len(users))
	for _, u := range users {
		byUsername[u.Username] = u
	}

	return &userRepository{byUsername: byUsername}
}

func (r *userRepository) GetByUsername(_ context.Context, username string) (*models.User, error) {
	user, ok := r.byUsername[username]
	if !ok {
		return nil, ErrUserNotFound
	}

	return &user, nil
}
