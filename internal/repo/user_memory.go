package repo

import (
	"context"

	"github.com/rogerio-castellano/sales-console/internal/models"
)

// InMemoryUserRepository serves a fixed directory, usually the one from the configuration.
type InMemoryUserRepository struct {
	users []models.User
}

func NewInMemoryUserRepository(users []models.User) *InMemoryUserRepository {
	return &InMemoryUserRepository{users: append([]models.User(nil), users...)}
}

func (r *InMemoryUserRepository) GetAll(_ context.Context) ([]models.User, error) {
	return append([]models.User(nil), r.users...), nil
}
