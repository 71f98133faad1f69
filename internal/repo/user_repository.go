package repo

import (
	"context"

	"github.com/rogerio-castellano/sales-console/internal/models"
)

// UserRepository is the source of the users view.
type UserRepository interface {
	GetAll(ctx context.Context) ([]models.User, error)
}
