package handlers

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/rogerio-castellano/sales-console/internal/models"
	"github.com/rogerio-castellano/sales-console/internal/repo"
	"github.com/rogerio-castellano/sales-console/internal/session"
)

// Collaborators is what the views need from the commercial, stock and sale services.
type Collaborators interface {
	Login(ctx context.Context, username, password string) (string, error)
	ListProducts(ctx context.Context, sess session.Session) ([]models.Product, error)
	CreateProduct(ctx context.Context, sess session.Session, p models.Product) (models.Product, error)
	ListStock(ctx context.Context, sess session.Session) ([]models.StockRecord, error)
	AddStock(ctx context.Context, sess session.Session, rec models.StockRecord) (models.StockRecord, error)
	ListSaleProducts(ctx context.Context, sess session.Session) ([]models.Product, error)
	ListOrders(ctx context.Context, sess session.Session) ([]models.Order, error)
	CreateOrder(ctx context.Context, sess session.Session, client string, productID, quantity int) (models.Invoice, error)
}

var (
	services Collaborators
	sessions *session.Manager
	userRepo repo.UserRepository
	logger   = zap.NewNop()
	now      = time.Now
)

func SetServices(s Collaborators) {
	services = s
}

func SetSessionManager(m *session.Manager) {
	sessions = m
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// SetClock replaces the time source used by the dashboard. Tests pin it.
func SetClock(f func() time.Time) {
	if f == nil {
		f = time.Now
	}
	now = f
}
