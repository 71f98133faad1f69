package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	_ "github.com/rogerio-castellano/sales-console/internal/docs"
	"github.com/rogerio-castellano/sales-console/internal/http/handlers"
	mw "github.com/rogerio-castellano/sales-console/internal/http/middleware"
	rl "github.com/rogerio-castellano/sales-console/internal/http/rate_limiter"
	"github.com/rogerio-castellano/sales-console/internal/session"
)

type Options struct {
	Sessions *session.Manager
	Limiter  *rl.Limiter
	Logger   *zap.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(mw.RequestLogger(log))
	if opts.Limiter != nil {
		r.Use(mw.RateLimit(opts.Limiter))
	}

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Group(func(r chi.Router) {
		r.Use(mw.Session(opts.Sessions, log))

		r.Post("/login", handlers.LoginHandler)
		r.Post("/logout", handlers.LogoutHandler)
		r.Get("/session", handlers.SessionHandler)

		r.Get("/dashboard", handlers.GetDashboardHandler)
		r.Get("/products", handlers.GetProductsHandler)

		r.Route("/admin", func(r chi.Router) {
			r.Get("/products", handlers.GetCatalogHandler)
			r.Post("/products", handlers.CreateProductHandler)
			r.Post("/stock", handlers.AddStockHandler)
		})

		r.Post("/orders", handlers.CreateOrderHandler)
		r.Get("/orders", handlers.GetOrdersHandler)
		r.Get("/orders/{id}/invoice", handlers.GetInvoiceHandler)

		r.With(mw.RequireSession).Get("/users", handlers.GetUsersHandler)
	})

	return r
}
