package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/rogerio-castellano/sales-console/internal/client"
	"github.com/rogerio-castellano/sales-console/internal/config"
	"github.com/rogerio-castellano/sales-console/internal/db"
	"github.com/rogerio-castellano/sales-console/internal/http/handlers"
	rl "github.com/rogerio-castellano/sales-console/internal/http/rate_limiter"
	"github.com/rogerio-castellano/sales-console/internal/http/router"
	"github.com/rogerio-castellano/sales-console/internal/redissvc"
	"github.com/rogerio-castellano/sales-console/internal/repo"
	"github.com/rogerio-castellano/sales-console/internal/session"
)

// @title Sales Console API
// @version 1.0
// @description View endpoints of the sales and stock console. Each view calls the commercial, stock and sale services with the caller's session token.
// @host localhost:8080
// @BasePath /
func main() {
	configFile := flag.String("config", "", "path to a config file (default ./config.yaml when present)")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "❌ Could not load configuration:", err)
		os.Exit(1)
	}

	log, err := newLogger(cfg.Development)
	if err != nil {
		fmt.Fprintln(os.Stderr, "❌ Could not build logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var database *sql.DB
	if cfg.DatabaseURL != "" {
		database, err = db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal("❌ Could not connect to database", zap.Error(err))
		}
		defer database.Close()
	}

	store, closeStore, err := openStore(ctx, cfg, database)
	if err != nil {
		log.Fatal("could not open session store", zap.String("backend", cfg.SessionBackend), zap.Error(err))
	}
	defer closeStore()
	sessions := session.NewManager(store)

	users, err := openUsers(ctx, cfg, database)
	if err != nil {
		log.Fatal("could not open user directory", zap.Error(err))
	}

	hc := &http.Client{Timeout: cfg.HTTPTimeout}
	handlers.SetServices(client.NewServices(client.New(hc, log.Named("client")), client.Endpoints{
		Commercial: cfg.Services.Commercial,
		Stock:      cfg.Services.Stock,
		Sale:       cfg.Services.Sale,
	}))
	handlers.SetSessionManager(sessions)
	handlers.SetUserRepo(users)
	handlers.SetLogger(log.Named("handlers"))

	limiter := rl.New(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	go limiter.StartVisitorCleanupLoop(ctx)

	srv := &http.Server{
		Addr: cfg.Addr,
		Handler: router.NewRouter(router.Options{
			Sessions: sessions,
			Limiter:  limiter,
			Logger:   log.Named("http"),
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Info("✅ Server running",
		zap.String("addr", cfg.Addr),
		zap.String("session_backend", cfg.SessionBackend),
		zap.String("commercial", cfg.Services.Commercial),
		zap.String("stock", cfg.Services.Stock),
		zap.String("sale", cfg.Services.Sale),
	)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("server failed", zap.Error(err))
	}
}

func newLogger(development bool) (*zap.Logger, error) {
	if development {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func openStore(ctx context.Context, cfg config.Config, database *sql.DB) (session.Store, func(), error) {
	noop := func() {}
	switch cfg.SessionBackend {
	case "file":
		s, err := session.NewFileStore(cfg.SessionFile)
		return s, noop, err
	case "redis":
		svc, err := redissvc.Connect(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, noop, err
		}
		return session.NewRedisStore(svc.Rdb()), func() { svc.Close() }, nil
	case "postgres":
		s, err := session.NewPostgresStore(ctx, database)
		return s, noop, err
	}
	return session.NewMemoryStore(), noop, nil
}

// openUsers serves the directory from Postgres when a database is configured, seeded with
// the configured users.
func openUsers(ctx context.Context, cfg config.Config, database *sql.DB) (repo.UserRepository, error) {
	if database == nil {
		return repo.NewInMemoryUserRepository(cfg.Users), nil
	}
	r := repo.NewPostgresUserRepository(database)
	if err := r.Migrate(ctx, cfg.Users); err != nil {
		return nil, err
	}
	return r, nil
}
