package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/orgable/orgable/internal/config"
	httpserver "github.com/orgable/orgable/internal/http"
	"github.com/orgable/orgable/internal/http/middleware"
	"github.com/orgable/orgable/internal/httputil"
	"github.com/orgable/orgable/pkg/auth"
	"github.com/orgable/orgable/pkg/repository"
	"github.com/orgable/orgable/pkg/tenant"
)

func main() {
	// Load .env file if present (ignore error if not found)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	db, err := repository.NewDB(repository.Config{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
		SSLMode:  cfg.DBSSLMode,
	})
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	logger.Info("connected to database")

	if err := repository.ApplyMigrations(db); err != nil {
		logger.Error("failed to apply migrations", "error", err)
		os.Exit(1)
	}

	// Repositories
	tenantsRepo := repository.NewTenantsRepository(db)
	usersRepo := repository.NewUsersRepository(db)
	sessionsRepo := repository.NewSessionsRepository(db)
	settingsRepo := repository.NewOrgSettingsRepository(db)
	views := repository.NewViewFactory(usersRepo, sessionsRepo, settingsRepo)

	// Services
	resolver := tenant.NewResolver(cfg.LoopbackHosts)
	directory := tenant.NewDirectory(tenantsRepo, logger)
	sessionService := auth.NewSessionService(auth.SessionConfig{TTL: cfg.SessionTTL}, sessionsRepo)
	credentialsService := auth.NewCredentialsService(usersRepo)
	gate := auth.NewGate(resolver, directory, sessionService, usersRepo)

	sweeper := auth.NewSweeper(sessionService, logger, cfg.SweepInterval)
	sweeper.Start()

	router := httpserver.NewRouter(httpserver.RouterConfig{
		Logger:            logger,
		Resolver:          resolver,
		Directory:         directory,
		Credentials:       credentialsService,
		Sessions:          sessionService,
		Gate:              gate,
		Views:             views,
		Cookies:           httputil.CookieConfig{Secure: cfg.CookieSecure, Domain: cfg.CookieDomain},
		TrustTenantHeader: cfg.TrustTenantHeader,
		UnresolvedPolicy:  middleware.Policy(cfg.TenantUnresolvedPolicy),
	})

	addr := fmt.Sprintf("%s:%d", cfg.ServerAddr, cfg.ServerPort)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("starting server", "addr", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	sweeper.Stop()

	logger.Info("server stopped")
}
