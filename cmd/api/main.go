package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"scent-shop/internal/config"
	"scent-shop/internal/database"
	"scent-shop/internal/handler"
	"scent-shop/internal/repository"
	"scent-shop/internal/router"
	"scent-shop/internal/security"
	"scent-shop/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting scent-shop API server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// One pool for the whole process, shared by every repository.
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool, logger); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	tokens, err := security.NewTokenManager(cfg.Auth.TokenSecret)
	if err != nil {
		return fmt.Errorf("failed to initialize token manager: %w", err)
	}

	passwords, err := security.NewPasswordMatcher(cfg.Auth.PasswordScheme)
	if err != nil {
		return fmt.Errorf("failed to initialize password matcher: %w", err)
	}

	// Initialize repositories
	productRepo := repository.NewProductRepository(pool, logger)
	categoryRepo := repository.NewCategoryRepository(pool, logger)
	memberRepo := repository.NewMemberRepository(pool, logger)

	// Initialize services
	productService := service.NewProductService(productRepo, logger)
	categoryService := service.NewCategoryService(categoryRepo, logger)
	authService := service.NewAuthService(memberRepo, tokens, passwords, logger)

	mux := router.New(router.Dependencies{
		ProductHandler:  handler.NewProductHandler(productService, logger),
		CategoryHandler: handler.NewCategoryHandler(categoryService, logger),
		AuthHandler:     handler.NewAuthHandler(authService, logger),
		HealthHandler:   handler.NewHealthHandler(pool, logger),
		Verifier:        authService,
		RequireToken:    cfg.Auth.RequireToken,
		Logger:          logger,
	})

	if !cfg.Auth.RequireToken {
		logger.Warn().Msg("catalog writes are not token-protected (AUTH_REQUIRE_TOKEN=false)")
	}

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
