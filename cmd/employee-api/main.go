package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/employee-api/internal/config"
	"github.com/deppfellow/employee-api/internal/handler"
	"github.com/deppfellow/employee-api/internal/logger"
	"github.com/deppfellow/employee-api/internal/repository"
	"github.com/deppfellow/employee-api/internal/router"
	"github.com/deppfellow/employee-api/internal/server"
	"github.com/deppfellow/employee-api/internal/service"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 30 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("application error")
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	appLogger := logger.NewLoggerWithService(cfg.Observability, loggerService)

	srv, err := server.New(cfg, &appLogger, loggerService)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	repos := repository.NewRepositories(srv)
	services := service.NewServices(srv, repos)
	handlers := handler.NewHandlers(srv, services)

	srv.SetupHTTPServer(router.NewRouter(srv, handlers))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case <-ctx.Done():
		appLogger.Info().Msg("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	appLogger.Info().Msg("server stopped gracefully")
	return nil
}
