package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/freightdesk/freightdesk-go/internal/config"
	"github.com/freightdesk/freightdesk-go/internal/handler"
	"github.com/freightdesk/freightdesk-go/internal/repository"
	"github.com/freightdesk/freightdesk-go/internal/service"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	authService := service.NewAuthService(repository.NewAuthRepository(db), cfg.JWTSecret, cfg.JWTExpiry)
	companyService := service.NewCompanyService(repository.NewCompanyRepository(db))
	packageService := service.NewPackageService(repository.NewPackageRepository(db))
	userService := service.NewUserService(repository.NewUserRepository(db))

	router := handler.NewRouter(
		handler.NewAuthHandler(authService),
		handler.NewCompanyHandler(companyService),
		handler.NewPackageHandler(packageService),
		handler.NewUserHandler(userService),
		cfg.JWTSecret,
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
