package service

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/talx-hub/gopher-accounts/internal/api/handlers"
	"github.com/talx-hub/gopher-accounts/internal/dbmanager"
	"github.com/talx-hub/gopher-accounts/internal/model"
	"github.com/talx-hub/gopher-accounts/internal/repo"
	"github.com/talx-hub/gopher-accounts/internal/router"
	"github.com/talx-hub/gopher-accounts/internal/service/accounts"
	"github.com/talx-hub/gopher-accounts/internal/service/config"
	"github.com/talx-hub/gopher-accounts/internal/utils/hasher"
	"github.com/talx-hub/gopher-accounts/internal/utils/logger"
)

func initService(log *slog.Logger) (*chi.Mux, *config.Config, *dbmanager.DBManager) {
	cfg := config.NewBuilder(log).
		FromEnv().
		FromFlags().
		GetConfig()

	log = logger.New(logger.ParseLevel(cfg.LogLevel))
	slog.SetDefault(log)

	const connectTO = 5 * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), connectTO)
	defer cancel()
	dbManager := dbmanager.New(cfg.DatabaseURI, log).
		Connect(ctx).
		ApplyMigrations(ctx).
		Ping(ctx)
	if err := dbManager.Error(); err != nil {
		log.LogAttrs(context.Background(),
			slog.LevelError,
			"failed to start service: db connection error",
			slog.Any(model.KeyLoggerError, err),
		)
		dbManager.Close()
		return nil, nil, nil
	}

	db, err := dbManager.GetPool(ctx)
	if err != nil {
		log.LogAttrs(context.Background(),
			slog.LevelError,
			"failed to start service: failed to get DB pool",
			slog.Any(model.KeyLoggerError, err),
		)
		dbManager.Close()
		return nil, nil, nil
	}

	usersRepo := repo.NewUserRepository(db, log)
	accountService := accounts.New(usersRepo, hasher.New(cfg.BcryptCost),
		accounts.Options{
			MinPasswordEntropy:         cfg.MinPasswordEntropy,
			EnforceLoginPasswordPolicy: cfg.EnforceLoginPasswordPolicy,
		})

	rr := router.New(cfg, log)
	rr.SetRouter(&struct {
		*handlers.AuthHandler
		*handlers.UserHandler
		*handlers.HealthHandler
	}{
		AuthHandler:   handlers.NewAuthHandler(accountService, cfg.SecretKey),
		UserHandler:   handlers.NewUserHandler(accountService),
		HealthHandler: handlers.NewHealthHandler(dbManager),
	})

	return rr.GetRouter(), cfg, dbManager
}

func RunServer() {
	log := slog.Default()
	mux, cfg, dbManager := initService(log)
	if mux == nil {
		log.LogAttrs(context.TODO(),
			slog.LevelError,
			"failed to init service",
		)
		return
	}
	defer dbManager.Close()

	if cfg.SecretKey == "" {
		slog.Default().LogAttrs(context.TODO(),
			slog.LevelWarn,
			"SECRET_KEY is empty, issued tokens are not protected",
		)
	}

	err := http.ListenAndServe(cfg.RunAddr, mux)
	if err != nil {
		slog.Default().LogAttrs(context.TODO(),
			slog.LevelError,
			"listen and serve error",
			slog.Any(model.KeyLoggerError, err),
		)
	}
}
