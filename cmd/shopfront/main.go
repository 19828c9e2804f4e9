package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/grandassist/shopfront/internal/app"
	"github.com/grandassist/shopfront/internal/auth"
	carthttp "github.com/grandassist/shopfront/internal/cart/http"
	"github.com/grandassist/shopfront/internal/catalog"
	"github.com/grandassist/shopfront/internal/export"
	"github.com/grandassist/shopfront/internal/orders"
	"github.com/grandassist/shopfront/internal/shared"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)
	slog.SetDefault(logger)

	catalogRepo := catalog.NewRepository(cfg.ProductsPath(), logger)
	ordersRepo := orders.NewRepository(cfg.OrdersPath(), logger)

	catalogService := catalog.NewService(catalogRepo)
	ordersService := orders.NewService(ordersRepo, catalogRepo)

	secret := auth.ResolveSecret(cfg.SecretsFile, cfg.AdminPassword, logger)
	authService := auth.NewService(secret)

	sessionManager := shared.NewSessionManager(cfg.SessionCookie, cfg.SessionTTL, cfg.IsProduction())

	router := app.NewRouter(app.RouterParams{
		Logger:         logger,
		Config:         cfg,
		SessionManager: sessionManager,
		AuthHandler:    auth.NewHandler(logger, authService),
		CatalogHandler: catalog.NewHandler(logger, catalogService),
		CartHandler:    carthttp.NewHandler(logger, catalogRepo),
		OrdersHandler:  orders.NewHandler(logger, ordersService),
		ExportHandler:  export.NewHandler(logger, catalogRepo, ordersRepo),
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
