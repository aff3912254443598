package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"golang.org/x/sync/errgroup"

	"github.com/wheels-hub/wheels-hub/internal/app"
	"github.com/wheels-hub/wheels-hub/internal/auth"
	"github.com/wheels-hub/wheels-hub/internal/expenses"
	"github.com/wheels-hub/wheels-hub/internal/inventory"
	"github.com/wheels-hub/wheels-hub/internal/platform/cache"
	"github.com/wheels-hub/wheels-hub/internal/platform/db"
	"github.com/wheels-hub/wheels-hub/internal/procurement"
	"github.com/wheels-hub/wheels-hub/internal/rbac"
	"github.com/wheels-hub/wheels-hub/internal/returns"
	"github.com/wheels-hub/wheels-hub/internal/sales"
	"github.com/wheels-hub/wheels-hub/internal/shared"
	"github.com/wheels-hub/wheels-hub/internal/suppliers"
	"github.com/wheels-hub/wheels-hub/internal/twofactor"
	"github.com/wheels-hub/wheels-hub/internal/users"
	"github.com/wheels-hub/wheels-hub/jobs"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	dbpool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer dbpool.Close()

	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Error("connect redis", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	sessionManager := shared.NewSessionManager(redisClient, "wheels_session", cfg.SessionSecret, cfg.SessionTTL, cfg.IsProduction())
	csrfManager := shared.NewCSRFManager(cfg.CSRFSecret)
	activityLogger := shared.NewActivityLogger(dbpool)

	jobClient, err := jobs.NewClient(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
	if err != nil {
		logger.Error("init job client", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := jobClient.Close(); err != nil {
			logger.Warn("job client close", slog.Any("error", err))
		}
	}()

	twoFactorRepo := twofactor.NewRepository(dbpool)
	twoFactorService := twofactor.NewService(twoFactorRepo, redisClient, jobs.NewQueueMailer(jobClient), cfg.TOTPIssuer, cfg.EmailCodeTTL)
	twoFactorHandler := twofactor.NewHandler(logger, twoFactorService)

	authRepo := auth.NewRepository(dbpool)
	authService := auth.NewService(authRepo, activityLogger)
	authHandler := auth.NewHandler(logger, authService, sessionManager, csrfManager, twoFactorService)

	guard := rbac.Middleware{Logger: logger}

	inventoryRepo := inventory.NewPGRepository(dbpool)
	inventoryEvents := inventory.NewPublisher(redisClient)
	inventoryService := inventory.NewService(inventoryRepo, inventoryEvents, activityLogger, logger)
	inventoryStream := inventory.NewStream(redisClient, logger)
	inventoryHandler := inventory.NewHandler(logger, inventoryService, inventoryStream, guard)

	usersService := users.NewService(users.NewRepository(dbpool), activityLogger, sessionManager)
	usersHandler := users.NewHandler(logger, usersService, guard)

	inspector := asynq.NewInspector(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
	defer func() {
		if err := inspector.Close(); err != nil {
			logger.Warn("inspector close", slog.Any("error", err))
		}
	}()

	router := app.NewRouter(app.RouterParams{
		Logger:              logger,
		Config:              cfg,
		SessionManager:      sessionManager,
		CSRFManager:         csrfManager,
		AuthHandler:         authHandler,
		TwoFactorHandler:    twoFactorHandler,
		CapabilitiesHandler: &rbac.Handler{},
		InventoryHandler:    inventoryHandler,
		ProcurementHandler:  procurement.NewHandler(guard),
		SuppliersHandler:    suppliers.NewHandler(guard),
		ExpensesHandler:     expenses.NewHandler(guard),
		ReturnsHandler:      returns.NewHandler(guard),
		SalesHandler:        sales.NewHandler(guard),
		UsersHandler:        usersHandler,
		JobHandler:          jobs.NewHandler(inspector, logger),
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil && err != context.Canceled {
		logger.Error("server exit", slog.Any("error", err))
		os.Exit(1)
	}
}
