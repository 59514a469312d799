package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eagleeyes/storefront/internal/api"
	"github.com/eagleeyes/storefront/internal/auth"
	"github.com/eagleeyes/storefront/internal/catalog"
	"github.com/eagleeyes/storefront/internal/config"
	"github.com/eagleeyes/storefront/internal/events"
	"github.com/eagleeyes/storefront/internal/logger"
	"github.com/eagleeyes/storefront/internal/metrics"
	"github.com/eagleeyes/storefront/internal/repository/memory"
	"github.com/eagleeyes/storefront/internal/services"
	"github.com/eagleeyes/storefront/internal/worker"
)

func main() {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metrics.Init()

	wp := worker.NewPool(cfg.WorkerCount)
	defer wp.Stop()

	bus := events.NewBus(log)
	defer func() {
		if err := bus.Close(); err != nil {
			log.Error("event bus close", logger.Err(err))
		}
	}()

	seed, err := services.SeedUsers(auth.NewHasher(cfg.BcryptCost), catalog.Users())
	if err != nil {
		log.Error("seed users", logger.Err(err))
		os.Exit(1)
	}
	repos := memory.NewRepositories(seed)

	if err := events.NewAuditRecorder(repos.AuditLogs, log).Start(ctx, bus); err != nil {
		log.Error("audit recorder", logger.Err(err))
		os.Exit(1)
	}

	userSvc := services.NewUserService(repos.Users, cfg, wp, bus, log)
	cartSvc := services.NewCartService(log)
	catalogSvc := services.NewCatalogService(repos.Products, repos.Courses, repos.BlogPosts)
	adminSvc := services.NewAdminService(repos.Products, repos.Courses, repos.BlogPosts, bus, log)
	gateway := services.NewSimulatedGateway(wp, cfg.PaymentLatency, cfg.AsyncTimeout)
	checkoutSvc := services.NewCheckoutService(userSvc, cartSvc, repos.Products, repos.Orders, gateway, bus, cfg, log)

	r := api.NewRouter(api.RouterDeps{
		Cfg:         cfg,
		Log:         log,
		TM:          auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.SessionTTL),
		UserSvc:     userSvc,
		CartSvc:     cartSvc,
		CatalogSvc:  catalogSvc,
		AdminSvc:    adminSvc,
		CheckoutSvc: checkoutSvc,
		AuditLogs:   repos.AuditLogs,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort, "env", cfg.Env, "enforce_stock", cfg.EnforceStock)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server", logger.Err(err))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", logger.Err(err))
	}
}
