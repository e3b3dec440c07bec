package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/franchiseos/franchiseos-go/internal/api"
	"github.com/franchiseos/franchiseos-go/internal/checklists"
	"github.com/franchiseos/franchiseos-go/internal/dealers"
	"github.com/franchiseos/franchiseos-go/internal/refresh"
	"github.com/franchiseos/franchiseos-go/internal/session"
	"github.com/franchiseos/franchiseos-go/pkg/config"
	"github.com/franchiseos/franchiseos-go/pkg/keystore"
	"github.com/franchiseos/franchiseos-go/pkg/logger"
	"github.com/franchiseos/franchiseos-go/pkg/metrics"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "dashboard-agent"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "dashboard-agent",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx = logg.WithField(ctx, "env", cfg.App.Env)

	keys, err := keystore.Open(ctx, cfg.Storage, cfg.Redis, logg)
	if err != nil {
		logg.Error(ctx, "failed to open credential storage", err)
		os.Exit(1)
	}
	defer func() {
		if err := keys.Close(); err != nil {
			logg.Error(ctx, "error closing credential storage", err)
		}
	}()

	sess, err := session.NewStore(session.Options{Keys: keys, Logger: logg})
	if err != nil {
		logg.Error(ctx, "failed to create session store", err)
		os.Exit(1)
	}

	requestMetrics := metrics.NewRequestMetrics(prometheus.DefaultRegisterer)
	client, err := api.NewClient(api.Options{
		BaseURL:   cfg.API.BaseURL,
		Timeout:   cfg.API.Timeout,
		UserAgent: cfg.API.UserAgent,
		Tokens:    sess,
		Logger:    logg,
		Metrics:   requestMetrics,
	})
	if err != nil {
		logg.Error(ctx, "failed to create api client", err)
		os.Exit(1)
	}
	sess.BindAPI(client)

	if err := sess.Rehydrate(ctx); err != nil {
		logg.Error(ctx, "failed to rehydrate session", err)
		os.Exit(1)
	}
	if sess.TokenPresent() {
		if err := sess.Refresh(ctx); err != nil {
			logg.Warn(ctx, "stored session could not be refreshed, login required")
		}
	}

	checklistStore, err := checklists.NewStore(client, logg)
	if err != nil {
		logg.Error(ctx, "failed to create checklist store", err)
		os.Exit(1)
	}
	dealerService, err := dealers.NewService(client, logg)
	if err != nil {
		logg.Error(ctx, "failed to create dealer service", err)
		os.Exit(1)
	}

	tokenJob, err := refresh.NewTokenJob(sess)
	if err != nil {
		logg.Error(ctx, "failed to create token job", err)
		os.Exit(1)
	}
	checklistsJob, err := refresh.NewChecklistsJob(checklistStore, sess)
	if err != nil {
		logg.Error(ctx, "failed to create checklists job", err)
		os.Exit(1)
	}
	dealersJob, err := refresh.NewDealersJob(dealerService, sess)
	if err != nil {
		logg.Error(ctx, "failed to create dealers job", err)
		os.Exit(1)
	}
	registry := refresh.NewRegistry(tokenJob, checklistsJob, dealersJob)

	refreshService, err := refresh.NewService(refresh.ServiceParams{
		Logger:   logg,
		Registry: registry,
		Metrics:  metrics.NewRefreshJobMetrics(prometheus.DefaultRegisterer),
		Interval: cfg.Refresh.Interval,
	})
	if err != nil {
		logg.Error(ctx, "failed to create refresh service", err)
		os.Exit(1)
	}

	debugServer := newDebugServer(cfg.Debug.Addr)
	go func() {
		logg.Info(logg.WithField(ctx, "addr", cfg.Debug.Addr), "debug listener starting")
		if err := debugServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "debug listener stopped unexpectedly", err)
		}
	}()

	logg.Info(ctx, "starting dashboard agent")
	runErr := refreshService.Run(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := debugServer.Shutdown(shutdownCtx); err != nil {
		logg.Error(ctx, "debug listener shutdown failed", err)
	}

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		logg.Error(ctx, "dashboard agent stopped unexpectedly", runErr)
		os.Exit(1)
	}
	logg.Info(ctx, "dashboard agent shutting down gracefully")
}

func newDebugServer(addr string) *http.Server {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Method(http.MethodGet, "/metrics", promhttp.Handler())
	return &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
