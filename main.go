package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ynot-advisory/landing/handlers"
	"github.com/ynot-advisory/landing/inits"
	"github.com/ynot-advisory/landing/metrics"
	"github.com/ynot-advisory/landing/notify"
	"github.com/ynot-advisory/landing/operations"
	"github.com/ynot-advisory/landing/routines"
	"github.com/ynot-advisory/landing/validators"
)

func main() {
	cfg, err := inits.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	logger, err := inits.NewLogger(cfg.LogLevel, cfg.Release())
	if err != nil {
		log.Fatalf("Error building logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	submitter, err := newSubmitter(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to set up submitter", zap.Error(err))
	}

	h := &handlers.Handler{
		BasePath:         cfg.BasePath,
		TurnstileSiteKey: cfg.TurnstileSiteKey,
		Submitter:        submitter,
		Verifier: validators.NewTurnstileVerifier(validators.TurnstileConfig{
			Secret:    cfg.TurnstileSecretKey,
			TestToken: cfg.TestToken,
			Release:   cfg.Release(),
		}, logger),
		Metrics: metrics.NewContactMetrics(prometheus.DefaultRegisterer),
		Logger:  logger,
	}
	router := handlers.NewRouter(h, handlers.RouterConfig{
		RateLimitPerMinute: cfg.RateLimitPerMinute,
		AllowedHosts:       cfg.AllowedHosts,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server starting",
			zap.String("addr", srv.Addr),
			zap.String("base_path", cfg.BasePath),
			zap.String("submit_mode", submitter.Mode()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

func newSubmitter(ctx context.Context, cfg *inits.Config, logger *zap.Logger) (operations.Submitter, error) {
	if cfg.SubmitMode == inits.SubmitModeSimulate {
		return operations.NewSimulatedSubmitter(cfg.SimulatedDelay, logger), nil
	}

	db, err := inits.DBInit()
	if err != nil {
		return nil, err
	}
	store := operations.NewSubmissionStore(db)
	go routines.StartCleanupRoutine(ctx, store, cfg.CleanupInterval, logger)

	var sender notify.EmailSender = notify.NewStubEmailSender(logger)
	if sg := notify.NewSendGridSender(notify.SendGridConfig{
		APIKey:    cfg.SendGridAPIKey,
		FromEmail: cfg.SendGridFromEmail,
		FromName:  cfg.SendGridFromName,
	}, logger); sg != nil {
		sender = sg
	} else {
		logger.Warn("SENDGRID_API_KEY not set, contact emails will only be logged")
	}

	return operations.NewDeliveringSubmitter(store, sender, operations.DeliveryConfig{
		Inbox:           cfg.ContactInbox,
		Retention:       cfg.Retention,
		DuplicateWindow: cfg.DuplicateWindow,
	}, logger), nil
}
