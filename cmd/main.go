// Package main provides entry point for the form-ingestion service.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"

	"github.com/charliemac24/myosystems/internal/auditlog"
	"github.com/charliemac24/myosystems/internal/config"
	"github.com/charliemac24/myosystems/internal/handler"
	"github.com/charliemac24/myosystems/internal/logger"
	"github.com/charliemac24/myosystems/internal/middleware"
	"github.com/charliemac24/myosystems/internal/notifier"
	"github.com/charliemac24/myosystems/internal/ratelimit"
)

// Run is the testable entrypoint for the application.
func Run(ctx context.Context) error {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	log.Info("Starting MYO Systems form receiver", zap.String("port", cfg.Port))

	var sender notifier.Sender
	if cfg.ResendAPIKey != "" {
		sender = resend.NewClient(cfg.ResendAPIKey).Emails
	} else {
		log.Warn("RESEND_API_KEY not set; email notifications disabled")
	}

	limiter := ratelimit.New(cfg.RateLimit, cfg.RateWindow)
	h := handler.New(
		log,
		limiter,
		auditlog.New(cfg.AuditDir),
		notifier.New(log, sender, cfg.NotifyFrom, cfg.NotifyTo),
		handler.NewValidator(),
	)

	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Get("/healthz", h.Healthz)
	r.Post("/api/contact", h.Contact)
	r.Post("/api/attendance-enquiry", h.AttendanceEnquiry)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go limiter.Start()
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()

	log.Info("Shutting down server")
	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctxShutdown)
	limiter.Stop()
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := Run(ctx); err != nil {
		os.Exit(1)
	}
}
