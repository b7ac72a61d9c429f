// Command server runs the clinical score calculation HTTP service.
//
// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the internal score packages.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"medcalc/internal/platform/config"
	"medcalc/internal/platform/httpserver"
	"medcalc/internal/platform/logger"
	"medcalc/internal/platform/middleware"
	"medcalc/internal/score"
	"medcalc/internal/score/calculators"
	"medcalc/internal/score/handler"
	scoremetrics "medcalc/internal/score/metrics"
	"medcalc/pkg/platform/httputil"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		_, _ = os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := logger.New(cfg.LogFormat, cfg.LogLevel)

	registry, err := score.NewRegistry(calculators.All()...)
	if err != nil {
		log.Error("registry construction failed", "error", err)
		os.Exit(1)
	}

	svc, err := score.NewService(registry,
		score.WithLogger(log),
		score.WithMetrics(scoremetrics.New()),
	)
	if err != nil {
		log.Error("service construction failed", "error", err)
		os.Exit(1)
	}

	router := newRouter(cfg, log, svc)
	srv := httpserver.New(cfg.Addr, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting medcalc server",
			"addr", cfg.Addr,
			"scores", registry.Len(),
			"auth_enabled", cfg.AuthEnabled(),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down")
		return httpserver.Shutdown(srv)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}

func newRouter(cfg config.Server, log *slog.Logger, svc *score.Service) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recover(log))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]any{
			"status": "ok",
			"scores": svc.Registry().Len(),
		})
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Group(func(api chi.Router) {
		if cfg.AuthEnabled() {
			api.Use(middleware.RequireAuth(middleware.NewHMACValidator(cfg.JWTSigningKey), log))
		}
		handler.New(svc, log).Register(api)
	})

	return r
}
