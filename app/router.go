package app

import (
	"context"
	"net/http"
	"time"

	authhandlers "github.com/Black-And-White-Club/budtender-trivia/app/modules/auth/infrastructure/handlers"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/httpjson"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const healthTimeout = 2 * time.Second

func (app *App) newRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(authhandlers.CorrelationMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(authhandlers.CORSMiddleware(app.Config.HTTP.AllowedOrigins))

	r.Get("/healthz", app.handleHealth)
	if app.Config.Observability.MetricsAddress == "" {
		r.Handle("/metrics", app.metricsHandler())
	}
	return r
}

func (app *App) metricsHandler() http.Handler {
	return promhttp.HandlerFor(app.Observability.Registry, promhttp.HandlerOpts{})
}

func (app *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := app.db.GetDB().PingContext(ctx); err != nil {
		app.logger.ErrorContext(ctx, "Health check failed", "error", err)
		httpjson.Message(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	httpjson.Message(w, http.StatusOK, "ok")
}
