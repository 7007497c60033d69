// Package httptransport assembles the public HTTP surface. Handlers stay
// thin and delegate to domain services; business logic never lives here.
package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Shozab-N18/StreamingServiceAPI/internal/platform/metrics"
	"github.com/Shozab-N18/StreamingServiceAPI/internal/platform/middleware"
	paymentHandler "github.com/Shozab-N18/StreamingServiceAPI/internal/payment/handler"
	userHandler "github.com/Shozab-N18/StreamingServiceAPI/internal/user/handler"
)

// NewRouter wires all public endpoints behind the shared middleware chain.
func NewRouter(
	users *userHandler.Handler,
	payments *paymentHandler.Handler,
	logger *slog.Logger,
	m *metrics.Metrics,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.ContentTypeJSON)
	r.Use(middleware.Latency(m))

	users.Register(r)
	payments.Register(r)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", promhttp.Handler())

	return r
}
