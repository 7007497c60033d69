package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Shozab-N18/StreamingServiceAPI/internal/platform/config"
	"github.com/Shozab-N18/StreamingServiceAPI/internal/platform/httpserver"
	"github.com/Shozab-N18/StreamingServiceAPI/internal/platform/logger"
	"github.com/Shozab-N18/StreamingServiceAPI/internal/platform/metrics"
	paymentHandler "github.com/Shozab-N18/StreamingServiceAPI/internal/payment/handler"
	paymentService "github.com/Shozab-N18/StreamingServiceAPI/internal/payment/service"
	paymentStore "github.com/Shozab-N18/StreamingServiceAPI/internal/payment/store"
	httptransport "github.com/Shozab-N18/StreamingServiceAPI/internal/transport/http"
	userHandler "github.com/Shozab-N18/StreamingServiceAPI/internal/user/handler"
	userService "github.com/Shozab-N18/StreamingServiceAPI/internal/user/service"
	userStore "github.com/Shozab-N18/StreamingServiceAPI/internal/user/store"
	"github.com/Shozab-N18/StreamingServiceAPI/pkg/credential"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the feature services. Both
// registries are volatile: state resets on every restart.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)
	m := metrics.New()
	hasher := credential.NewBcryptHasher(cfg.BcryptCost)

	users := userService.New(userStore.NewInMemory(), hasher,
		userService.WithLogger(log),
		userService.WithMetrics(m),
	)
	payments := paymentService.New(paymentStore.NewInMemory(), users,
		paymentService.WithLogger(log),
		paymentService.WithMetrics(m),
	)

	router := httptransport.NewRouter(
		userHandler.New(users, log),
		paymentHandler.New(payments, log),
		log, m,
	)
	srv := httpserver.New(cfg.Addr, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting streaming service api", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}
