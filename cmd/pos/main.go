package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/nikolayk812/pos-demo/internal/cart"
	"github.com/nikolayk812/pos-demo/internal/catalog"
	"github.com/nikolayk812/pos-demo/internal/checkout"
	"github.com/nikolayk812/pos-demo/internal/config"
	"github.com/nikolayk812/pos-demo/internal/logger"
	"github.com/nikolayk812/pos-demo/internal/metrics"
	"github.com/nikolayk812/pos-demo/internal/notify"
	"github.com/nikolayk812/pos-demo/internal/payment"
	"github.com/nikolayk812/pos-demo/internal/port"
	"github.com/nikolayk812/pos-demo/internal/repository"
	"github.com/nikolayk812/pos-demo/internal/submitter"
	"github.com/nikolayk812/pos-demo/internal/totals"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const serviceName = "pos"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logger.New(logger.Options{ServiceName: serviceName, Output: os.Stderr})

	if err := godotenv.Load(); err != nil {
		log.Warn(ctx, ".env file not found, relying on environment", nil)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}

	log = logger.New(logger.Options{
		ServiceName: serviceName,
		Level:       logger.ParseLevel(cfg.LogLevel),
		Format:      cfg.LogFormat,
		Output:      os.Stderr,
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Error(ctx, "register stopped", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	provider, closeCatalog, err := newCatalog(ctx, cfg)
	if err != nil {
		return fmt.Errorf("newCatalog: %w", err)
	}
	defer closeCatalog()

	reg := prometheus.NewRegistry()
	if cfg.MetricsAddr != "" {
		srv := &http.Server{
			Addr:              cfg.MetricsAddr,
			Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error(ctx, "metrics server failed", err)
			}
		}()
		defer srv.Close()
	}

	var sale port.SaleSubmitter = submitter.NewSimulated(cfg.SubmitDelay)
	if cfg.Breaker.Enabled {
		sale = submitter.NewBreaker(sale, submitter.BreakerConfig{
			MaxFailures: cfg.Breaker.MaxFailures,
			OpenTimeout: cfg.Breaker.OpenTimeout,
		}, log)
	}

	store := cart.New()
	selector := payment.NewSelector(cfg.Methods()...)
	calc := totals.NewCalculator(cfg.Currency(), totals.RateTax(cfg.TaxRate()))

	ctrl, err := checkout.NewController(store, selector, calc, sale,
		checkout.WithNotifier(notify.Fanout{notify.NewLog(log), screen{out: os.Stdout}}),
		checkout.WithLogger(log),
		checkout.WithMetrics(metrics.NewCheckoutMetrics(reg)),
		checkout.WithTimeout(cfg.SubmitTimeout),
	)
	if err != nil {
		return fmt.Errorf("checkout.NewController: %w", err)
	}

	r := &register{
		catalog: provider,
		cart:    store,
		payment: selector,
		ctrl:    ctrl,
		out:     os.Stdout,
	}
	return r.Run(ctx, os.Stdin)
}

// newCatalog uses Postgres when a DSN is configured, seeding it with the sample
// shelf, and the in-memory sample catalog otherwise.
func newCatalog(ctx context.Context, cfg *config.Config) (port.CatalogProvider, func(), error) {
	if cfg.CatalogDSN == "" {
		return catalog.NewSample(), func() {}, nil
	}

	pool, err := pgxpool.New(ctx, cfg.CatalogDSN)
	if err != nil {
		return nil, nil, fmt.Errorf("pgxpool.New: %w", err)
	}

	repo, err := repository.NewCatalog(pool)
	if err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("repository.NewCatalog: %w", err)
	}

	if _, err := repo.Seed(ctx, catalog.SampleItems()); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("repo.Seed: %w", err)
	}

	return repo, pool.Close, nil
}
