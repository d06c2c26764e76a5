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

	"go.uber.org/zap"

	"github.com/rogerio-castellano/qr-tracker/internal/config"
	"github.com/rogerio-castellano/qr-tracker/internal/db"
	"github.com/rogerio-castellano/qr-tracker/internal/enrich"
	"github.com/rogerio-castellano/qr-tracker/internal/http/handlers"
	rl "github.com/rogerio-castellano/qr-tracker/internal/http/rate_limiter"
	"github.com/rogerio-castellano/qr-tracker/internal/http/router"
	"github.com/rogerio-castellano/qr-tracker/internal/logger"
	"github.com/rogerio-castellano/qr-tracker/internal/redissvc"
	"github.com/rogerio-castellano/qr-tracker/internal/repo"
	"github.com/rogerio-castellano/qr-tracker/internal/samples"
)

// @title QR Tracker API
// @version 1.0
// @description REST API that records QR scans and resolves them against a product catalog.
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintln(os.Stderr, "❌ invalid configuration:", err)
		os.Exit(1)
	}

	log, err := logger.Init(cfg.LogMode, cfg.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "❌ could not initialise logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

type stores struct {
	products repo.ProductRepository
	scans    repo.ScanRepository
	metrics  repo.MetricsRepository
	close    func() error
}

func openStores(ctx context.Context, cfg config.Config) (stores, error) {
	switch cfg.Backend {
	case config.BackendPostgres:
		database, err := db.Connect(cfg.DatabaseURL)
		if err != nil {
			return stores{}, err
		}
		if err := db.CreateSchema(database); err != nil {
			database.Close()
			return stores{}, err
		}
		return stores{
			products: repo.NewPostgresProductRepository(database, cfg.StoreTimeout),
			scans:    repo.NewPostgresScanRepository(database, cfg.StoreTimeout),
			metrics:  repo.NewPostgresMetricsRepository(database, cfg.StoreTimeout),
			close:    database.Close,
		}, nil

	case config.BackendRedis:
		rs, err := redissvc.Connect(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return stores{}, err
		}
		return stores{
			products: repo.NewRedisProductRepository(rs.Rdb(), cfg.StoreTimeout),
			scans:    repo.NewRedisScanRepository(rs.Rdb(), cfg.StoreTimeout),
			close:    rs.Close,
		}, nil

	default:
		return stores{
			products: repo.NewInMemoryProductRepository(),
			scans:    repo.NewInMemoryScanRepository(),
			close:    func() error { return nil },
		}, nil
	}
}

func run(cfg config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStores(ctx, cfg)
	if err != nil {
		return fmt.Errorf("could not open %s store: %w", cfg.Backend, err)
	}
	defer st.close()
	log.Info("✅ store ready", zap.String("backend", cfg.Backend))

	handlers.SetProductRepo(st.products)
	handlers.SetScanRepo(st.scans)
	handlers.SetMetricsRepo(st.metrics)
	handlers.SetEnricher(enrich.NewService(st.products, cfg.EnrichBatch))
	handlers.SetQRServiceURL(cfg.QRServiceURL)

	if cfg.SeedSamples {
		n, err := samples.Seed(ctx, st.products)
		if err != nil {
			return err
		}
		log.Info("sample products seeded", zap.Int("created", n))
	}

	limiter := rl.New(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go limiter.StartCleanupLoop(ctx, time.Minute)

	opts := []router.Option{router.WithLogger(log), router.WithRateLimiter(limiter)}
	if cfg.StaticDir != "" {
		opts = append(opts, router.WithStaticDir(cfg.StaticDir))
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router.NewRouter(opts...),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("✅ server running", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
