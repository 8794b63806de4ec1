package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"adrotation/internal/adapter/filestore"
	httpadapter "adrotation/internal/adapter/http"
	"adrotation/internal/adapter/memory"
	"adrotation/internal/adapter/metrics"
	"adrotation/internal/adapter/postgres"
	redisstore "adrotation/internal/adapter/redis"
	"adrotation/internal/adapter/usecase"
	"adrotation/internal/config"
	"adrotation/internal/config/configs"
	"adrotation/internal/core/port"
	"adrotation/internal/db"
	"adrotation/internal/logger"
)

// main loads configuration, wires the stores selected by it and runs the
// HTTP server until SIGINT or SIGTERM, then shuts it down gracefully.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	log, closeLog := logger.New(cfg.Log, os.Stdout)
	log = log.With(slog.String("env", cfg.Env))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = run(ctx, cfg, log)
	cancel()
	if err != nil {
		log.Error("service stopped", slog.Any("error", err))
	}
	_ = closeLog.Close()
	if err != nil {
		os.Exit(1)
	}
}

// stores groups the storage ports chosen by configuration.
type stores struct {
	campaigns port.CampaignRepository
	lister    port.CampaignLister
	serving   port.CampaignStore
	files     port.FileRepository
	counters  port.ConsumedReader
	listeners []port.CampaignListener
	close     []func()
}

func (s *stores) Close() {
	for i := len(s.close) - 1; i >= 0; i-- {
		s.close[i]()
	}
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	st, err := openStores(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer st.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	files, err := filestore.NewOnDisk(cfg.Files.Dir, st.files, cfg.Files.BaseURL, log)
	if err != nil {
		return err
	}

	serving := usecase.NewServingCoordinator(
		st.serving,
		usecase.PriceSelector{},
		usecase.NewStoreMeter(st.serving),
		usecase.WithObserver(metrics.NewServing(reg)),
		usecase.WithLogger(log),
	)
	opts := []usecase.UseCaseOption{
		usecase.WithListeners(st.listeners...),
		usecase.WithListeners(usecase.NewBannerJanitor(files, log)),
	}
	if st.counters != nil {
		opts = append(opts, usecase.WithConsumedReader(st.counters))
	}
	svc := usecase.NewAdvertisementUseCase(st.campaigns, files, serving, log, opts...)

	if cfg.Psql.Seed {
		n, err := db.Seed(ctx, svc, st.lister)
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		log.Info("demo campaigns seeded", slog.Int("count", n))
	}

	handler := httpadapter.NewHandler(svc, log, httpadapter.Options{
		MaxUploadBytes: cfg.HTTP.MaxUploadBytes,
		RunTimeout:     cfg.HTTP.RunTimeout,
		FilesPrefix:    cfg.Files.BaseURL,
		Files:          files.Handler(),
		Metrics:        promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
		Middleware:     []func(http.Handler) http.Handler{metrics.NewHTTP(reg).Middleware},
	})
	srv := &http.Server{
		Addr:        fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:     handler.Router(),
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		log.Info("server gracefully stopped")
		return nil
	})
	return g.Wait()
}

func openStores(ctx context.Context, cfg config.Config, log *slog.Logger) (*stores, error) {
	st := &stores{}

	switch cfg.Store.Backend {
	case configs.BackendMemory:
		mem := memory.NewStore()
		st.campaigns, st.lister, st.serving, st.files = mem, mem, mem, mem
		log.Warn("using in-memory store, campaigns are lost on restart")
	default:
		if cfg.Psql.RunMigrations {
			before, err := db.Migrate(cfg.Psql.Addr)
			if err != nil {
				return nil, fmt.Errorf("migrate: %w", err)
			}
			log.Info("migrations applied", slog.Uint64("from_version", uint64(before)))
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return nil, fmt.Errorf("database connection: %w", err)
		}
		st.close = append(st.close, pool.Close)
		repo := postgres.NewCampaignRepository(pool)
		st.campaigns, st.lister, st.serving = repo, repo, repo
		st.files = postgres.NewFileRepository(pool)
	}

	if cfg.Store.Meter == configs.MeterRedis {
		client, err := db.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			st.Close()
			return nil, fmt.Errorf("redis connection: %w", err)
		}
		st.close = append(st.close, func() { _ = client.Close() })
		counters := redisstore.NewCounterStore(client, st.lister, cfg.Redis.KeyPrefix)
		st.serving = counters
		st.counters = counters
		st.listeners = append(st.listeners, counters)
		log.Info("displays are metered in redis", slog.String("address", cfg.Redis.Address))
	}
	return st, nil
}
