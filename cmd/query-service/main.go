package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/radieske/match-stats-platform/internal/query/http"
	"github.com/radieske/match-stats-platform/internal/query/repo"
	"github.com/radieske/match-stats-platform/internal/query/ws"
	"github.com/radieske/match-stats-platform/internal/shared/cache"
	"github.com/radieske/match-stats-platform/internal/shared/config"
	"github.com/radieske/match-stats-platform/internal/shared/db"
	"github.com/radieske/match-stats-platform/internal/shared/logger"
	"github.com/radieske/match-stats-platform/internal/shared/metrics"
)

func main() {
	cfg := config.Load()
	log, err := logger.New(cfg.ServiceName, cfg.Env)
	if err != nil {
		panic(fmt.Errorf("logger init: %w", err))
	}
	defer log.Sync()

	log.Info("starting service", zap.String("service", cfg.ServiceName), zap.String("env", cfg.Env))

	// conecta com db Postgres
	pg, err := db.ConnectPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()
	log.Info("postgres connected")

	// conecta com Redis (feed ao vivo via pub/sub)
	redisClient, err := cache.ConnectRedis(cfg.RedisAddr)
	if err != nil {
		log.Fatal("failed to connect redis", zap.Error(err))
	}
	defer redisClient.Close()
	log.Info("redis connected")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// hub WebSocket alimentado pelo canal de broadcast do stats-worker
	hub := ws.NewHub(func(r *http.Request) bool { return true })
	ws.StartRedisSubscriber(ctx, redisClient, cfg.RedisPubSubChannel, hub, log)

	api := &httpapi.API{
		Log:    log,
		Reader: &repo.ReadRepo{DB: pg},
		Hub:    hub,
	}
	apiSrv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler: api.Router(),
	}

	// metrics/health
	metrics.StartMetricsServer(cfg.MetricsPort, func(ctx context.Context) error {
		if err := pg.PingContext(ctx); err != nil {
			return err
		}
		return redisClient.Ping(ctx).Err()
	})
	log.Info("metrics/health", zap.String("addr", ":"+cfg.MetricsPort))

	log.Info("query-service listening", zap.String("addr", fmt.Sprintf(":%s", cfg.HTTPPort)))
	if err := apiSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("api", zap.Error(err))
	}
}
