package main

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	ihttp "github.com/radieske/match-stats-platform/internal/ingest/http"
	kpub "github.com/radieske/match-stats-platform/internal/ingest/producer"
	"github.com/radieske/match-stats-platform/internal/ingest/repo"
	"github.com/radieske/match-stats-platform/internal/shared/config"
	"github.com/radieske/match-stats-platform/internal/shared/db"
	sharedkafka "github.com/radieske/match-stats-platform/internal/shared/kafka"
	"github.com/radieske/match-stats-platform/internal/shared/logger"
	"github.com/radieske/match-stats-platform/internal/shared/metrics"
)

func main() {
	cfg := config.Load()
	log, _ := logger.New(cfg.ServiceName, cfg.Env)
	defer log.Sync()

	// Postgres
	pg, err := db.ConnectPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("pg", zap.Error(err))
	}
	defer pg.Close()

	// Kafka writer (topic match_events_recorded), particionado por match_id
	writer := sharedkafka.NewWriter(cfg.KafkaBrokers, cfg.TopicMatchEvents)
	defer writer.Close()

	// deps
	eventStore := repo.NewPostgres(pg)
	publ := kpub.NewKafkaPublisher(writer, cfg.TopicMatchEvents)

	// HTTP público
	api := ihttp.NewServer(log, eventStore, publ, cfg.ServiceName)
	apiSrv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler: api.Router(),
	}

	// metrics/health
	metrics.StartMetricsServer(cfg.MetricsPort, func(ctx context.Context) error {
		return pg.PingContext(ctx)
	})
	log.Info("metrics/health", zap.String("addr", ":"+cfg.MetricsPort))

	log.Info("ingest-service listening", zap.String("addr", fmt.Sprintf(":%s", cfg.HTTPPort)))
	if err := apiSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("api", zap.Error(err))
	}
}
