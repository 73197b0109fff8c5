package main

import (
	"context"
	"encoding/json"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/radieske/match-stats-platform/pkg/contracts/events"

	sharedcache "github.com/radieske/match-stats-platform/internal/shared/cache"
	"github.com/radieske/match-stats-platform/internal/shared/config"
	"github.com/radieske/match-stats-platform/internal/shared/db"
	sharedkafka "github.com/radieske/match-stats-platform/internal/shared/kafka"
	"github.com/radieske/match-stats-platform/internal/shared/logger"
	"github.com/radieske/match-stats-platform/internal/shared/metrics"
	"github.com/radieske/match-stats-platform/internal/stats/aggregator"
	"github.com/radieske/match-stats-platform/internal/stats/consumer"
	"github.com/radieske/match-stats-platform/internal/stats/pubsub"
	"github.com/radieske/match-stats-platform/internal/stats/repo"
)

func main() {
	cfg := config.Load()
	log, err := logger.New(cfg.ServiceName, cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// Inicializa dependências: Postgres e Redis
	pg, err := db.ConnectPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("postgres connect", zap.Error(err))
	}
	defer pg.Close()

	redisClient, err := sharedcache.ConnectRedis(cfg.RedisAddr)
	if err != nil {
		log.Fatal("redis connect", zap.Error(err))
	}
	defer redisClient.Close()

	// Store de estatísticas e agregador idempotente
	statsRepo := repo.NewPostgres(pg)
	agg := aggregator.New(log, statsRepo)

	// Configura o consumer Kafka (consumer group stats-aggregator)
	reader := sharedkafka.NewReader(cfg.KafkaBrokers, cfg.TopicMatchEvents, "stats-aggregator")
	defer reader.Close()

	// DLQ para notificações indecodificáveis
	var dlqWriter *sharedkafka.Writer
	if cfg.TopicMatchEventsDLQ != "" {
		dlqWriter = sharedkafka.NewWriter(cfg.KafkaBrokers, cfg.TopicMatchEventsDLQ)
		defer dlqWriter.Close()
	}

	// Métricas Prometheus para monitoramento do processamento
	consumed := prometheus.NewCounter(prometheus.CounterOpts{Name: "stats_worker_notifications_consumed_total", Help: "notificações consumidas"})
	applied := prometheus.NewCounter(prometheus.CounterOpts{Name: "stats_worker_pairs_applied_total", Help: "pares (team, match) aplicados"})
	duplicates := prometheus.NewCounter(prometheus.CounterOpts{Name: "stats_worker_duplicates_total", Help: "replays ignorados pela guarda de idempotência"})
	errorsBy := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "stats_worker_errors_total", Help: "erros por estágio"}, []string{"stage"})
	prometheus.MustRegister(consumed, applied, duplicates, errorsBy)

	agg.OnDuplicate = func() { duplicates.Inc() }

	// Broadcaster para publicar eventos aplicados no Redis Pub/Sub (usado pelo query-service/ws)
	broadcaster := pubsub.NewRedisBroadcaster(redisClient)

	// Instancia o processor, conectando callbacks de métricas e broadcast
	proc := &consumer.Processor{
		Log:        log,
		Reader:     reader,
		Agg:        agg,
		DLQ:        dlqWriter,
		OnConsumed: func() { consumed.Inc() },
		OnApplied:  func() { applied.Inc() },
		OnError:    func(stage string) { errorsBy.WithLabelValues(stage).Inc() },

		// Após aplicar a notificação, envia update para o WebSocket via Redis Pub/Sub
		OnAfterApply: func(ev events.MatchEventRecorded) {
			msg := pubsub.WSUpdate{MatchID: ev.MatchID, Payload: ev}
			b, _ := json.Marshal(msg)

			ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
			defer cancel()

			if err := broadcaster.Publish(ctx, cfg.RedisPubSubChannel, b); err != nil {
				log.Warn("ws broadcast publish failed", zap.Error(err))
			}
		},
	}

	// Servidor HTTP para métricas e health check
	metrics.StartMetricsServer(cfg.MetricsPort, func(ctx context.Context) error {
		if err := pg.PingContext(ctx); err != nil {
			return err
		}
		return redisClient.Ping(ctx).Err()
	})
	log.Info("metrics/health listening", zap.String("addr", ":"+cfg.MetricsPort))

	// Sinalização para shutdown gracioso (SIGINT/SIGTERM)
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Info("stats-worker started", zap.String("topic", cfg.TopicMatchEvents))
	if err := proc.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatal("processor stopped with error", zap.Error(err))
	}
	log.Info("stats-worker stopped")
}
