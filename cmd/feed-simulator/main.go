package main

import (
	"context"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	ingestdto "github.com/radieske/match-stats-platform/internal/ingest/dto"
	"github.com/radieske/match-stats-platform/internal/shared/config"
	"github.com/radieske/match-stats-platform/internal/shared/logger"
	"github.com/radieske/match-stats-platform/internal/shared/metrics"
	simingest "github.com/radieske/match-stats-platform/internal/simulator/ingest"
)

// Catálogo fixo de partidas simuladas para geração de eventos
type fixture struct {
	matchID  string
	team     string
	opponent string
}

var fixtures = []fixture{
	{matchID: "MATCH_001", team: "Flamengo", opponent: "Palmeiras"},
	{matchID: "MATCH_002", team: "Grêmio", opponent: "Internacional"},
	{matchID: "MATCH_003", team: "Corinthians", opponent: "Santos"},
	{matchID: "MATCH_004", team: "São Paulo", opponent: "Vasco"},
}

var eventTypes = []string{"goal", "foul", "corner", "offside"}
var goalTypes = []string{"open play", "penalty", "free-kick"}
var playerNames = []string{"Pedro", "Arrascaeta", "Suárez", "Cano", "Hulk", "Everaldo"}

// Métricas Prometheus para monitoramento do envio de eventos
var (
	eventsSent = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "simulator_events_sent_total",
		Help: "Eventos enviados ao ingest-service",
	})
	sendErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "simulator_send_errors_total",
		Help: "Falhas de envio",
	})
)

// randomEvent sorteia um evento plausível de uma partida do catálogo
func randomEvent() ingestdto.IngestEventRequest {
	fx := fixtures[rand.Intn(len(fixtures))]
	minute := rand.Intn(121)

	ev := ingestdto.IngestEventRequest{
		MatchID:   fx.matchID,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Team:      fx.team,
		Opponent:  fx.opponent,
		EventType: eventTypes[rand.Intn(len(eventTypes))],
	}

	number := rand.Intn(30) + 1
	details := &ingestdto.EventDetailsInput{
		Player: &ingestdto.PlayerInput{
			Name:     playerNames[rand.Intn(len(playerNames))],
			Position: "forward",
			Number:   &number,
		},
		Minute: &minute,
	}
	if ev.EventType == "goal" {
		details.GoalType = goalTypes[rand.Intn(len(goalTypes))]
		assistNumber := rand.Intn(30) + 1
		details.Assist = &ingestdto.PlayerInput{
			Name:     playerNames[rand.Intn(len(playerNames))],
			Position: "midfielder",
			Number:   &assistNumber,
		}
	}
	ev.Details = details

	return ev
}

func main() {
	cfg := config.Load()
	log, err := logger.New(cfg.ServiceName, cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	prometheus.MustRegister(eventsSent, sendErrors)

	client := simingest.New(cfg.IngestURL)

	// Servidor de métricas; simulador não tem dependências pra checar
	metrics.StartMetricsServer(cfg.MetricsPort, nil)
	log.Info("feed simulator (metrics) running", zap.String("addr", ":"+cfg.MetricsPort))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Info("feed simulator running", zap.String("ingest_url", cfg.IngestURL))

	// Gera e envia eventos simulados a cada 3 segundos
	ticker := time.NewTicker(3 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Info("feed simulator stopped")
			return
		case <-ticker.C:
			ev := randomEvent()
			eventID, err := client.SendEvent(ctx, ev)
			if err != nil {
				sendErrors.Inc()
				log.Warn("send event failed", zap.String("match_id", ev.MatchID), zap.Error(err))
				continue
			}
			eventsSent.Inc()
			log.Debug("event sent",
				zap.String("match_id", ev.MatchID),
				zap.String("event_type", ev.EventType),
				zap.String("event_id", eventID),
			)
		}
	}
}
