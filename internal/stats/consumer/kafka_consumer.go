package consumer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/radieske/match-stats-platform/pkg/contracts/events"
)

// Aggregator aplica um crédito de partida para um time de forma idempotente
type Aggregator interface {
	RecordMatchForTeam(ctx context.Context, team, matchID string) error
}

// Processor consome notificações de eventos persistidos e alimenta o agregador.
// Cada notificação credita a partida para team e opponent simetricamente;
// falha em um par é registrada e não interrompe o outro nem o loop.
// Callbacks de métricas podem ser usadas para monitoramento de cada etapa.
type Processor struct {
	Log    *zap.Logger
	Reader *kafka.Reader
	Agg    Aggregator
	DLQ    *kafka.Writer // opcional: mensagens indecodificáveis

	OnConsumed   func()                             // métricas (counter++)
	OnApplied    func()                             // métricas: par aplicado
	OnError      func(string)                       // métricas por fase
	OnAfterApply func(ev events.MatchEventRecorded) // broadcast pós-aplicação
}

// Run inicia o loop principal de consumo e processamento das notificações
func (p *Processor) Run(ctx context.Context) error {
	for {
		m, err := p.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err() // encerra se o contexto for cancelado
			}
			p.Log.Warn("kafka read failed", zap.Error(err))
			if p.OnError != nil {
				p.OnError("read")
			}
			time.Sleep(500 * time.Millisecond)
			continue
		}

		if p.OnConsumed != nil {
			p.OnConsumed() // callback de métrica: notificação consumida
		}

		var ev events.MatchEventRecorded
		if err := json.Unmarshal(m.Value, &ev); err != nil {
			p.Log.Warn("invalid notification", zap.Error(err))
			if p.OnError != nil {
				p.OnError("decode")
			}
			p.sendToDLQ(ctx, m)
			continue
		}
		if ev.MatchID == "" || ev.Team == "" || ev.Opponent == "" {
			p.Log.Warn("notification missing identifiers", zap.String("match_id", ev.MatchID))
			if p.OnError != nil {
				p.OnError("decode")
			}
			p.sendToDLQ(ctx, m)
			continue
		}

		results := p.processNotification(ctx, ev)

		applied := 0
		for _, r := range results {
			if r.err != nil {
				p.Log.Warn("aggregation failed",
					zap.String("team", r.team),
					zap.String("match_id", ev.MatchID),
					zap.Error(r.err),
				)
				if p.OnError != nil {
					p.OnError("aggregate")
				}
				continue
			}
			applied++
			if p.OnApplied != nil {
				p.OnApplied()
			}
		}

		if applied > 0 && p.OnAfterApply != nil {
			p.OnAfterApply(ev)
		}
	}
}

// pairResult captura o resultado isolado de um par (team, matchID)
type pairResult struct {
	team string
	err  error
}

// processNotification credita a partida para os dois lados da notificação.
// Os pares são independentes: erro no primeiro não impede o segundo.
func (p *Processor) processNotification(ctx context.Context, ev events.MatchEventRecorded) []pairResult {
	results := make([]pairResult, 0, 2)
	for _, team := range []string{ev.Team, ev.Opponent} {
		results = append(results, pairResult{
			team: team,
			err:  p.Agg.RecordMatchForTeam(ctx, team, ev.MatchID),
		})
	}
	return results
}

// sendToDLQ repassa a mensagem original para a fila morta, quando configurada
func (p *Processor) sendToDLQ(ctx context.Context, m kafka.Message) {
	if p.DLQ == nil {
		return
	}
	if err := p.DLQ.WriteMessages(ctx, kafka.Message{Key: m.Key, Value: m.Value, Time: time.Now()}); err != nil {
		p.Log.Warn("dlq write failed", zap.Error(err))
		if p.OnError != nil {
			p.OnError("dlq")
		}
	}
}
