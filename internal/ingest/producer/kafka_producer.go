package producer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/radieske/match-stats-platform/pkg/contracts/events"
)

// KafkaPublisher publica a imagem pós-escrita de cada evento persistido.
// Faz o papel de notificação de mudança do store: o stats-worker consome
// essas mensagens para manter as estatísticas por time.
type KafkaPublisher struct {
	Writer *kafka.Writer
	Topic  string
}

func NewKafkaPublisher(w *kafka.Writer, topic string) *KafkaPublisher {
	return &KafkaPublisher{Writer: w, Topic: topic}
}

// PublishEventRecorded envia a notificação com chave por match_id,
// mantendo eventos da mesma partida na mesma partição.
func (p *KafkaPublisher) PublishEventRecorded(ctx context.Context, e events.MatchEventRecorded) error {
	e.TsUnixMs = time.Now().UnixMilli()
	b, _ := json.Marshal(e)
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(e.MatchID),
		Value: b,
		Time:  time.Now(),
	})
}
