package ws

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// PubSubChannel define o canal Redis Pub/Sub do feed de partidas
const PubSubChannel = "match_events_broadcast"

// StartRedisSubscriber inicia uma goroutine que escuta o canal Redis Pub/Sub
// e repassa as notificações recebidas para os clientes WebSocket via Hub
//
// Funcionamento:
// - Recebe mensagens JSON publicadas pelo stats-worker após cada aplicação
// - Desserializa para MatchUpdate
// - Chama hub.Broadcast para os clientes inscritos na partida
func StartRedisSubscriber(ctx context.Context, r *redis.Client, channel string, hub *Hub, log *zap.Logger) {
	sub := r.Subscribe(ctx, channel)
	ch := sub.Channel()
	go func() {
		for {
			select {
			case <-ctx.Done():
				_ = sub.Close() // encerra a inscrição ao finalizar o contexto
				return
			case msg := <-ch:
				if msg == nil {
					continue
				}
				var upd MatchUpdate
				if err := json.Unmarshal([]byte(msg.Payload), &upd); err != nil {
					log.Warn("ws subscriber unmarshal error", zap.Error(err))
					continue
				}
				hub.Broadcast(upd) // envia para os clientes inscritos na partida
			}
		}
	}()
}
