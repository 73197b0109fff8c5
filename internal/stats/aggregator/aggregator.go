package aggregator

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/radieske/match-stats-platform/internal/stats/repo"
)

// Store é o contrato mínimo do store de estatísticas usado pelo agregador.
// Todas as operações são bloqueantes; o agregador não guarda estado próprio.
type Store interface {
	GetTeamStats(ctx context.Context, team string) (*repo.TeamStats, error)
	CreateTeamStats(ctx context.Context, t *repo.TeamStats) error
	UpdateTeamStats(ctx context.Context, team string, matchIDs []string, total, expectedVersion int) error
}

// maxAttempts limita o loop de read-modify-write sob corrida de versão.
const maxAttempts = 5

// Aggregator mantém o contador de partidas por time de forma idempotente.
// Chamadas repetidas com o mesmo (team, matchID) deixam o registro idêntico
// a uma chamada única, independente de quantas notificações chegarem.
type Aggregator struct {
	log   *zap.Logger
	store Store

	// OnDuplicate é chamado quando a notificação é um replay já contabilizado
	OnDuplicate func()
}

func New(log *zap.Logger, store Store) *Aggregator {
	return &Aggregator{log: log, store: store}
}

// RecordMatchForTeam garante que matchID conta no máximo uma vez para o time.
// Fluxo: lê o registro; ausente, cria {1, {matchID}}; presente com o id já
// contado, no-op; senão aplica via compare-and-swap e repete em conflito.
func (a *Aggregator) RecordMatchForTeam(ctx context.Context, team, matchID string) error {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		cur, err := a.store.GetTeamStats(ctx, team)

		switch {
		case errors.Is(err, repo.ErrNotFound):
			err = a.store.CreateTeamStats(ctx, &repo.TeamStats{
				Team:         team,
				TotalMatches: 1,
				MatchIDs:     []string{matchID},
			})
			if errors.Is(err, repo.ErrStatsExist) {
				continue // outro writer criou o registro; relê e decide de novo
			}
			return err

		case err != nil:
			return err
		}

		if cur.HasMatch(matchID) {
			// replay da mesma notificação; guarda de idempotência
			a.log.Debug("duplicate match for team",
				zap.String("team", team),
				zap.String("match_id", matchID),
			)
			if a.OnDuplicate != nil {
				a.OnDuplicate()
			}
			return nil
		}

		ids := append(append([]string{}, cur.MatchIDs...), matchID)
		err = a.store.UpdateTeamStats(ctx, team, ids, cur.TotalMatches+1, cur.Version)
		if errors.Is(err, repo.ErrVersionConflict) {
			continue // incremento concorrente venceu; relê e tenta de novo
		}
		return err
	}

	return fmt.Errorf("record match %s for team %s: attempts exhausted", matchID, team)
}
