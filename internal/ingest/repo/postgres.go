package repo

import (
	"context"
	"database/sql"
	"fmt"
)

// Postgres implementa a escrita de eventos de partida no banco
type Postgres struct{ db *sql.DB }

// NewPostgres retorna uma instância do repositório de eventos
func NewPostgres(db *sql.DB) *Postgres { return &Postgres{db: db} }

// PutEvent insere um evento de partida.
// A chave (match_id, date) é única; um replay do mesmo evento sobrescreve o
// registro com a mesma imagem em vez de falhar, mantendo a ingestão idempotente.
func (p *Postgres) PutEvent(ctx context.Context, e *MatchEvent) error {
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO match_events (match_id, date, team, opponent, event_type, event_details)
		VALUES ($1,$2,$3,$4,NULLIF($5,''),$6)
		ON CONFLICT (match_id, date) DO UPDATE SET
		  team          = EXCLUDED.team,
		  opponent      = EXCLUDED.opponent,
		  event_type    = EXCLUDED.event_type,
		  event_details = EXCLUDED.event_details`,
		e.MatchID, e.Date, e.Team, e.Opponent, e.EventType, nullableJSON(e.Details),
	)
	if err != nil {
		return fmt.Errorf("put event: %w", err)
	}
	return nil
}

// nullableJSON converte detalhes ausentes em NULL no banco
func nullableJSON(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return b
}
