package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

var (
	// ErrNotFound indica que não existe registro para o time.
	ErrNotFound = errors.New("team stats not found")
	// ErrStatsExist indica corrida na criação: outro writer inseriu primeiro.
	ErrStatsExist = errors.New("team stats already exist")
	// ErrVersionConflict indica corrida na atualização: a versão esperada
	// não é mais a corrente e o caller deve reler e tentar de novo.
	ErrVersionConflict = errors.New("team stats version conflict")
)

// Postgres implementa o store de estatísticas por time
type Postgres struct{ db *sql.DB }

// NewPostgres retorna uma instância do repositório de estatísticas
func NewPostgres(db *sql.DB) *Postgres { return &Postgres{db: db} }

// GetTeamStats retorna o registro do time ou ErrNotFound.
func (p *Postgres) GetTeamStats(ctx context.Context, team string) (*TeamStats, error) {
	t := TeamStats{Team: team}
	err := p.db.QueryRowContext(ctx, `
		SELECT total_matches, match_ids, version
		FROM team_stats WHERE team=$1`, team,
	).Scan(&t.TotalMatches, pq.Array(&t.MatchIDs), &t.Version)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get team stats: %w", err)
	}
	return &t, nil
}

// CreateTeamStats insere o registro inicial de um time.
// Retorna ErrStatsExist se outro writer criou o registro primeiro.
func (p *Postgres) CreateTeamStats(ctx context.Context, t *TeamStats) error {
	res, err := p.db.ExecContext(ctx, `
		INSERT INTO team_stats (team, total_matches, match_ids, version)
		VALUES ($1,$2,$3,1)
		ON CONFLICT (team) DO NOTHING`,
		t.Team, t.TotalMatches, pq.Array(t.MatchIDs),
	)
	if err != nil {
		return fmt.Errorf("create team stats: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("create team stats: %w", err)
	}
	if n == 0 {
		return ErrStatsExist
	}
	return nil
}

// UpdateTeamStats sobrescreve match_ids e total_matches condicionado à versão
// lida. Nenhuma linha afetada significa que outro writer passou na frente
// (ErrVersionConflict); incrementos concorrentes não se perdem.
func (p *Postgres) UpdateTeamStats(ctx context.Context, team string, matchIDs []string, total, expectedVersion int) error {
	res, err := p.db.ExecContext(ctx, `
		UPDATE team_stats
		SET match_ids=$2, total_matches=$3, version=version+1
		WHERE team=$1 AND version=$4`,
		team, pq.Array(matchIDs), total, expectedVersion,
	)
	if err != nil {
		return fmt.Errorf("update team stats: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update team stats: %w", err)
	}
	if n == 0 {
		return ErrVersionConflict
	}
	return nil
}
