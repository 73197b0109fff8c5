package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrNotFound indica ausência de registro para a chave consultada
var ErrNotFound = errors.New("not found")

// EventRow é um evento de partida lido do banco
type EventRow struct {
	MatchID   string
	Date      string
	Team      string
	Opponent  string
	EventType string
	Details   []byte // event_details bruto (JSONB); nil quando ausente
}

// ProjectedEventRow é a projeção usada no cálculo de estatísticas de partida
type ProjectedEventRow struct {
	MatchID   string
	Team      string
	Opponent  string
	EventType string
}

type ReadRepo struct {
	DB *sql.DB
}

// ScanEvents retorna uma página de eventos de todas as partidas, em ordem de
// chave (match_id, date), com cursor de continuação.
func (r *ReadRepo) ScanEvents(ctx context.Context, pageSize int, cursor string) ([]EventRow, string, error) {
	key, err := decodeCursor(cursor)
	if err != nil {
		return nil, "", err
	}

	const q = `
		SELECT match_id, date, team, opponent, COALESCE(event_type,''), event_details
		FROM match_events
		WHERE (match_id, date) > ($1, $2)
		ORDER BY match_id, date
		LIMIT $3;
	`
	rows, err := r.DB.QueryContext(ctx, q, key.MatchID, key.Date, pageSize)
	if err != nil {
		return nil, "", fmt.Errorf("scan events: %w", err)
	}
	defer rows.Close()

	out, err := collectEvents(rows)
	if err != nil {
		return nil, "", err
	}
	return out, nextCursor(out, pageSize), nil
}

// EventsByMatch retorna uma página dos eventos de uma partida ordenados por data.
func (r *ReadRepo) EventsByMatch(ctx context.Context, matchID string, pageSize int, cursor string) ([]EventRow, string, error) {
	key, err := decodeCursor(cursor)
	if err != nil {
		return nil, "", err
	}

	const q = `
		SELECT match_id, date, team, opponent, COALESCE(event_type,''), event_details
		FROM match_events
		WHERE match_id = $1 AND date > $2
		ORDER BY date
		LIMIT $3;
	`
	rows, err := r.DB.QueryContext(ctx, q, matchID, key.Date, pageSize)
	if err != nil {
		return nil, "", fmt.Errorf("events by match: %w", err)
	}
	defer rows.Close()

	out, err := collectEvents(rows)
	if err != nil {
		return nil, "", err
	}
	return out, nextCursor(out, pageSize), nil
}

// ProjectedByMatch retorna somente os campos usados no cálculo de estatísticas.
func (r *ReadRepo) ProjectedByMatch(ctx context.Context, matchID string, pageSize int, cursor string) ([]ProjectedEventRow, string, error) {
	key, err := decodeCursor(cursor)
	if err != nil {
		return nil, "", err
	}

	const q = `
		SELECT match_id, date, team, opponent, COALESCE(event_type,'')
		FROM match_events
		WHERE match_id = $1 AND date > $2
		ORDER BY date
		LIMIT $3;
	`
	rows, err := r.DB.QueryContext(ctx, q, matchID, key.Date, pageSize)
	if err != nil {
		return nil, "", fmt.Errorf("projected by match: %w", err)
	}
	defer rows.Close()

	var out []ProjectedEventRow
	var lastKey startKey
	for rows.Next() {
		var p ProjectedEventRow
		if err := rows.Scan(&p.MatchID, &lastKey.Date, &p.Team, &p.Opponent, &p.EventType); err != nil {
			return nil, "", fmt.Errorf("projected by match: %w", err)
		}
		lastKey.MatchID = p.MatchID
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, "", fmt.Errorf("projected by match: %w", err)
	}

	next := ""
	if len(out) == pageSize {
		next = encodeCursor(lastKey)
	}
	return out, next, nil
}

// TeamTotalMatches retorna o total de partidas registradas para um time.
func (r *ReadRepo) TeamTotalMatches(ctx context.Context, team string) (int, error) {
	var total int
	err := r.DB.QueryRowContext(ctx, `SELECT total_matches FROM team_stats WHERE team=$1`, team).Scan(&total)
	if err == sql.ErrNoRows {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("team total matches: %w", err)
	}
	return total, nil
}

func collectEvents(rows *sql.Rows) ([]EventRow, error) {
	var out []EventRow
	for rows.Next() {
		var e EventRow
		if err := rows.Scan(&e.MatchID, &e.Date, &e.Team, &e.Opponent, &e.EventType, &e.Details); err != nil {
			return nil, fmt.Errorf("scan event row: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan event rows: %w", err)
	}
	return out, nil
}

// nextCursor devolve o token da última linha quando a página veio cheia;
// página incompleta encerra a iteração.
func nextCursor(rows []EventRow, pageSize int) string {
	if len(rows) < pageSize || len(rows) == 0 {
		return ""
	}
	last := rows[len(rows)-1]
	return encodeCursor(startKey{MatchID: last.MatchID, Date: last.Date})
}
