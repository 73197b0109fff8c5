package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/radieske/match-stats-platform/internal/ingest/validator"
	"github.com/radieske/match-stats-platform/internal/query/dto"
	"github.com/radieske/match-stats-platform/internal/query/repo"
	"github.com/radieske/match-stats-platform/internal/query/ws"
	"github.com/radieske/match-stats-platform/pkg/contracts/events"
)

// defaultPageSize reproduz o tamanho de página da API original
const defaultPageSize = 10

// Reader é o contrato de leitura usado pelos endpoints REST
type Reader interface {
	ScanEvents(ctx context.Context, pageSize int, cursor string) ([]repo.EventRow, string, error)
	EventsByMatch(ctx context.Context, matchID string, pageSize int, cursor string) ([]repo.EventRow, string, error)
	ProjectedByMatch(ctx context.Context, matchID string, pageSize int, cursor string) ([]repo.ProjectedEventRow, string, error)
	TeamTotalMatches(ctx context.Context, team string) (int, error)
}

// API expõe os endpoints REST de consulta de partidas e estatísticas
// Lê direto dos stores; nunca passa pelo agregador
type API struct {
	Log    *zap.Logger
	Reader Reader
	Hub    *ws.Hub // opcional: feed ao vivo
}

// Router retorna o roteador HTTP com os endpoints REST
func (a *API) Router() http.Handler {
	r := chi.NewRouter()
	r.Get("/v1/matches", a.listMatches)                       // Lista partidas (deduplicadas por página)
	r.Get("/v1/matches/{id}", a.getMatch)                     // Linha do tempo de uma partida
	r.Get("/v1/matches/{id}/statistics", a.getMatchStats)     // Gols e faltas de uma partida
	r.Get("/v1/teams/{name}/statistics", a.getTeamStats)      // Estatísticas agregadas de um time
	if a.Hub != nil {
		r.Get("/ws", a.Hub.HandleWS)
	}
	return r
}

// writeJSON serializa a resposta em JSON e define o status HTTP
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, dto.ErrorResponse{Status: "error", Message: msg})
}

// pageParams extrai pageSize e exclusiveStartKey da query string
func pageParams(r *http.Request) (int, string) {
	pageSize := defaultPageSize
	if v := r.URL.Query().Get("pageSize"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			pageSize = n
		}
	}
	return pageSize, r.URL.Query().Get("exclusiveStartKey")
}

// listMatches retorna uma página de partidas deduplicada por match_id.
// A deduplicação é local à página: uma partida cujos eventos atravessam
// páginas reaparece na primeira página em que surge de novo.
func (a *API) listMatches(w http.ResponseWriter, r *http.Request) {
	pageSize, cursor := pageParams(r)

	rows, next, err := a.Reader.ScanEvents(r.Context(), pageSize, cursor)
	if err != nil {
		a.Log.Error("list matches failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to retrieve matches")
		return
	}

	writeJSON(w, http.StatusOK, dto.ListMatchesResponse{
		Status:            "success",
		Matches:           summarizeMatches(rows),
		ExclusiveStartKey: next,
	})
}

// getMatch monta a partida com sua linha do tempo ordenada por data
func (a *API) getMatch(w http.ResponseWriter, r *http.Request) {
	matchID := chi.URLParam(r, "id")
	pageSize, cursor := pageParams(r)

	rows, next, err := a.Reader.EventsByMatch(r.Context(), matchID, pageSize, cursor)
	if err != nil {
		a.Log.Error("get match failed", zap.String("match_id", matchID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to retrieve matches")
		return
	}
	if len(rows) == 0 {
		writeError(w, http.StatusNotFound, "match not found")
		return
	}

	detail := dto.MatchDetail{
		MatchID:  rows[0].MatchID,
		Team:     rows[0].Team,
		Opponent: rows[0].Opponent,
		Date:     rows[0].Date,
		Events:   make([]dto.TimelineEvent, 0, len(rows)),
	}
	for _, row := range rows {
		detail.Events = append(detail.Events, toTimelineEvent(row))
	}

	writeJSON(w, http.StatusOK, dto.MatchResponse{
		Status:            "success",
		Match:             detail,
		ExclusiveStartKey: next,
	})
}

// getMatchStats conta gols e faltas da página projetada de eventos.
// Partida sem eventos não tem team/opponent definidos: responde 404.
func (a *API) getMatchStats(w http.ResponseWriter, r *http.Request) {
	matchID := chi.URLParam(r, "id")
	pageSize, cursor := pageParams(r)

	rows, _, err := a.Reader.ProjectedByMatch(r.Context(), matchID, pageSize, cursor)
	if err != nil {
		a.Log.Error("get match statistics failed", zap.String("match_id", matchID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to retrieve matches")
		return
	}
	if len(rows) == 0 {
		writeError(w, http.StatusNotFound, "match not found")
		return
	}

	goals, fouls := tallyEvents(rows)
	writeJSON(w, http.StatusOK, dto.MatchStatisticsResponse{
		Status:  "success",
		MatchID: matchID,
		Statistics: dto.MatchStatistics{
			Team:       rows[0].Team,
			Opponent:   rows[0].Opponent,
			TotalGoals: goals,
			TotalFouls: fouls,
		},
	})
}

// getTeamStats valida o nome do time antes de consultar o store
func (a *API) getTeamStats(w http.ResponseWriter, r *http.Request) {
	team := chi.URLParam(r, "name")

	if details := validator.ValidateTeamName(team); len(details) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{
			Status:  "error",
			Message: "Invalid input",
			Details: details,
		})
		return
	}

	total, err := a.Reader.TeamTotalMatches(r.Context(), team)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			writeError(w, http.StatusNotFound, "This team does not exist in the database")
			return
		}
		a.Log.Error("get team statistics failed", zap.String("team", team), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Error retrieving data")
		return
	}

	writeJSON(w, http.StatusOK, dto.TeamStatisticsResponse{
		Status:     "success",
		Team:       team,
		Statistics: dto.TeamStatistics{TotalMatches: total},
	})
}

// summarizeMatches deduplica por match_id; a primeira ocorrência vence
func summarizeMatches(rows []repo.EventRow) []dto.MatchSummary {
	seen := make(map[string]struct{}, len(rows))
	out := make([]dto.MatchSummary, 0, len(rows))
	for _, row := range rows {
		if _, ok := seen[row.MatchID]; ok {
			continue
		}
		seen[row.MatchID] = struct{}{}
		out = append(out, dto.MatchSummary{
			MatchID:  row.MatchID,
			Team:     row.Team,
			Opponent: row.Opponent,
			Date:     row.Date,
		})
	}
	return out
}

// tallyEvents conta gols e faltas de uma página projetada
func tallyEvents(rows []repo.ProjectedEventRow) (goals, fouls int) {
	for _, row := range rows {
		switch row.EventType {
		case "goal":
			goals++
		case "foul":
			fouls++
		}
	}
	return goals, fouls
}

// toTimelineEvent achata os detalhes persistidos no formato da timeline
func toTimelineEvent(row repo.EventRow) dto.TimelineEvent {
	ev := dto.TimelineEvent{
		EventType: row.EventType,
		Timestamp: row.Date,
	}
	if len(row.Details) == 0 {
		return ev
	}
	var details events.EventDetails
	if err := json.Unmarshal(row.Details, &details); err != nil {
		return ev
	}
	ev.GoalType = details.GoalType
	ev.Minute = details.Minute
	ev.VideoURL = details.VideoURL
	if details.Player != nil {
		ev.Player = details.Player.Name
	}
	if details.Assist != nil {
		ev.Assist = details.Assist.Name
	}
	return ev
}
