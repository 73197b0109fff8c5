package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/radieske/match-stats-platform/internal/ingest/dto"
	"github.com/radieske/match-stats-platform/internal/ingest/repo"
	"github.com/radieske/match-stats-platform/internal/ingest/validator"
	"github.com/radieske/match-stats-platform/pkg/contracts/events"
)

// EventStore é a dependência de persistência do endpoint de ingestão
type EventStore interface {
	PutEvent(ctx context.Context, e *repo.MatchEvent) error
}

type Server struct {
	log   *zap.Logger
	store EventStore
	publ  interface {
		PublishEventRecorded(context.Context, events.MatchEventRecorded) error
	}
	source string // nome do serviço, carimbado na notificação
}

func NewServer(log *zap.Logger, store EventStore, p interface {
	PublishEventRecorded(context.Context, events.MatchEventRecorded) error
}, source string) *Server {
	return &Server{log: log, store: store, publ: p, source: source}
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ingest", s.ingest) // POST
	return mux
}

// ingest valida o payload, persiste o evento e publica a imagem pós-escrita.
// Contrato herdado da API original: payload inválido e falha de persistência
// respondem 404 com envelope {status:"error"}.
func (s *Server) ingest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.IngestEventRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields() // schema fechado: campo desconhecido é violação
	if err := dec.Decode(&req); err != nil {
		writeJSON(w, http.StatusNotFound, dto.IngestErrorResponse{
			Status:  "error",
			Message: "Failed to ingest data.",
			Error:   []string{"malformed payload: " + err.Error()},
		})
		return
	}

	if violations := validator.ValidateIngest(&req); len(violations) > 0 {
		writeJSON(w, http.StatusNotFound, dto.IngestErrorResponse{
			Status:  "error",
			Message: "Failed to ingest data.",
			Error:   violations,
		})
		return
	}

	details := toContractDetails(req.Details)
	var rawDetails []byte
	if details != nil {
		rawDetails, _ = json.Marshal(details)
	}

	if err := s.store.PutEvent(r.Context(), &repo.MatchEvent{
		MatchID:   req.MatchID,
		Date:      req.Timestamp,
		Team:      req.Team,
		Opponent:  req.Opponent,
		EventType: req.EventType,
		Details:   rawDetails,
	}); err != nil {
		s.log.Error("event persist failed", zap.String("match_id", req.MatchID), zap.Error(err))
		writeJSON(w, http.StatusNotFound, dto.IngestErrorResponse{
			Status:  "error",
			Message: "Failed to ingest data.",
		})
		return
	}

	// Notificação de mudança: falha aqui não desfaz a escrita nem muda a
	// resposta; a entrega é at-least-once e o agregador tolera reenvio.
	if err := s.publ.PublishEventRecorded(r.Context(), events.MatchEventRecorded{
		MatchID:   req.MatchID,
		Date:      req.Timestamp,
		Team:      req.Team,
		Opponent:  req.Opponent,
		EventType: req.EventType,
		Details:   details,
		Source:    s.source,
	}); err != nil {
		s.log.Warn("event notification publish failed", zap.String("match_id", req.MatchID), zap.Error(err))
	}

	writeJSON(w, http.StatusOK, dto.IngestSuccessResponse{
		Status:  "success",
		Message: "Data successfully ingested.",
		Data: dto.IngestedData{
			EventID:   uuid.NewString(),
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
	})
}

func toContractDetails(d *dto.EventDetailsInput) *events.EventDetails {
	if d == nil {
		return nil
	}
	return &events.EventDetails{
		Player:   toContractPlayer(d.Player),
		GoalType: d.GoalType,
		Minute:   d.Minute,
		Assist:   toContractPlayer(d.Assist),
		VideoURL: d.VideoURL,
	}
}

func toContractPlayer(p *dto.PlayerInput) *events.Player {
	if p == nil {
		return nil
	}
	out := &events.Player{Name: p.Name, Position: p.Position}
	if p.Number != nil {
		out.Number = *p.Number
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
