package validator

import (
	"fmt"
	"time"

	"github.com/radieske/match-stats-platform/internal/ingest/dto"
)

const (
	maxTeamLen = 30
	maxMinute  = 120
)

// Valores aceitos para event_type e goal_type.
var (
	eventTypes = map[string]struct{}{
		"goal":    {},
		"foul":    {},
		"corner":  {},
		"offside": {},
	}
	goalTypes = map[string]struct{}{
		"open play": {},
		"penalty":   {},
		"free-kick": {},
	}
)

// ValidateIngest valida o payload de ingestão contra o schema do domínio.
// Retorna a lista completa de violações; lista vazia significa payload válido.
// Função pura: não toca banco, rede nem relógio além do parse do timestamp.
func ValidateIngest(req *dto.IngestEventRequest) []string {
	var violations []string

	if req.MatchID == "" {
		violations = append(violations, `"match_id" is required`)
	}
	if req.Timestamp == "" {
		violations = append(violations, `"timestamp" is required`)
	} else if _, err := time.Parse(time.RFC3339, req.Timestamp); err != nil {
		violations = append(violations, `"timestamp" must be an ISO-8601 timestamp`)
	}

	violations = append(violations, checkTeamName("team", req.Team)...)
	violations = append(violations, checkTeamName("opponent", req.Opponent)...)

	if req.EventType != "" {
		if _, ok := eventTypes[req.EventType]; !ok {
			violations = append(violations, `"event_type" must be one of [goal, foul, corner, offside]`)
		}
	}

	if req.Details != nil {
		violations = append(violations, checkDetails(req.Details)...)
	}

	return violations
}

func checkTeamName(field, value string) []string {
	if value == "" {
		return []string{fmt.Sprintf("%q is required", field)}
	}
	if len(value) > maxTeamLen {
		return []string{fmt.Sprintf("%q must be at most %d characters", field, maxTeamLen)}
	}
	return nil
}

func checkDetails(d *dto.EventDetailsInput) []string {
	var violations []string

	if d.GoalType != "" {
		if _, ok := goalTypes[d.GoalType]; !ok {
			violations = append(violations, `"event_details.goal_type" must be one of [open play, penalty, free-kick]`)
		}
	}
	if d.Minute != nil && (*d.Minute < 0 || *d.Minute > maxMinute) {
		violations = append(violations, fmt.Sprintf(`"event_details.minute" must be between 0 and %d`, maxMinute))
	}
	violations = append(violations, checkPlayer("event_details.player", d.Player)...)
	violations = append(violations, checkPlayer("event_details.assist", d.Assist)...)

	return violations
}

func checkPlayer(field string, p *dto.PlayerInput) []string {
	if p == nil {
		return nil
	}
	if p.Number != nil && *p.Number < 0 {
		return []string{fmt.Sprintf("%q.number must not be negative", field)}
	}
	return nil
}

// ValidateTeamName valida o nome de time aceito nas consultas de estatística.
// Regra da API: 3 a 30 caracteres.
func ValidateTeamName(name string) []string {
	if len(name) < 3 || len(name) > maxTeamLen {
		return []string{fmt.Sprintf(`"team" must be between 3 and %d characters`, maxTeamLen)}
	}
	return nil
}
