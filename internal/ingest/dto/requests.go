package dto

// PlayerInput representa um jogador no payload de ingestão.
type PlayerInput struct {
	Name     string `json:"name,omitempty"`
	Position string `json:"position,omitempty"`
	Number   *int   `json:"number,omitempty"`
}

// EventDetailsInput representa os detalhes opcionais de um evento.
type EventDetailsInput struct {
	Player   *PlayerInput `json:"player,omitempty"`
	GoalType string       `json:"goal_type,omitempty"` // "open play" | "penalty" | "free-kick"
	Minute   *int         `json:"minute,omitempty"`    // 0..120
	Assist   *PlayerInput `json:"assist,omitempty"`
	VideoURL string       `json:"video_url,omitempty"`
}

// IngestEventRequest é o payload aceito em POST /ingest.
// Campos desconhecidos são rejeitados na decodificação (DisallowUnknownFields).
type IngestEventRequest struct {
	MatchID   string             `json:"match_id"`
	Timestamp string             `json:"timestamp"` // ISO-8601; vira a coluna "date" do registro
	Team      string             `json:"team"`
	Opponent  string             `json:"opponent"`
	EventType string             `json:"event_type,omitempty"` // "goal" | "foul" | "corner" | "offside"
	Details   *EventDetailsInput `json:"event_details,omitempty"`
}
