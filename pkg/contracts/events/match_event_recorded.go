package events

// Player identifica um jogador citado nos detalhes de um evento.
type Player struct {
	Name     string `json:"name,omitempty"`
	Position string `json:"position,omitempty"`
	Number   int    `json:"number,omitempty"`
}

// EventDetails carrega os detalhes opcionais de um evento de partida.
type EventDetails struct {
	Player   *Player `json:"player,omitempty"`
	GoalType string  `json:"goal_type,omitempty"` // "open play" | "penalty" | "free-kick"
	Minute   *int    `json:"minute,omitempty"`    // 0..120
	Assist   *Player `json:"assist,omitempty"`
	VideoURL string  `json:"video_url,omitempty"`
}

// MatchEventRecorded é a imagem pós-escrita publicada no tópico
// "match_events_recorded" após cada evento persistido.
// Entrega at-least-once: consumidores precisam tolerar duplicatas.
type MatchEventRecorded struct {
	MatchID   string        `json:"match_id"`
	Date      string        `json:"date"` // ISO-8601; (match_id, date) é a chave do registro
	Team      string        `json:"team"`
	Opponent  string        `json:"opponent"`
	EventType string        `json:"event_type,omitempty"` // "goal" | "foul" | "corner" | "offside"
	Details   *EventDetails `json:"event_details,omitempty"`
	Source    string        `json:"source"` // serviço que gravou o registro
	TsUnixMs  int64         `json:"ts_unix_ms"`
}
