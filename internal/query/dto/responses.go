package dto

// MatchSummary representa uma partida na listagem (sem timeline)
type MatchSummary struct {
	MatchID  string `json:"match_id"`
	Team     string `json:"team"`
	Opponent string `json:"opponent"`
	Date     string `json:"date"`
}

// ListMatchesResponse é o corpo de GET /v1/matches
type ListMatchesResponse struct {
	Status            string         `json:"status"`
	Matches           []MatchSummary `json:"matches"`
	ExclusiveStartKey string         `json:"exclusiveStartKey,omitempty"`
}

// TimelineEvent é um evento da linha do tempo de uma partida
type TimelineEvent struct {
	EventType string `json:"event_type,omitempty"`
	Timestamp string `json:"timestamp"`
	Player    string `json:"player,omitempty"`
	GoalType  string `json:"goal_type,omitempty"`
	Minute    *int   `json:"minute,omitempty"`
	VideoURL  string `json:"video_url,omitempty"`
	Assist    string `json:"assist,omitempty"`
}

// MatchDetail é a partida montada com sua linha do tempo ordenada por data
type MatchDetail struct {
	MatchID  string          `json:"match_id"`
	Team     string          `json:"team"`
	Opponent string          `json:"opponent"`
	Date     string          `json:"date"`
	Events   []TimelineEvent `json:"events"`
}

// MatchResponse é o corpo de GET /v1/matches/{id}
type MatchResponse struct {
	Status            string      `json:"status"`
	Match             MatchDetail `json:"match"`
	ExclusiveStartKey string      `json:"exclusiveStartKey,omitempty"`
}

// MatchStatistics agrega contagens de gols e faltas de uma partida
type MatchStatistics struct {
	Team       string `json:"team"`
	Opponent   string `json:"opponent"`
	TotalGoals int    `json:"total_goals"`
	TotalFouls int    `json:"total_fouls"`
}

// MatchStatisticsResponse é o corpo de GET /v1/matches/{id}/statistics
type MatchStatisticsResponse struct {
	Status     string          `json:"status"`
	MatchID    string          `json:"match_id"`
	Statistics MatchStatistics `json:"statistics"`
}

// TeamStatistics agrega o total de partidas registradas de um time
type TeamStatistics struct {
	TotalMatches int `json:"total_matches"`
}

// TeamStatisticsResponse é o corpo de GET /v1/teams/{name}/statistics
type TeamStatisticsResponse struct {
	Status     string         `json:"status"`
	Team       string         `json:"team"`
	Statistics TeamStatistics `json:"statistics"`
}

// ErrorResponse é o envelope de erro dos endpoints de leitura
type ErrorResponse struct {
	Status  string   `json:"status"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
