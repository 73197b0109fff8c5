package ws

// ClientMsg representa uma mensagem recebida do cliente WebSocket
// Type: subscribe | unsubscribe | ping
// MatchID: obrigatório para subscribe/unsubscribe
type ClientMsg struct {
	Type    string `json:"type"`    // subscribe | unsubscribe | ping
	MatchID string `json:"matchId"` // requerido em subscribe/unsubscribe
}

// MatchUpdate representa uma notificação de evento enviada aos clientes WebSocket
type MatchUpdate struct {
	MatchID string      `json:"matchId"`
	Payload interface{} `json:"payload"`
}
