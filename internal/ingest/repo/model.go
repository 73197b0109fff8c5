package repo

// MatchEvent é o registro persistido no Postgres.
// A chave do registro é (MatchID, Date); eventos são imutáveis após a escrita.
type MatchEvent struct {
	MatchID   string
	Date      string // ISO-8601, range key do registro
	Team      string
	Opponent  string
	EventType string // vazio quando o evento não tem tipo
	Details   []byte // event_details serializado (JSONB); nil quando ausente
}
