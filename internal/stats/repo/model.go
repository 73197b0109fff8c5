package repo

// TeamStats é o registro de estatísticas agregadas de um time.
// Invariante: TotalMatches == len(MatchIDs) e nenhum match_id repetido.
// Version sustenta o compare-and-swap do UpdateTeamStats.
type TeamStats struct {
	Team         string
	TotalMatches int
	MatchIDs     []string
	Version      int
}

// HasMatch informa se o match_id já foi contabilizado para o time.
func (t *TeamStats) HasMatch(matchID string) bool {
	for _, id := range t.MatchIDs {
		if id == matchID {
			return true
		}
	}
	return false
}
