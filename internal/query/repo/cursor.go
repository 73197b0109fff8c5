package repo

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// startKey é a última chave retornada por uma página ("exclusive start key").
// A leitura seguinte retoma estritamente depois dela.
type startKey struct {
	MatchID string `json:"match_id"`
	Date    string `json:"date"`
}

// encodeCursor serializa a chave como token opaco para o cliente.
func encodeCursor(k startKey) string {
	b, _ := json.Marshal(k)
	return base64.RawURLEncoding.EncodeToString(b)
}

// decodeCursor reconstrói a chave a partir do token; vazio significa
// começar do início. Token corrompido é erro do cliente.
func decodeCursor(cursor string) (startKey, error) {
	if cursor == "" {
		return startKey{}, nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return startKey{}, fmt.Errorf("decode cursor: %w", err)
	}
	var k startKey
	if err := json.Unmarshal(raw, &k); err != nil {
		return startKey{}, fmt.Errorf("decode cursor: %w", err)
	}
	return k, nil
}
