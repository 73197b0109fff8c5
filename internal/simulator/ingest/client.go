package ingest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	ingestdto "github.com/radieske/match-stats-platform/internal/ingest/dto"
)

// Client envia eventos simulados para o endpoint /ingest do ingest-service
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(base string) *Client {
	return &Client{
		BaseURL: base,
		HTTP:    &http.Client{Timeout: 2 * time.Second},
	}
}

// SendEvent posta um evento e retorna o event_id atribuído pela API
func (c *Client) SendEvent(ctx context.Context, ev ingestdto.IngestEventRequest) (string, error) {
	body, _ := json.Marshal(ev)
	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/ingest", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := c.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()
	if res.StatusCode >= 300 {
		return "", fmt.Errorf("ingest http %d", res.StatusCode)
	}
	var out ingestdto.IngestSuccessResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.Data.EventID, nil
}
