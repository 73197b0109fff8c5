package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/radieske/match-stats-platform/internal/ingest/dto"
	"github.com/radieske/match-stats-platform/internal/ingest/repo"
	"github.com/radieske/match-stats-platform/pkg/contracts/events"
)

type fakeStore struct {
	events []*repo.MatchEvent
	err    error
}

func (f *fakeStore) PutEvent(_ context.Context, e *repo.MatchEvent) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, e)
	return nil
}

type fakePublisher struct {
	published []events.MatchEventRecorded
	err       error
}

func (f *fakePublisher) PublishEventRecorded(_ context.Context, e events.MatchEventRecorded) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, e)
	return nil
}

const validBody = `{
	"match_id": "42",
	"timestamp": "2024-05-11T19:30:00Z",
	"team": "Flamengo",
	"opponent": "Palmeiras",
	"event_type": "goal",
	"event_details": {
		"player": {"name": "Pedro", "position": "forward", "number": 9},
		"goal_type": "open play",
		"minute": 87,
		"assist": {"name": "Arrascaeta", "position": "midfielder", "number": 14},
		"video_url": "https://example.com/goal.mp4"
	}
}`

func postIngest(t *testing.T, store *fakeStore, publ *fakePublisher, body string) *httptest.ResponseRecorder {
	t.Helper()
	srv := NewServer(zap.NewNop(), store, publ, "ingest-service")
	req := httptest.NewRequest(http.MethodPost, "/ingest", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func TestIngestPersistsAndPublishes(t *testing.T) {
	store := &fakeStore{}
	publ := &fakePublisher{}

	rec := postIngest(t, store, publ, validBody)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp dto.IngestSuccessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Status != "success" || resp.Data.EventID == "" || resp.Data.Timestamp == "" {
		t.Fatalf("unexpected response: %+v", resp)
	}

	if len(store.events) != 1 {
		t.Fatalf("expected 1 persisted event, got %d", len(store.events))
	}
	stored := store.events[0]
	if stored.MatchID != "42" || stored.Date != "2024-05-11T19:30:00Z" || stored.EventType != "goal" {
		t.Fatalf("unexpected stored event: %+v", stored)
	}
	if len(stored.Details) == 0 {
		t.Fatal("details were dropped on persist")
	}

	if len(publ.published) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(publ.published))
	}
	n := publ.published[0]
	if n.MatchID != "42" || n.Team != "Flamengo" || n.Opponent != "Palmeiras" {
		t.Fatalf("unexpected notification: %+v", n)
	}
}

func TestIngestRejectsInvalidPayload(t *testing.T) {
	store := &fakeStore{}
	publ := &fakePublisher{}

	body := `{"match_id": "", "timestamp": "2024-05-11T19:30:00Z", "team": "Flamengo", "opponent": "Palmeiras"}`
	rec := postIngest(t, store, publ, body)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	var resp dto.IngestErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Status != "error" || len(resp.Error) == 0 {
		t.Fatalf("unexpected error envelope: %+v", resp)
	}
	if len(store.events) != 0 {
		t.Fatal("invalid payload must not reach the store")
	}
	if len(publ.published) != 0 {
		t.Fatal("invalid payload must not be published")
	}
}

func TestIngestRejectsUnknownFields(t *testing.T) {
	store := &fakeStore{}
	publ := &fakePublisher{}

	body := `{"match_id": "42", "timestamp": "2024-05-11T19:30:00Z", "team": "A", "opponent": "B", "referee": "John"}`
	rec := postIngest(t, store, publ, body)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if len(store.events) != 0 {
		t.Fatal("payload with unknown field must not reach the store")
	}
}

func TestIngestStoreFailure(t *testing.T) {
	store := &fakeStore{err: errors.New("pg down")}
	publ := &fakePublisher{}

	rec := postIngest(t, store, publ, validBody)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	var resp dto.IngestErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Message != "Failed to ingest data." {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
	if len(publ.published) != 0 {
		t.Fatal("failed write must not publish a notification")
	}
}

func TestIngestPublishFailureStillSucceeds(t *testing.T) {
	store := &fakeStore{}
	publ := &fakePublisher{err: errors.New("kafka down")}

	rec := postIngest(t, store, publ, validBody)

	// a escrita venceu; a notificação é at-least-once e pode ser reentregue
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if len(store.events) != 1 {
		t.Fatal("event should have been persisted")
	}
}

func TestIngestMethodNotAllowed(t *testing.T) {
	srv := NewServer(zap.NewNop(), &fakeStore{}, &fakePublisher{}, "ingest-service")
	req := httptest.NewRequest(http.MethodGet, "/ingest", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}
