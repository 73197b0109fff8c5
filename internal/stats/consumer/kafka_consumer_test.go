package consumer

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/radieske/match-stats-platform/pkg/contracts/events"
)

// fakeAggregator registra as chamadas e injeta falhas por time
type fakeAggregator struct {
	calls   []string
	failFor map[string]error
}

func (f *fakeAggregator) RecordMatchForTeam(_ context.Context, team, matchID string) error {
	f.calls = append(f.calls, team+"/"+matchID)
	if err, ok := f.failFor[team]; ok {
		return err
	}
	return nil
}

func notification() events.MatchEventRecorded {
	return events.MatchEventRecorded{
		MatchID:  "42",
		Date:     "2024-05-11T19:30:00Z",
		Team:     "Flamengo",
		Opponent: "Palmeiras",
	}
}

func TestProcessNotificationCreditsBothSides(t *testing.T) {
	agg := &fakeAggregator{}
	p := &Processor{Log: zap.NewNop(), Agg: agg}

	results := p.processNotification(context.Background(), notification())

	if len(results) != 2 {
		t.Fatalf("expected 2 pair results, got %d", len(results))
	}
	for _, r := range results {
		if r.err != nil {
			t.Fatalf("unexpected error for %s: %v", r.team, r.err)
		}
	}
	want := []string{"Flamengo/42", "Palmeiras/42"}
	for i, call := range want {
		if agg.calls[i] != call {
			t.Fatalf("call %d: got %s, want %s", i, agg.calls[i], call)
		}
	}
}

func TestProcessNotificationIsolatesPairFailures(t *testing.T) {
	agg := &fakeAggregator{failFor: map[string]error{"Flamengo": errors.New("store down")}}
	p := &Processor{Log: zap.NewNop(), Agg: agg}

	results := p.processNotification(context.Background(), notification())

	if results[0].err == nil {
		t.Fatal("expected failure for the first pair")
	}
	if results[1].err != nil {
		t.Fatalf("failure leaked into sibling pair: %v", results[1].err)
	}
	// o oponente foi processado mesmo com a falha do primeiro par
	if len(agg.calls) != 2 || agg.calls[1] != "Palmeiras/42" {
		t.Fatalf("opponent not processed: %v", agg.calls)
	}
}

func TestProcessNotificationTolerantToRedelivery(t *testing.T) {
	agg := &fakeAggregator{}
	p := &Processor{Log: zap.NewNop(), Agg: agg}
	ctx := context.Background()

	ev := notification()
	p.processNotification(ctx, ev)
	p.processNotification(ctx, ev) // reentrega at-least-once

	// cada entrega invoca o agregador de novo; a deduplicação é
	// responsabilidade do próprio agregador, não do consumer
	if len(agg.calls) != 4 {
		t.Fatalf("expected 4 aggregator calls, got %d", len(agg.calls))
	}
}
