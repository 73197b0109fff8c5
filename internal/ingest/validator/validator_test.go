package validator

import (
	"strings"
	"testing"

	"github.com/radieske/match-stats-platform/internal/ingest/dto"
)

func intPtr(v int) *int { return &v }

func validPayload() *dto.IngestEventRequest {
	return &dto.IngestEventRequest{
		MatchID:   "42",
		Timestamp: "2024-05-11T19:30:00Z",
		Team:      "Flamengo",
		Opponent:  "Palmeiras",
		EventType: "goal",
		Details: &dto.EventDetailsInput{
			Player:   &dto.PlayerInput{Name: "Pedro", Position: "forward", Number: intPtr(9)},
			GoalType: "open play",
			Minute:   intPtr(87),
			Assist:   &dto.PlayerInput{Name: "Arrascaeta", Position: "midfielder", Number: intPtr(14)},
			VideoURL: "https://example.com/goal.mp4",
		},
	}
}

func TestValidateIngestAcceptsFullPayload(t *testing.T) {
	if v := ValidateIngest(validPayload()); len(v) != 0 {
		t.Fatalf("expected no violations, got %v", v)
	}
}

func TestValidateIngestAcceptsMinimalPayload(t *testing.T) {
	req := &dto.IngestEventRequest{
		MatchID:   "7",
		Timestamp: "2024-05-11T19:30:00Z",
		Team:      "Santos",
		Opponent:  "Corinthians",
	}
	if v := ValidateIngest(req); len(v) != 0 {
		t.Fatalf("expected no violations, got %v", v)
	}
}

func TestValidateIngestRejections(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*dto.IngestEventRequest)
		wantSub string
	}{
		{
			name:    "missing match_id",
			mutate:  func(r *dto.IngestEventRequest) { r.MatchID = "" },
			wantSub: `"match_id" is required`,
		},
		{
			name:    "missing timestamp",
			mutate:  func(r *dto.IngestEventRequest) { r.Timestamp = "" },
			wantSub: `"timestamp" is required`,
		},
		{
			name:    "malformed timestamp",
			mutate:  func(r *dto.IngestEventRequest) { r.Timestamp = "11/05/2024" },
			wantSub: `"timestamp" must be an ISO-8601 timestamp`,
		},
		{
			name:    "missing team",
			mutate:  func(r *dto.IngestEventRequest) { r.Team = "" },
			wantSub: `"team" is required`,
		},
		{
			name:    "missing opponent",
			mutate:  func(r *dto.IngestEventRequest) { r.Opponent = "" },
			wantSub: `"opponent" is required`,
		},
		{
			name:    "team too long",
			mutate:  func(r *dto.IngestEventRequest) { r.Team = strings.Repeat("a", 31) },
			wantSub: `"team" must be at most 30 characters`,
		},
		{
			name:    "unknown event_type",
			mutate:  func(r *dto.IngestEventRequest) { r.EventType = "yellow-card" },
			wantSub: `"event_type" must be one of`,
		},
		{
			name:    "unknown goal_type",
			mutate:  func(r *dto.IngestEventRequest) { r.Details.GoalType = "header" },
			wantSub: `"event_details.goal_type" must be one of`,
		},
		{
			name:    "minute above limit",
			mutate:  func(r *dto.IngestEventRequest) { r.Details.Minute = intPtr(121) },
			wantSub: `"event_details.minute" must be between 0 and 120`,
		},
		{
			name:    "negative minute",
			mutate:  func(r *dto.IngestEventRequest) { r.Details.Minute = intPtr(-1) },
			wantSub: `"event_details.minute" must be between 0 and 120`,
		},
		{
			name:    "negative player number",
			mutate:  func(r *dto.IngestEventRequest) { r.Details.Player.Number = intPtr(-3) },
			wantSub: `.number must not be negative`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validPayload()
			tc.mutate(req)
			violations := ValidateIngest(req)
			if len(violations) == 0 {
				t.Fatal("expected violations, got none")
			}
			found := false
			for _, v := range violations {
				if strings.Contains(v, tc.wantSub) {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("violations %v do not mention %q", violations, tc.wantSub)
			}
		})
	}
}

func TestValidateIngestReportsAllViolations(t *testing.T) {
	req := &dto.IngestEventRequest{}
	violations := ValidateIngest(req)
	if len(violations) != 4 {
		t.Fatalf("expected 4 violations (match_id, timestamp, team, opponent), got %d: %v", len(violations), violations)
	}
}

func TestValidateTeamName(t *testing.T) {
	if v := ValidateTeamName("ab"); len(v) == 0 {
		t.Fatal("2-char team name should be rejected")
	}
	if v := ValidateTeamName(strings.Repeat("a", 31)); len(v) == 0 {
		t.Fatal("31-char team name should be rejected")
	}
	if v := ValidateTeamName("Arsenal"); len(v) != 0 {
		t.Fatalf("valid team name rejected: %v", v)
	}
}
