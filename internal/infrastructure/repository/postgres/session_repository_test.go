package postgres

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/lib/pq"

	"github.com/Xenos72/NHLStatsAnalyzer1/internal/domain/season"
	"github.com/Xenos72/NHLStatsAnalyzer1/internal/domain/selection"
)

func TestSessionRowRoundTrip(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	state := selection.State{
		SessionID: "6ba7b810-9dad-11d1-80b4-00c04fd430c8",
		Selections: []selection.Selection{
			{PlayerID: 8478402, Name: "Connor McDavid", TeamAbbrev: "EDM", Season: 20232024, AvailableSeasons: []season.ID{20232024, 20222023}, ColorIndex: 0, CreatedAt: created},
			{PlayerID: 8479318, Name: "Auston Matthews", TeamAbbrev: "TOR", Season: 20212022, AvailableSeasons: []season.ID{20212022}, ColorIndex: 1, CreatedAt: created},
		},
		CreatedAt: created,
		UpdatedAt: created.Add(time.Minute),
	}

	row, err := sessionToRow(state)
	if err != nil {
		t.Fatalf("sessionToRow: %v", err)
	}
	if !strings.Contains(row.Selections, `"player_id":8478402`) || !strings.Contains(row.Selections, `"available_seasons":[20232024,20222023]`) {
		t.Fatalf("unexpected selections document: %s", row.Selections)
	}

	got, err := sessionFromRow(row)
	if err != nil {
		t.Fatalf("sessionFromRow: %v", err)
	}
	if got.SessionID != state.SessionID || len(got.Selections) != 2 {
		t.Fatalf("unexpected state: %+v", got)
	}
	second := got.Selections[1]
	if second.Name != "Auston Matthews" || second.Season != 20212022 || second.ColorIndex != 1 || !second.CreatedAt.Equal(created) {
		t.Fatalf("unexpected selection: %+v", second)
	}
	if !got.UpdatedAt.Equal(state.UpdatedAt) {
		t.Fatalf("updated_at lost: %v", got.UpdatedAt)
	}
}

func TestSessionFromRow_EmptyAndInvalidDocument(t *testing.T) {
	got, err := sessionFromRow(sessionTableModel{ID: "s1", Selections: "[]"})
	if err != nil || len(got.Selections) != 0 {
		t.Fatalf("expected empty selections, got %+v err=%v", got.Selections, err)
	}

	if _, err := sessionFromRow(sessionTableModel{ID: "s1", Selections: "{broken"}); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestWrapQueryError(t *testing.T) {
	missing := &pq.Error{Code: "42P01", Message: `relation "analysis_sessions" does not exist`}
	err := wrapQueryError("select session", missing)
	if !strings.Contains(err.Error(), "run migrations") {
		t.Fatalf("expected migration hint, got %v", err)
	}
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		t.Fatalf("expected wrapped pq error")
	}

	plain := wrapQueryError("delete session", fmt.Errorf("conn reset"))
	if strings.Contains(plain.Error(), "run migrations") {
		t.Fatalf("unexpected hint for plain error: %v", plain)
	}
}
