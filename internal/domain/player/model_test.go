package player

import (
	"reflect"
	"testing"

	"github.com/Xenos72/NHLStatsAnalyzer1/internal/domain/season"
)

func TestNormalizeQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw   string
		query string
		ok    bool
	}{
		{raw: "mcd", query: "mcd", ok: true},
		{raw: "  Matthews ", query: "Matthews", ok: true},
		{raw: "mc", query: "mc", ok: false},
		{raw: "   ", query: "", ok: false},
	}

	for _, tc := range tests {
		query, ok := NormalizeQuery(tc.raw)
		if query != tc.query || ok != tc.ok {
			t.Fatalf("NormalizeQuery(%q) = (%q, %v), want (%q, %v)", tc.raw, query, ok, tc.query, tc.ok)
		}
	}
}

func TestProfileSeasons(t *testing.T) {
	t.Parallel()

	profile := Profile{
		FirstName:     "Connor",
		LastName:      "McDavid",
		CurrentSeason: 20232024,
		SeasonTotals: []season.Total{
			{Season: 20152016, LeagueAbbrev: "NHL", GameTypeID: 2},
			{Season: 20142015, LeagueAbbrev: "OHL", GameTypeID: 2},
			{Season: 20162017, LeagueAbbrev: "NHL", GameTypeID: 2},
		},
	}

	if got := profile.FullName(); got != "Connor McDavid" {
		t.Fatalf("unexpected full name %q", got)
	}
	want := []season.ID{20162017, 20152016}
	if got := profile.Seasons(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Seasons() = %v, want %v", got, want)
	}
}
