package season

import (
	"errors"
	"reflect"
	"testing"
)

func TestIDLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		id   ID
		want string
	}{
		{id: 20232024, want: "23-24"},
		{id: 19992000, want: "99-00"},
		{id: 20052006, want: "05-06"},
		{id: 2023, want: "2023"},
	}

	for _, tc := range tests {
		if got := tc.id.Label(); got != tc.want {
			t.Fatalf("ID(%d).Label() = %q, want %q", tc.id, got, tc.want)
		}
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	id, err := Parse(" 20222023 ")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if id != 20222023 {
		t.Fatalf("unexpected id: %d", id)
	}

	for _, raw := range []string{"", "2022", "2022202a", "-2222023"} {
		if _, err := Parse(raw); !errors.Is(err, ErrInvalidSeason) {
			t.Fatalf("Parse(%q) expected ErrInvalidSeason, got %v", raw, err)
		}
	}
}

func TestAvailable(t *testing.T) {
	t.Parallel()

	totals := []Total{
		{Season: 20212022, LeagueAbbrev: "NHL", GameTypeID: 2},
		{Season: 20212022, LeagueAbbrev: "NHL", GameTypeID: 3},
		{Season: 20232024, LeagueAbbrev: "NHL", GameTypeID: 2},
		{Season: 20222023, LeagueAbbrev: "AHL", GameTypeID: 2},
		{Season: 20222023, LeagueAbbrev: "NHL", GameTypeID: 2},
		{Season: 20232024, LeagueAbbrev: "NHL", GameTypeID: 2},
	}

	got := Available(totals, 0)
	want := []ID{20232024, 20222023, 20212022}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Available = %v, want %v", got, want)
	}
}

func TestAvailable_Fallbacks(t *testing.T) {
	t.Parallel()

	onlyAHL := []Total{{Season: 20182019, LeagueAbbrev: "AHL", GameTypeID: 2}}

	if got := Available(onlyAHL, 20242025); !reflect.DeepEqual(got, []ID{20242025}) {
		t.Fatalf("expected current season fallback, got %v", got)
	}
	if got := Available(nil, 0); !reflect.DeepEqual(got, []ID{DefaultID}) {
		t.Fatalf("expected default season fallback, got %v", got)
	}
}
