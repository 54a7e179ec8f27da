package selection

import (
	"time"

	"github.com/Xenos72/NHLStatsAnalyzer1/internal/domain/season"
)

const (
	// MaxSelections is the number of player-seasons a session can compare.
	MaxSelections = 3

	DefaultName       = "Unknown"
	DefaultTeamAbbrev = "NHL"
)

// Palette is indexed by Selection.ColorIndex.
var Palette = [MaxSelections]string{"#38bdf8", "#f472b6", "#34d399"}

// Candidate is a search hit the user picked.
type Candidate struct {
	PlayerID   int64
	Name       string
	TeamAbbrev string
}

// Selection is one player-season in a comparison session.
type Selection struct {
	PlayerID         int64
	Name             string
	TeamAbbrev       string
	Season           season.ID
	AvailableSeasons []season.ID
	ColorIndex       int
	CreatedAt        time.Time
}

func (s Selection) Color() string {
	if s.ColorIndex < 0 || s.ColorIndex >= len(Palette) {
		return Palette[0]
	}
	return Palette[s.ColorIndex]
}

// State is an analysis session. Transitions in reducer.go never mutate a
// State in place.
type State struct {
	SessionID  string
	Selections []Selection
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	out := s
	if s.Selections == nil {
		return out
	}
	out.Selections = make([]Selection, len(s.Selections))
	for i, item := range s.Selections {
		item.AvailableSeasons = append([]season.ID(nil), item.AvailableSeasons...)
		out.Selections[i] = item
	}
	return out
}
