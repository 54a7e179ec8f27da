package season

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

const (
	// DefaultID is used when a player has no regular-season history at all.
	DefaultID ID = 20232024

	LeagueNHL             = "NHL"
	RegularSeasonGameType = 2
)

var ErrInvalidSeason = errors.New("invalid season id")

// ID is an 8-digit NHL season identifier, start year then end year.
type ID int64

// Label renders 20232024 as "23-24". Anything that is not 8 digits is
// returned unchanged.
func (id ID) Label() string {
	raw := strconv.FormatInt(int64(id), 10)
	if len(raw) != 8 {
		return raw
	}
	return raw[2:4] + "-" + raw[6:8]
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

func Parse(raw string) (ID, error) {
	raw = strings.TrimSpace(raw)
	if len(raw) != 8 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSeason, raw)
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSeason, raw)
	}
	return ID(value), nil
}

// Total is one row of a player's career season totals.
type Total struct {
	Season       ID
	LeagueAbbrev string
	GameTypeID   int
	GamesPlayed  int
}

// Available lists the distinct NHL regular seasons in totals, newest first.
// When none exist it falls back to current, then to DefaultID.
func Available(totals []Total, current ID) []ID {
	seen := make(map[ID]struct{}, len(totals))
	out := make([]ID, 0, len(totals))
	for _, total := range totals {
		if total.LeagueAbbrev != LeagueNHL || total.GameTypeID != RegularSeasonGameType || total.Season <= 0 {
			continue
		}
		if _, ok := seen[total.Season]; ok {
			continue
		}
		seen[total.Season] = struct{}{}
		out = append(out, total.Season)
	}

	if len(out) == 0 {
		if current > 0 {
			return []ID{current}
		}
		return []ID{DefaultID}
	}

	sort.Slice(out, func(i, j int) bool { return out[i] > out[j] })
	return out
}

// Contains reports whether id is one of seasons.
func Contains(seasons []ID, id ID) bool {
	for _, s := range seasons {
		if s == id {
			return true
		}
	}
	return false
}
