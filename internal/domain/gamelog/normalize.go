package gamelog

import (
	"sort"
	"strings"
	"time"
)

const zeroClock = "00:00"

var dateLayouts = []string{"2006-01-02", time.RFC3339}

// Normalize sorts raw games chronologically (stable for equal dates), assigns
// 1-based indexes, defaults absent numeric fields to zero and derives minutes
// and running totals. Games without a parseable date are dropped.
func Normalize(raw []RawGame) []Game {
	if len(raw) == 0 {
		return nil
	}

	games := make([]Game, 0, len(raw))
	for _, item := range raw {
		date, ok := parseDate(item.GameDate)
		if !ok {
			continue
		}
		games = append(games, fromRaw(item, date))
	}

	sort.SliceStable(games, func(i, j int) bool {
		return games[i].Date.Before(games[j].Date)
	})

	var cumGoals, cumShots, cumPoints, cumSpecial int
	for i := range games {
		g := &games[i]
		g.Index = i + 1

		cumGoals += g.Goals
		cumShots += g.Shots
		cumPoints += g.Points
		cumSpecial += g.SpecialTeamsPoints()

		g.CumGoals = cumGoals
		g.CumShots = cumShots
		g.CumPoints = cumPoints
		g.CumSpecialTeamsPoints = cumSpecial
	}

	return games
}

func fromRaw(item RawGame, date time.Time) Game {
	g := Game{
		GameID:            int64Value(item.GameID),
		Date:              date,
		TeamAbbrev:        stringValue(item.TeamAbbrev),
		OpponentAbbrev:    stringValue(item.OpponentAbbrev),
		HomeRoadFlag:      stringValue(item.HomeRoadFlag),
		TOI:               clockValue(item.TOI),
		PowerPlayTOI:      clockValue(item.PowerPlayTOI),
		ShorthandedTOI:    clockValue(item.ShorthandedTOI),
		Goals:             intValue(item.Goals),
		Assists:           intValue(item.Assists),
		Points:            intValue(item.Points),
		Shots:             intValue(item.Shots),
		PlusMinus:         intValue(item.PlusMinus),
		PowerPlayGoals:    intValue(item.PowerPlayGoals),
		PowerPlayPoints:   intValue(item.PowerPlayPoints),
		ShorthandedGoals:  intValue(item.ShorthandedGoals),
		ShorthandedPoints: intValue(item.ShorthandedPoints),
		PIM:               intValue(item.PIM),
		Shifts:            intValue(item.Shifts),
	}

	g.TOIMinutes = ParseTOI(g.TOI)
	g.PowerPlayTOIMinutes = ParseTOI(g.PowerPlayTOI)
	g.ShorthandedTOIMinutes = ParseTOI(g.ShorthandedTOI)
	g.EvenStrengthTOIMinutes = g.TOIMinutes - g.PowerPlayTOIMinutes - g.ShorthandedTOIMinutes
	if g.EvenStrengthTOIMinutes < 0 {
		g.EvenStrengthTOIMinutes = 0
	}

	return g
}

func parseDate(value *string) (time.Time, bool) {
	if value == nil {
		return time.Time{}, false
	}
	raw := strings.TrimSpace(*value)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

func intValue(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func int64Value(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}

func stringValue(v *string) string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(*v)
}

func clockValue(v *string) string {
	if clock := stringValue(v); clock != "" {
		return clock
	}
	return zeroClock
}
