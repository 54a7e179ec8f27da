package nhl

import (
	"strconv"
	"strings"

	"github.com/Xenos72/NHLStatsAnalyzer1/internal/domain/gamelog"
	"github.com/Xenos72/NHLStatsAnalyzer1/internal/domain/player"
	"github.com/Xenos72/NHLStatsAnalyzer1/internal/domain/season"
)

// flexInt64 accepts both 8478402 and "8478402"; the search index returns ids
// as strings while api-web uses numbers.
type flexInt64 int64

func (v *flexInt64) UnmarshalJSON(raw []byte) error {
	text := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	if text == "" || text == "null" {
		*v = 0
		return nil
	}
	parsed, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return err
	}
	*v = flexInt64(parsed)
	return nil
}

type localizedText struct {
	Default string `json:"default"`
}

type searchHit struct {
	PlayerID     flexInt64 `json:"playerId"`
	Name         string    `json:"name"`
	PositionCode string    `json:"positionCode"`
	TeamAbbrev   *string   `json:"teamAbbrev"`
	Active       bool      `json:"active"`
}

type seasonTotalItem struct {
	Season       int64  `json:"season"`
	LeagueAbbrev string `json:"leagueAbbrev"`
	GameTypeID   int    `json:"gameTypeId"`
	GamesPlayed  int    `json:"gamesPlayed"`
}

type featuredStats struct {
	Season int64 `json:"season"`
}

type playerLanding struct {
	PlayerID          int64             `json:"playerId"`
	FirstName         localizedText     `json:"firstName"`
	LastName          localizedText     `json:"lastName"`
	CurrentTeamAbbrev string            `json:"currentTeamAbbrev"`
	Position          string            `json:"position"`
	SeasonID          *int64            `json:"seasonId"`
	FeaturedStats     *featuredStats    `json:"featuredStats"`
	SeasonTotals      []seasonTotalItem `json:"seasonTotals"`
}

type gameLogItem struct {
	GameID            *int64  `json:"gameId"`
	GameDate          *string `json:"gameDate"`
	TeamAbbrev        *string `json:"teamAbbrev"`
	OpponentAbbrev    *string `json:"opponentAbbrev"`
	HomeRoadFlag      *string `json:"homeRoadFlag"`
	TOI               *string `json:"toi"`
	PowerPlayTOI      *string `json:"powerPlayToi"`
	ShorthandedTOI    *string `json:"shorthandedToi"`
	Goals             *int    `json:"goals"`
	Assists           *int    `json:"assists"`
	Points            *int    `json:"points"`
	Shots             *int    `json:"shots"`
	PlusMinus         *int    `json:"plusMinus"`
	PowerPlayGoals    *int    `json:"powerPlayGoals"`
	PowerPlayPoints   *int    `json:"powerPlayPoints"`
	ShorthandedGoals  *int    `json:"shorthandedGoals"`
	ShorthandedPoints *int    `json:"shorthandedPoints"`
	PIM               *int    `json:"pim"`
	Shifts            *int    `json:"shifts"`
}

type gameLogResponse struct {
	GameLog []gameLogItem `json:"gameLog"`
}

func (h searchHit) toSummary() player.Summary {
	team := ""
	if h.TeamAbbrev != nil {
		team = strings.TrimSpace(*h.TeamAbbrev)
	}
	return player.Summary{
		ID:           int64(h.PlayerID),
		Name:         strings.TrimSpace(h.Name),
		TeamAbbrev:   team,
		PositionCode: h.PositionCode,
		Active:       h.Active,
	}
}

func (l playerLanding) toProfile() player.Profile {
	totals := make([]season.Total, 0, len(l.SeasonTotals))
	for _, item := range l.SeasonTotals {
		totals = append(totals, season.Total{
			Season:       season.ID(item.Season),
			LeagueAbbrev: item.LeagueAbbrev,
			GameTypeID:   item.GameTypeID,
			GamesPlayed:  item.GamesPlayed,
		})
	}

	var current season.ID
	switch {
	case l.SeasonID != nil:
		current = season.ID(*l.SeasonID)
	case l.FeaturedStats != nil:
		current = season.ID(l.FeaturedStats.Season)
	}

	return player.Profile{
		ID:            l.PlayerID,
		FirstName:     l.FirstName.Default,
		LastName:      l.LastName.Default,
		TeamAbbrev:    l.CurrentTeamAbbrev,
		PositionCode:  l.Position,
		CurrentSeason: current,
		SeasonTotals:  totals,
	}
}

func (g gameLogItem) toRawGame() gamelog.RawGame {
	return gamelog.RawGame{
		GameID:            g.GameID,
		GameDate:          g.GameDate,
		TeamAbbrev:        g.TeamAbbrev,
		OpponentAbbrev:    g.OpponentAbbrev,
		HomeRoadFlag:      g.HomeRoadFlag,
		TOI:               g.TOI,
		PowerPlayTOI:      g.PowerPlayTOI,
		ShorthandedTOI:    g.ShorthandedTOI,
		Goals:             g.Goals,
		Assists:           g.Assists,
		Points:            g.Points,
		Shots:             g.Shots,
		PlusMinus:         g.PlusMinus,
		PowerPlayGoals:    g.PowerPlayGoals,
		PowerPlayPoints:   g.PowerPlayPoints,
		ShorthandedGoals:  g.ShorthandedGoals,
		ShorthandedPoints: g.ShorthandedPoints,
		PIM:               g.PIM,
		Shifts:            g.Shifts,
	}
}
