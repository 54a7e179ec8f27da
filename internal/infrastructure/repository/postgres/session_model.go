package postgres

import (
	"time"

	"github.com/Xenos72/NHLStatsAnalyzer1/internal/domain/season"
	"github.com/Xenos72/NHLStatsAnalyzer1/internal/domain/selection"
)

type sessionTableModel struct {
	ID         string    `db:"id"`
	Selections string    `db:"selections"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

// selectionDocument is the jsonb shape of one selection.
type selectionDocument struct {
	PlayerID         int64     `json:"player_id"`
	Name             string    `json:"name"`
	TeamAbbrev       string    `json:"team_abbrev"`
	Season           int64     `json:"season"`
	AvailableSeasons []int64   `json:"available_seasons"`
	ColorIndex       int       `json:"color_index"`
	CreatedAt        time.Time `json:"created_at"`
}

func toSelectionDocuments(items []selection.Selection) []selectionDocument {
	out := make([]selectionDocument, 0, len(items))
	for _, item := range items {
		seasons := make([]int64, 0, len(item.AvailableSeasons))
		for _, s := range item.AvailableSeasons {
			seasons = append(seasons, int64(s))
		}
		out = append(out, selectionDocument{
			PlayerID:         item.PlayerID,
			Name:             item.Name,
			TeamAbbrev:       item.TeamAbbrev,
			Season:           int64(item.Season),
			AvailableSeasons: seasons,
			ColorIndex:       item.ColorIndex,
			CreatedAt:        item.CreatedAt,
		})
	}
	return out
}

func fromSelectionDocuments(docs []selectionDocument) []selection.Selection {
	out := make([]selection.Selection, 0, len(docs))
	for _, doc := range docs {
		seasons := make([]season.ID, 0, len(doc.AvailableSeasons))
		for _, s := range doc.AvailableSeasons {
			seasons = append(seasons, season.ID(s))
		}
		out = append(out, selection.Selection{
			PlayerID:         doc.PlayerID,
			Name:             doc.Name,
			TeamAbbrev:       doc.TeamAbbrev,
			Season:           season.ID(doc.Season),
			AvailableSeasons: seasons,
			ColorIndex:       doc.ColorIndex,
			CreatedAt:        doc.CreatedAt,
		})
	}
	return out
}
