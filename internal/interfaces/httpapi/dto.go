package httpapi

import (
	"time"

	"github.com/Xenos72/NHLStatsAnalyzer1/internal/domain/analysis"
	"github.com/Xenos72/NHLStatsAnalyzer1/internal/domain/metric"
	"github.com/Xenos72/NHLStatsAnalyzer1/internal/domain/player"
	"github.com/Xenos72/NHLStatsAnalyzer1/internal/domain/season"
	"github.com/Xenos72/NHLStatsAnalyzer1/internal/domain/selection"
	"github.com/Xenos72/NHLStatsAnalyzer1/internal/usecase"
)

type addSelectionRequest struct {
	PlayerID   int64  `json:"player_id" validate:"required,gt=0"`
	Name       string `json:"name" validate:"max=100"`
	TeamAbbrev string `json:"team_abbrev" validate:"max=8"`
}

type changeSeasonRequest struct {
	Season int64 `json:"season" validate:"required,gt=0"`
}

type analysisRequest struct {
	Mode   string `json:"mode" validate:"required"`
	Metric string `json:"metric" validate:"required"`
}

type modeDTO struct {
	ID      string      `json:"id"`
	Label   string      `json:"label"`
	Metrics []metricDTO `json:"metrics"`
}

type metricDTO struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Unit  string `json:"unit"`
}

type playerSummaryDTO struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	TeamAbbrev string `json:"teamAbbrev"`
	Position   string `json:"position"`
	Active     bool   `json:"active"`
}

type seasonDTO struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
}

type sessionDTO struct {
	ID           string         `json:"id"`
	Selections   []selectionDTO `json:"selections"`
	CanAdd       bool           `json:"canAdd"`
	CreatedAtUTC string         `json:"createdAtUtc"`
	UpdatedAtUTC string         `json:"updatedAtUtc"`
}

type selectionDTO struct {
	Index            int         `json:"index"`
	PlayerID         int64       `json:"playerId"`
	Name             string      `json:"name"`
	TeamAbbrev       string      `json:"teamAbbrev"`
	Season           seasonDTO   `json:"season"`
	AvailableSeasons []seasonDTO `json:"availableSeasons"`
	Color            string      `json:"color"`
}

type analysisDTO struct {
	SessionID     string            `json:"sessionId"`
	Mode          string            `json:"mode"`
	Metric        string            `json:"metric"`
	Title         string            `json:"title"`
	Unit          string            `json:"unit"`
	Series        []seriesDTO       `json:"series"`
	Distributions []distributionDTO `json:"distributions"`
	Missing       []missingDTO      `json:"missing"`
	Message       string            `json:"message,omitempty"`
}

type seriesDTO struct {
	PlayerID int64      `json:"playerId"`
	Name     string     `json:"name"`
	Season   seasonDTO  `json:"season"`
	Color    string     `json:"color"`
	Points   []pointDTO `json:"points"`
}

type pointDTO struct {
	GameNumber int      `json:"gameNumber"`
	Value      float64  `json:"value"`
	Rolling    *float64 `json:"rolling,omitempty"`
}

type distributionDTO struct {
	PlayerID int64      `json:"playerId"`
	Name     string     `json:"name"`
	Season   seasonDTO  `json:"season"`
	Color    string     `json:"color"`
	Slices   []sliceDTO `json:"slices"`
}

type sliceDTO struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type missingDTO struct {
	Index    int       `json:"index"`
	PlayerID int64     `json:"playerId"`
	Name     string    `json:"name"`
	Season   seasonDTO `json:"season"`
	Reason   string    `json:"reason"`
}

func catalogToDTO() []modeDTO {
	modes := metric.Modes()
	out := make([]modeDTO, 0, len(modes))
	for _, mode := range modes {
		defs := metric.List(mode)
		metrics := make([]metricDTO, 0, len(defs))
		for _, def := range defs {
			metrics = append(metrics, metricDTO{ID: string(def.ID), Label: def.Label, Unit: def.Unit})
		}
		out = append(out, modeDTO{ID: string(mode), Label: mode.Label(), Metrics: metrics})
	}
	return out
}

func playerSummaryToDTO(v player.Summary) playerSummaryDTO {
	return playerSummaryDTO{
		ID:         v.ID,
		Name:       v.Name,
		TeamAbbrev: v.TeamAbbrev,
		Position:   v.PositionCode,
		Active:     v.Active,
	}
}

func seasonToDTO(id season.ID) seasonDTO {
	return seasonDTO{ID: int64(id), Label: id.Label()}
}

func seasonsToDTO(ids []season.ID) []seasonDTO {
	out := make([]seasonDTO, 0, len(ids))
	for _, id := range ids {
		out = append(out, seasonToDTO(id))
	}
	return out
}

func sessionToDTO(state selection.State) sessionDTO {
	items := make([]selectionDTO, 0, len(state.Selections))
	for i, sel := range state.Selections {
		items = append(items, selectionDTO{
			Index:            i,
			PlayerID:         sel.PlayerID,
			Name:             sel.Name,
			TeamAbbrev:       sel.TeamAbbrev,
			Season:           seasonToDTO(sel.Season),
			AvailableSeasons: seasonsToDTO(sel.AvailableSeasons),
			Color:            sel.Color(),
		})
	}

	return sessionDTO{
		ID:           state.SessionID,
		Selections:   items,
		CanAdd:       len(state.Selections) < selection.MaxSelections,
		CreatedAtUTC: state.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAtUTC: state.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func analysisToDTO(result usecase.AnalysisResult) analysisDTO {
	series := make([]seriesDTO, 0, len(result.Series))
	for _, s := range result.Series {
		points := make([]pointDTO, 0, len(s.Points))
		for _, p := range s.Points {
			points = append(points, pointDTO{GameNumber: p.GameIndex, Value: p.Value, Rolling: p.Rolling})
		}
		series = append(series, seriesDTO{
			PlayerID: s.PlayerID,
			Name:     s.Name,
			Season:   seasonToDTO(s.Season),
			Color:    s.Color,
			Points:   points,
		})
	}

	distributions := make([]distributionDTO, 0, len(result.Distributions))
	for _, d := range result.Distributions {
		distributions = append(distributions, distributionDTO{
			PlayerID: d.PlayerID,
			Name:     d.Name,
			Season:   seasonToDTO(d.Season),
			Color:    d.Color,
			Slices:   slicesToDTO(d.Slices),
		})
	}

	missing := make([]missingDTO, 0, len(result.Missing))
	for _, m := range result.Missing {
		missing = append(missing, missingDTO{
			Index:    m.Index,
			PlayerID: m.PlayerID,
			Name:     m.Name,
			Season:   seasonToDTO(m.Season),
			Reason:   m.Reason,
		})
	}

	return analysisDTO{
		SessionID:     result.SessionID,
		Mode:          string(result.Definition.Mode),
		Metric:        string(result.Definition.ID),
		Title:         result.Title,
		Unit:          result.Definition.Unit,
		Series:        series,
		Distributions: distributions,
		Missing:       missing,
		Message:       result.Message,
	}
}

func slicesToDTO(slices []analysis.Slice) []sliceDTO {
	out := make([]sliceDTO, 0, len(slices))
	for _, s := range slices {
		out = append(out, sliceDTO{Label: s.Label, Value: s.Value})
	}
	return out
}
