package httpapi

import (
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/valyala/bytebufferpool"

	"github.com/Xenos72/NHLStatsAnalyzer1/internal/domain/analysis"
	"github.com/Xenos72/NHLStatsAnalyzer1/internal/domain/metric"
	"github.com/Xenos72/NHLStatsAnalyzer1/internal/usecase"
)

// exportCSV renders the raw-data table of a run. Series runs produce one row
// per game; distribution runs produce one row per bucket.
func exportCSV(result usecase.AnalysisResult) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	writer := csv.NewWriter(buf)
	var err error
	if result.Definition.Mode == metric.ModeDistribution {
		err = writeDistributionRows(writer, result)
	} else {
		err = writeSeriesRows(writer, result)
	}
	if err != nil {
		return nil, err
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return append([]byte(nil), buf.B...), nil
}

func writeSeriesRows(writer *csv.Writer, result usecase.AnalysisResult) error {
	withRolling := result.Definition.Mode == metric.ModeProjection

	header := []string{"player_name", "season", "game_number", "y_final"}
	if withRolling {
		header = append(header, "y_rolling")
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, row := range analysis.Rows(result.Series) {
		record := []string{
			row.PlayerName,
			row.Season.Label(),
			strconv.Itoa(row.GameNumber),
			formatValue(row.Value),
		}
		if withRolling {
			rolling := ""
			if row.Rolling != nil {
				rolling = formatValue(*row.Rolling)
			}
			record = append(record, rolling)
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	return nil
}

func writeDistributionRows(writer *csv.Writer, result usecase.AnalysisResult) error {
	if err := writer.Write([]string{"Player", "Season", "Category", "Value"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	unit := result.Definition.Unit
	for _, d := range result.Distributions {
		for _, s := range d.Slices {
			record := []string{d.Name, d.Season.Label(), s.Label, fmt.Sprintf("%.1f%s", s.Value, unit)}
			if err := writer.Write(record); err != nil {
				return fmt.Errorf("write csv row: %w", err)
			}
		}
	}
	return nil
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

func exportFilename(result usecase.AnalysisResult) string {
	return fmt.Sprintf("%s-%s.csv", result.Definition.ID, result.Definition.Mode)
}
