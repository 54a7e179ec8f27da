package httpapi

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/Xenos72/NHLStatsAnalyzer1/internal/domain/analysis"
	"github.com/Xenos72/NHLStatsAnalyzer1/internal/domain/metric"
	"github.com/Xenos72/NHLStatsAnalyzer1/internal/usecase"
)

const (
	chartWidth  = "1000px"
	chartHeight = "500px"
	pieWidth    = "320px"
	pieHeight   = "300px"

	// echarts treats "-" as a gap in a line series.
	missingValue = "-"
)

// Secondary donut slice colors; the first slice takes the player's color.
var donutAccents = []string{"#334155", "#94a3b8"}

func renderChart(ctx context.Context, w io.Writer, result usecase.AnalysisResult) error {
	if result.Definition.Mode == metric.ModeDistribution {
		return renderDonuts(ctx, w, result)
	}
	return renderLineChart(ctx, w, result)
}

func renderLineChart(ctx context.Context, w io.Writer, result usecase.AnalysisResult) error {
	_, span := startSpan(ctx, "httpapi.renderLineChart")
	defer span.End()

	def := result.Definition
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: result.Title,
			Width:     chartWidth,
			Height:    chartHeight,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    result.Title,
			Subtitle: result.Message,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
			Top:  "bottom",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Game Number",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: yAxisName(def),
		}),
	)

	line.SetXAxis(gameNumbers(analysis.MaxGames(result.Series)))

	for _, s := range result.Series {
		values := make([]opts.LineData, 0, len(s.Points))
		for _, p := range s.Points {
			values = append(values, opts.LineData{Value: p.Value})
		}
		line.AddSeries(fmt.Sprintf("%s (%s)", s.Name, s.Season.Label()), values,
			charts.WithLineStyleOpts(opts.LineStyle{Color: s.Color, Width: 3}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: s.Color}),
		)

		if def.Mode != metric.ModeProjection {
			continue
		}
		rolling := make([]opts.LineData, 0, len(s.Points))
		for _, p := range s.Points {
			if p.Rolling == nil {
				rolling = append(rolling, opts.LineData{Value: missingValue})
				continue
			}
			rolling = append(rolling, opts.LineData{Value: *p.Rolling})
		}
		line.AddSeries(s.Name+" (Rolling)", rolling,
			charts.WithLineStyleOpts(opts.LineStyle{Color: s.Color, Width: 1, Type: "dashed"}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: s.Color}),
		)
	}

	return line.Render(w)
}

func renderDonuts(ctx context.Context, w io.Writer, result usecase.AnalysisResult) error {
	_, span := startSpan(ctx, "httpapi.renderDonuts")
	defer span.End()

	page := components.NewPage()
	page.SetLayout(components.PageFlexLayout)

	for _, d := range result.Distributions {
		pie := charts.NewPie()
		pie.SetGlobalOptions(
			charts.WithInitializationOpts(opts.Initialization{
				Width:  pieWidth,
				Height: pieHeight,
			}),
			charts.WithTitleOpts(opts.Title{
				Title:    d.Name,
				Subtitle: "Season: " + d.Season.Label(),
			}),
			charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
			charts.WithColorsOpts(opts.Colors{d.Color, donutAccents[0], donutAccents[1]}),
		)

		data := make([]opts.PieData, 0, len(d.Slices))
		for _, s := range d.Slices {
			data = append(data, opts.PieData{Name: s.Label, Value: s.Value})
		}
		pie.AddSeries(result.Definition.Label, data,
			charts.WithPieChartOpts(opts.PieChart{Radius: []string{"45%", "70%"}}),
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{b}: {d}%"}),
		)
		page.AddCharts(pie)
	}

	return page.Render(w)
}

func yAxisName(def metric.Definition) string {
	if def.Unit == "" {
		return def.Label
	}
	return fmt.Sprintf("%s (%s)", def.Label, def.Unit)
}

func gameNumbers(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = strconv.Itoa(i + 1)
	}
	return out
}
