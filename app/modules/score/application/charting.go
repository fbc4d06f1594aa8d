package scoreservice

import (
	"bytes"
	"time"

	scoredb "github.com/Black-And-White-Club/budtender-trivia/app/modules/score/infrastructure/repositories"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ChartPalette holds the colours used by the history chart.
type ChartPalette struct {
	Background  drawing.Color
	PrimaryLine drawing.Color
	AccentLine  drawing.Color
	TextColor   drawing.Color
}

// DefaultPalette matches the dispensary dashboard theme.
var DefaultPalette = ChartPalette{
	Background:  drawing.ColorFromHex("f4f1e8"),
	PrimaryLine: drawing.ColorFromHex("2f5d3a"),
	AccentLine:  drawing.ColorFromHex("c9a227"),
	TextColor:   drawing.ColorFromHex("1f2a1f"),
}

// GenerateHistoryChart produces a PNG line chart of round percentages.
// scores must be oldest first.
func GenerateHistoryChart(scores []scoredb.Score, palette ChartPalette) ([]byte, error) {
	if len(scores) < 2 {
		// A time series needs two points to draw a line.
		return renderNoDataPlaceholder(palette, len(scores))
	}

	xValues := make([]time.Time, len(scores))
	yValues := make([]float64, len(scores))
	for i, s := range scores {
		xValues[i] = s.CreatedAt
		yValues[i] = s.Percentage
	}

	mainSeries := chart.TimeSeries{
		Name:    "Score %",
		XValues: xValues,
		YValues: yValues,
		Style: chart.Style{
			StrokeColor: palette.PrimaryLine,
			StrokeWidth: 2,
			DotWidth:    4,
			DotColor:    palette.AccentLine,
		},
	}

	graph := chart.Chart{
		Width:  800,
		Height: 400,
		Background: chart.Style{
			FillColor: palette.Background,
		},
		Canvas: chart.Style{
			FillColor: palette.Background,
		},
		XAxis: chart.XAxis{
			Name:           "Date",
			ValueFormatter: chart.TimeValueFormatterWithFormat("2006-01-02"),
			Style: chart.Style{
				FontColor: palette.TextColor,
			},
		},
		YAxis: chart.YAxis{
			Name: "Percentage",
			Style: chart.Style{
				FontColor: palette.TextColor,
			},
			Range: &chart.ContinuousRange{
				Min: 0,
				Max: 100,
			},
		},
		Series: []chart.Series{mainSeries},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func renderNoDataPlaceholder(palette ChartPalette, rounds int) ([]byte, error) {
	const (
		width  = 400
		height = 200
	)
	msg := "No score history yet"
	if rounds == 1 {
		msg = "Play another round to see your progress"
	}

	graph := chart.Chart{
		Width:  width,
		Height: height,
		Background: chart.Style{
			FillColor: palette.Background,
		},
		Canvas: chart.Style{
			FillColor: palette.Background,
		},
		Elements: []chart.Renderable{
			func(r chart.Renderer, cb chart.Box, chartDefaults chart.Style) {
				r.SetFontColor(palette.TextColor)
				r.SetFontSize(12.0)
				tb := r.MeasureText(msg)
				x := (cb.Width() - tb.Width()) / 2
				y := (cb.Height() + tb.Height()) / 2
				r.Text(msg, x, y)
			},
		},
	}
	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
