package insights

import (
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var barColors = map[string]drawing.Color{
	TypeDelivery: chart.ColorBlue,
	TypeDineIn:   chart.ColorGreen,
}

// RenderBarChart writes the aggregate as a PNG bar chart.
func RenderBarChart(w io.Writer, agg Aggregate) error {
	max := 0
	bars := make([]chart.Value, 0, len(agg.Rows))
	for _, r := range agg.Rows {
		if r.Count > max {
			max = r.Count
		}
		bars = append(bars, chart.Value{
			Label: r.Type,
			Value: float64(r.Count),
			Style: chart.Style{
				FillColor:   barColors[r.Type],
				StrokeColor: barColors[r.Type],
				StrokeWidth: 1,
			},
		})
	}

	// go-chart rejects a zero-height range, so all-zero data still gets 0..1
	top := float64(max)
	if top < 1 {
		top = 1
	}

	graph := chart.BarChart{
		Title:      "# OF RESTAURANTS",
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 12}},
		Width:      640,
		Height:     400,
		BarWidth:   120,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: top},
		},
		Bars: bars,
	}

	return graph.Render(chart.PNG, w)
}
