package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"smart-scholar/internal/scholar"
)

// ChartPNG renders a CHART visualization as a categorical bar chart with the
// theme and gold colors alternating by index parity.
func ChartPNG(v scholar.VisualData, themeColor string) ([]byte, error) {
	if v.Type != scholar.VisualChart {
		return nil, fmt.Errorf("not a chart visualization: %s", v.Type)
	}
	if len(v.ChartData) == 0 {
		return nil, fmt.Errorf("chart has no data points")
	}

	primary := drawing.ColorFromHex(strings.TrimPrefix(hexOrDefault(themeColor), "#"))
	secondary := drawing.ColorFromHex(strings.TrimPrefix(secondaryColor, "#"))

	bars := make([]chart.Value, len(v.ChartData))
	for i, p := range v.ChartData {
		fill := primary
		if i%2 == 1 {
			fill = secondary
		}
		bars[i] = chart.Value{
			Value: p.Value,
			Label: p.Name,
			Style: chart.Style{FillColor: fill, StrokeColor: fill},
		}
	}

	label := v.ChartLabel
	if label == "" {
		label = "Value"
	}
	graph := chart.BarChart{
		Title:    v.Title,
		Width:    1024,
		Height:   640,
		BarWidth: 60,
		YAxis: chart.YAxis{
			Name: label,
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}
