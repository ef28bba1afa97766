package skills

import (
	"fmt"
	"image/color"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ExportPNG renders the skill scores as a bar chart PNG.
func (r *Radar) ExportPNG(w io.Writer, width, height int, accent color.RGBA) error {
	if len(r.Axes) == 0 {
		return fmt.Errorf("skills: no axes to export")
	}

	fill := drawing.Color{R: accent.R, G: accent.G, B: accent.B, A: 80}
	stroke := drawing.Color{R: accent.R, G: accent.G, B: accent.B, A: 255}

	bars := make([]chart.Value, 0, len(r.Axes))
	for _, a := range r.Axes {
		bars = append(bars, chart.Value{
			Label: a.Name,
			Value: a.Value,
			Style: chart.Style{FillColor: fill, StrokeColor: stroke, StrokeWidth: 2},
		})
	}

	bc := chart.BarChart{
		Title:      "Technical Skills",
		Width:      width,
		Height:     height,
		BarWidth:   max(10, width/(2*len(bars))),
		BarSpacing: max(4, width/(3*len(bars))),
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: r.Max},
		},
		Bars: bars,
	}

	if err := bc.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("rendering skills chart: %w", err)
	}
	return nil
}
