package chart

import (
	"fmt"
	"io"
	"time"

	"github.com/de-tools/tourism-atlas/pkg/models/domain"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatPNG, FormatSVG:
		return Format(s), nil
	}
	return "", fmt.Errorf("unsupported export format %q", s)
}

var hexColors = map[string]string{
	"steelblue": "4682b4",
	"green":     "008000",
	"orange":    "ffa500",
	"red":       "ff0000",
}

func strokeColor(name string) drawing.Color {
	if hex, ok := hexColors[name]; ok {
		return drawing.ColorFromHex(hex)
	}
	return gochart.ColorBlack
}

func seriesStyle(color string) gochart.Style {
	col := strokeColor(color)
	return gochart.Style{
		StrokeColor: col,
		StrokeWidth: 1.5,
		DotColor:    col,
		DotWidth:    3,
	}
}

// Export draws a static rendition of the chart with go-chart. There is no
// hover layer in exported images.
func Export(w io.Writer, c *domain.Chart, format Format) error {
	if c == nil {
		return fmt.Errorf("nil chart")
	}

	ticks := make([]gochart.Tick, 0, len(c.TimeTicks))
	for _, t := range c.TimeTicks {
		ticks = append(ticks, gochart.Tick{
			Value: gochart.TimeToFloat64(time.Unix(int64(t.Value), 0)),
			Label: t.Label,
		})
	}

	ch := gochart.Chart{
		Title:      fmt.Sprintf("%s vs %s", c.Page.Primary, c.Page.Secondary),
		Width:      c.Width,
		Height:     c.Height,
		Background: gochart.Style{Padding: gochart.Box{Top: c.Margin.Top + 20, Left: 20, Right: 20, Bottom: c.Margin.Bottom}},
		XAxis: gochart.XAxis{
			Name:  "Date",
			Ticks: ticks,
			Range: &gochart.ContinuousRange{
				Min: gochart.TimeToFloat64(c.TimeDomain[0]),
				Max: gochart.TimeToFloat64(c.TimeDomain[1]),
			},
		},
		// go-chart places YAxisSecondary on the left.
		YAxisSecondary: axis(c.Primary),
		YAxis:          axis(c.Secondary),
	}

	if s, ok := timeSeries(c.Primary, gochart.YAxisSecondary); ok {
		ch.Series = append(ch.Series, s)
	}
	if s, ok := timeSeries(c.Secondary, gochart.YAxisPrimary); ok {
		ch.Series = append(ch.Series, s)
	}
	if len(ch.Series) == 0 {
		return fmt.Errorf("page %d has no data to export", c.Page.Index)
	}
	ch.Elements = []gochart.Renderable{gochart.Legend(&ch)}

	renderer := gochart.PNG
	if format == FormatSVG {
		renderer = gochart.SVG
	}
	return ch.Render(renderer, w)
}

func axis(plot domain.SeriesPlot) gochart.YAxis {
	min, max := plot.Domain.Min, plot.Domain.Max
	if min == max {
		min, max = min-1, max+1
	}
	return gochart.YAxis{
		Name:  plot.Label,
		Range: &gochart.ContinuousRange{Min: min, Max: max},
	}
}

func timeSeries(plot domain.SeriesPlot, yAxis gochart.YAxisType) (gochart.TimeSeries, bool) {
	if plot.Empty || len(plot.Points) == 0 {
		return gochart.TimeSeries{}, false
	}
	xs := make([]time.Time, 0, len(plot.Points))
	ys := make([]float64, 0, len(plot.Points))
	for _, p := range plot.Points {
		xs = append(xs, p.Date)
		ys = append(ys, p.Value)
	}
	return gochart.TimeSeries{
		Name:    plot.Series.String(),
		XValues: xs,
		YValues: ys,
		YAxis:   yAxis,
		Style:   seriesStyle(plot.Color),
	}, true
}
