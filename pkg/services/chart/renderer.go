package chart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/de-tools/tourism-atlas/pkg/models/domain"
	"github.com/de-tools/tourism-atlas/pkg/services/annotation"
	"github.com/de-tools/tourism-atlas/pkg/services/interaction"
	"github.com/de-tools/tourism-atlas/pkg/services/page"
	"github.com/rs/zerolog"
)

const (
	DefaultWidth  = 1200
	DefaultHeight = 700
	MarkerRadius  = 5
)

var DefaultMargin = domain.Margin{Top: 20, Right: 60, Bottom: 30, Left: 150}

var ErrNoData = errors.New("no rows to render")

type Renderer struct {
	Width  int
	Height int
	Margin domain.Margin
}

func NewRenderer(width, height int) *Renderer {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &Renderer{
		Width:  width,
		Height: height,
		Margin: DefaultMargin,
	}
}

// Render computes a complete chart for a page selection. Nothing is reused
// between calls.
func (r *Renderer) Render(
	ctx context.Context,
	sel page.Selection,
	specs []domain.AnnotationSpec,
) (*domain.Chart, error) {
	plotWidth := r.Width - r.Margin.Left - r.Margin.Right
	plotHeight := r.Height - r.Margin.Top - r.Margin.Bottom
	if plotWidth <= 0 || plotHeight <= 0 {
		return nil, fmt.Errorf("chart size %dx%d leaves no plot area", r.Width, r.Height)
	}
	if len(sel.All) == 0 {
		return nil, ErrNoData
	}

	from, to := timeExtent(sel.All)
	x := newTimeScale(from, to, plotWidth)

	primary, yLeft := plotSeries(sel.Primary, sel.Config.Primary, sel.Config.PrimaryLabel, domain.AxisLeft, x, plotHeight)
	secondary, yRight := plotSeries(sel.Secondary, sel.Config.Secondary, sel.Config.SecondaryLabel, domain.AxisRight, x, plotHeight)

	c := &domain.Chart{
		Page:       sel.Config,
		Width:      r.Width,
		Height:     r.Height,
		Margin:     r.Margin,
		PlotWidth:  plotWidth,
		PlotHeight: plotHeight,
		TimeDomain: [2]time.Time{from, to},
		TimeTicks:  timeTicks(from, to, x),
		Primary:    primary,
		Secondary:  secondary,
	}

	scales := map[domain.Series]scale{}
	if !primary.Empty {
		scales[sel.Config.Primary] = yLeft
	}
	if !secondary.Empty {
		scales[sel.Config.Secondary] = yRight
	}
	c.Annotations = append(c.Annotations, placeLabels(ctx, specs, sel.All, x, scales)...)
	c.Annotations = append(c.Annotations, annotation.Callouts(primary.Points)...)
	c.Annotations = append(c.Annotations, annotation.Callouts(secondary.Points)...)

	return c, nil
}

func timeExtent(rows []domain.TimeSeriesRow) (time.Time, time.Time) {
	from, to := rows[0].Date, rows[0].Date
	for _, row := range rows[1:] {
		if row.Date.Before(from) {
			from = row.Date
		}
		if row.Date.After(to) {
			to = row.Date
		}
	}
	return from, to
}

// valueExtent is [min, max] of the present values of series.
func valueExtent(rows []domain.TimeSeriesRow, series domain.Series) (domain.Extent, bool) {
	var ext domain.Extent
	found := false
	for _, row := range rows {
		v, ok := series.Value(row)
		if !ok {
			continue
		}
		if !found {
			ext = domain.Extent{Min: v, Max: v}
			found = true
			continue
		}
		if v < ext.Min {
			ext.Min = v
		}
		if v > ext.Max {
			ext.Max = v
		}
	}
	return ext, found
}

func plotSeries(
	rows []domain.TimeSeriesRow,
	series domain.Series,
	label string,
	side domain.AxisSide,
	x scale,
	height int,
) (domain.SeriesPlot, scale) {
	plot := domain.SeriesPlot{
		Series: series,
		Side:   side,
		Label:  label,
		Color:  series.Color(),
	}

	extent, ok := valueExtent(rows, series)
	if !ok {
		plot.Empty = true
		return plot, scale{}
	}
	plot.Domain = extent

	y := newScale(extent.Min, extent.Max, height, true)
	plot.Ticks = valueTicks(extent, y)

	plot.Points = make([]domain.Point, 0, len(rows))
	for _, row := range rows {
		v, ok := series.Value(row)
		if !ok {
			continue
		}
		plot.Points = append(plot.Points, domain.Point{
			Series:  series,
			Date:    row.Date,
			Value:   v,
			X:       x.applyTime(row.Date),
			Y:       y.apply(v),
			Tooltip: interaction.TooltipLines(series, row.Date, v),
		})
	}
	plot.Path = linePath(plot.Points)
	return plot, y
}

// placeLabels positions configured label annotations. Anchored notes whose
// series is not drawn, or has no value on the date, are dropped.
func placeLabels(
	ctx context.Context,
	specs []domain.AnnotationSpec,
	rows []domain.TimeSeriesRow,
	x scale,
	scales map[domain.Series]scale,
) []domain.Annotation {
	logger := zerolog.Ctx(ctx)

	out := make([]domain.Annotation, 0, len(specs))
	for _, spec := range specs {
		a := domain.Annotation{
			Kind:      domain.AnnotationLabel,
			Note:      spec.Note,
			X:         spec.X,
			Y:         spec.Y,
			DX:        spec.DX,
			DY:        spec.DY,
			Connector: spec.Connector,
		}

		if spec.Date != nil && spec.Series != nil {
			y, drawn := scales[*spec.Series]
			v, found := lookup(rows, *spec.Date, *spec.Series)
			if !drawn || !found {
				logger.Warn().
					Str("series", spec.Series.String()).
					Time("date", *spec.Date).
					Str("label", spec.Note.Label).
					Msg("dropping annotation without a data point")
				continue
			}
			a.X = x.applyTime(*spec.Date)
			a.Y = y.apply(v)
		}
		out = append(out, a)
	}
	return out
}

func lookup(rows []domain.TimeSeriesRow, date time.Time, series domain.Series) (float64, bool) {
	for _, row := range rows {
		if row.Date.Equal(date) {
			if v, ok := series.Value(row); ok {
				return v, true
			}
		}
	}
	return 0, false
}
