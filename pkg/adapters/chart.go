package adapters

import (
	"github.com/de-tools/tourism-atlas/pkg/models/api"
	"github.com/de-tools/tourism-atlas/pkg/models/domain"
)

const apiDateLayout = "2006-01-02"

func MapDomainPageToAPI(cfg domain.PageConfig) api.Page {
	return api.Page{
		Index:          cfg.Index,
		Primary:        cfg.Primary.String(),
		Secondary:      cfg.Secondary.String(),
		PrimaryLabel:   cfg.PrimaryLabel,
		SecondaryLabel: cfg.SecondaryLabel,
	}
}

func MapDomainChartToAPI(chart *domain.Chart) *api.Chart {
	if chart == nil {
		return nil
	}

	annotations := make([]api.Annotation, 0, len(chart.Annotations))
	for _, a := range chart.Annotations {
		annotations = append(annotations, api.Annotation{
			Kind:      string(a.Kind),
			Title:     a.Note.Title,
			Label:     a.Note.Label,
			X:         a.X,
			Y:         a.Y,
			DX:        a.DX,
			DY:        a.DY,
			Connector: a.Connector,
			Hidden:    a.Hidden,
		})
	}

	return &api.Chart{
		Page:        MapDomainPageToAPI(chart.Page),
		Width:       chart.Width,
		Height:      chart.Height,
		TimeDomain:  chart.TimeDomain,
		TimeTicks:   mapTicks(chart.TimeTicks),
		Primary:     mapSeriesPlot(chart.Primary),
		Secondary:   mapSeriesPlot(chart.Secondary),
		Annotations: annotations,
	}
}

func mapSeriesPlot(plot domain.SeriesPlot) api.SeriesPlot {
	points := make([]api.Point, 0, len(plot.Points))
	for _, p := range plot.Points {
		points = append(points, api.Point{
			Date:    p.Date.Format(apiDateLayout),
			Value:   p.Value,
			X:       p.X,
			Y:       p.Y,
			Tooltip: p.Tooltip,
		})
	}

	return api.SeriesPlot{
		Series: plot.Series.String(),
		Side:   string(plot.Side),
		Label:  plot.Label,
		Color:  plot.Color,
		Domain: [2]float64{plot.Domain.Min, plot.Domain.Max},
		Ticks:  mapTicks(plot.Ticks),
		Path:   plot.Path,
		Points: points,
		Empty:  plot.Empty,
	}
}

func mapTicks(ticks []domain.Tick) []api.Tick {
	out := make([]api.Tick, 0, len(ticks))
	for _, t := range ticks {
		out = append(out, api.Tick{Value: t.Value, Label: t.Label, Position: t.Position})
	}
	return out
}

func MapDomainTabViewToAPI(view domain.TabView) api.TabView {
	tabs := make([]api.Tab, 0, len(view.Tabs))
	for _, t := range view.Tabs {
		tabs = append(tabs, api.Tab{
			Name:      t.Name,
			Button:    t.Button,
			Visible:   t.Visible,
			Highlight: t.Highlight,
		})
	}

	out := api.TabView{
		Active: view.Active,
		Tabs:   tabs,
		Chart:  MapDomainChartToAPI(view.Chart),
	}
	if view.Err != nil {
		out.Error = view.Err.Error()
	}
	return out
}
