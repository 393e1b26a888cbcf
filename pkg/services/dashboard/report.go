package dashboard

import (
	"context"
	"fmt"
	"math"

	"github.com/de-tools/tourism-atlas/pkg/models/domain"
)

// Report summarises the two series of a page over the loaded period.
func (s *Service) Report(ctx context.Context, index int) (*domain.Report, error) {
	sel, err := s.selection(ctx, index)
	if err != nil {
		return nil, err
	}

	report := &domain.Report{
		Title: fmt.Sprintf("Page %d: %s vs %s", index, sel.Config.PrimaryLabel, sel.Config.SecondaryLabel),
		Rows:  len(sel.All),
		Sections: []domain.ReportSection{
			seriesSection(sel.Config.PrimaryLabel+" (left axis)", sel.Config.Primary, sel.Primary),
			seriesSection(sel.Config.SecondaryLabel+" (right axis)", sel.Config.Secondary, sel.Secondary),
		},
	}
	if len(sel.All) > 0 {
		start, end := sel.All[0].Date, sel.All[0].Date
		for _, row := range sel.All {
			if row.Date.Before(start) {
				start = row.Date
			}
			if row.Date.After(end) {
				end = row.Date
			}
		}
		report.Period = domain.TimePeriod{
			Start:    start,
			End:      end,
			Duration: int(end.Sub(start).Hours() / 24),
		}
	}
	return report, nil
}

func seriesSection(title string, series domain.Series, rows []domain.TimeSeriesRow) domain.ReportSection {
	section := domain.ReportSection{
		Title:   title,
		Summary: map[string]interface{}{"Points": len(rows)},
	}
	if len(rows) == 0 {
		return section
	}

	first, _ := series.Value(rows[0])
	last, _ := series.Value(rows[len(rows)-1])
	minV, maxV := math.Inf(1), math.Inf(-1)
	var minRow, maxRow domain.TimeSeriesRow
	for _, row := range rows {
		v, _ := series.Value(row)
		if v < minV {
			minV, minRow = v, row
		}
		if v > maxV {
			maxV, maxRow = v, row
		}
	}

	section.Summary["First"] = first
	section.Summary["Last"] = last
	if first != 0 {
		section.Summary["Change %"] = math.Round((last-first)/math.Abs(first)*10000) / 100
	}
	section.Details = []domain.ReportDetail{
		{Name: "Minimum", Value: minV, Description: minRow.Date.Format("2006-01-02")},
		{Name: "Maximum", Value: maxV, Description: maxRow.Date.Format("2006-01-02")},
	}
	return section
}
