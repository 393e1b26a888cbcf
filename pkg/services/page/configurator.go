package page

import (
	"errors"
	"fmt"

	"github.com/de-tools/tourism-atlas/pkg/models/domain"
)

// Count is the number of chart pages.
const Count = 4

var ErrInvalidPage = errors.New("invalid page index")

var pageSeries = [Count][2]domain.Series{
	{domain.SeriesInbound, domain.SeriesGDP},
	{domain.SeriesInbound, domain.SeriesUSDJPY},
	{domain.SeriesOutbound, domain.SeriesUSDJPY},
	{domain.SeriesOutbound, domain.SeriesInbound},
}

// Selection is the data one page renders.
type Selection struct {
	Config    domain.PageConfig
	All       []domain.TimeSeriesRow
	Primary   []domain.TimeSeriesRow
	Secondary []domain.TimeSeriesRow
}

// Configure returns the series pair and axis labels of a page.
func Configure(index int) (domain.PageConfig, error) {
	if index < 0 || index >= Count {
		return domain.PageConfig{}, fmt.Errorf("%w: %d (expected 0..%d)", ErrInvalidPage, index, Count-1)
	}
	pair := pageSeries[index]
	return domain.PageConfig{
		Index:          index,
		Primary:        pair[0],
		Secondary:      pair[1],
		PrimaryLabel:   pair[0].Label(),
		SecondaryLabel: pair[1].Label(),
	}, nil
}

// Pages returns the configuration of every page in order.
func Pages() []domain.PageConfig {
	pages := make([]domain.PageConfig, 0, Count)
	for i := 0; i < Count; i++ {
		cfg, _ := Configure(i)
		pages = append(pages, cfg)
	}
	return pages
}

// Filter keeps the rows where series is present, in order.
func Filter(rows []domain.TimeSeriesRow, series domain.Series) []domain.TimeSeriesRow {
	filtered := make([]domain.TimeSeriesRow, 0, len(rows))
	for _, row := range rows {
		if _, ok := series.Value(row); ok {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// Select filters rows independently for the primary and secondary series.
func Select(rows []domain.TimeSeriesRow, cfg domain.PageConfig) Selection {
	return Selection{
		Config:    cfg,
		All:       rows,
		Primary:   Filter(rows, cfg.Primary),
		Secondary: Filter(rows, cfg.Secondary),
	}
}
