package page

import (
	"testing"
	"time"

	"github.com/de-tools/tourism-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure_FixedTable(t *testing.T) {
	tests := []struct {
		index          int
		primary        domain.Series
		secondary      domain.Series
		primaryLabel   string
		secondaryLabel string
	}{
		{0, domain.SeriesInbound, domain.SeriesGDP, "Inbound Tourism into Japan", "GDP"},
		{1, domain.SeriesInbound, domain.SeriesUSDJPY, "Inbound Tourism into Japan", "USD/JPY Exchange Rate"},
		{2, domain.SeriesOutbound, domain.SeriesUSDJPY, "Outbound Tourism from Japan", "USD/JPY Exchange Rate"},
		{3, domain.SeriesOutbound, domain.SeriesInbound, "Outbound Tourism from Japan", "Inbound Tourism into Japan"},
	}

	for _, tt := range tests {
		t.Run(tt.primary.String()+"/"+tt.secondary.String(), func(t *testing.T) {
			cfg, err := Configure(tt.index)
			require.NoError(t, err)
			assert.Equal(t, tt.index, cfg.Index)
			assert.Equal(t, tt.primary, cfg.Primary)
			assert.Equal(t, tt.secondary, cfg.Secondary)
			assert.Equal(t, tt.primaryLabel, cfg.PrimaryLabel)
			assert.Equal(t, tt.secondaryLabel, cfg.SecondaryLabel)
		})
	}
}

func TestConfigure_OutOfRange(t *testing.T) {
	for _, index := range []int{-1, 4, 100} {
		_, err := Configure(index)
		assert.ErrorIs(t, err, ErrInvalidPage)
	}
}

func TestPages(t *testing.T) {
	pages := Pages()
	require.Len(t, pages, Count)
	for i, p := range pages {
		assert.Equal(t, i, p.Index)
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFilter_IncludesRowIffPresent(t *testing.T) {
	rows := []domain.TimeSeriesRow{
		{Date: day(2007, 6, 1), Inbound: domain.Present(8347), GDP: domain.Present(4515)},
		{Date: day(2007, 7, 1), Outbound: domain.Present(1561)},
		{Date: day(2007, 8, 1), Inbound: domain.Present(0), USDJPY: domain.Present(118)},
	}

	for _, s := range domain.AllSeries {
		filtered := Filter(rows, s)
		var want []time.Time
		for _, r := range rows {
			if _, ok := s.Value(r); ok {
				want = append(want, r.Date)
			}
		}
		var got []time.Time
		for _, r := range filtered {
			got = append(got, r.Date)
		}
		assert.Equal(t, want, got, s.String())
	}

	// zero is a present value
	assert.Len(t, Filter(rows, domain.SeriesInbound), 2)
}

func TestSelect_FiltersIndependently(t *testing.T) {
	rows := []domain.TimeSeriesRow{
		{Date: day(2007, 6, 1), Inbound: domain.Present(8347)},
		{Date: day(2007, 7, 1), GDP: domain.Present(4515)},
		{Date: day(2007, 8, 1), Inbound: domain.Present(9000), GDP: domain.Present(4600)},
	}
	cfg, err := Configure(0)
	require.NoError(t, err)

	sel := Select(rows, cfg)
	assert.Len(t, sel.All, 3)
	require.Len(t, sel.Primary, 2)
	require.Len(t, sel.Secondary, 2)
	assert.Equal(t, day(2007, 6, 1), sel.Primary[0].Date)
	assert.Equal(t, day(2007, 7, 1), sel.Secondary[0].Date)
}
