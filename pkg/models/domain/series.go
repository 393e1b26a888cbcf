package domain

import (
	"fmt"
	"strings"
)

// Series identifies one numeric column of the tourism data set.
type Series int

const (
	SeriesInbound Series = iota
	SeriesOutbound
	SeriesGDP
	SeriesUSDJPY
)

// AllSeries lists every series in CSV column order.
var AllSeries = []Series{SeriesInbound, SeriesOutbound, SeriesGDP, SeriesUSDJPY}

var seriesNames = map[Series]string{
	SeriesInbound:  "Inbound",
	SeriesOutbound: "Outbound",
	SeriesGDP:      "GDP",
	SeriesUSDJPY:   "USDJPY",
}

var seriesColors = map[Series]string{
	SeriesInbound:  "steelblue",
	SeriesOutbound: "green",
	SeriesGDP:      "orange",
	SeriesUSDJPY:   "red",
}

var seriesLabels = map[Series]string{
	SeriesInbound:  "Inbound Tourism into Japan",
	SeriesOutbound: "Outbound Tourism from Japan",
	SeriesGDP:      "GDP",
	SeriesUSDJPY:   "USD/JPY Exchange Rate",
}

func (s Series) String() string {
	if name, ok := seriesNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Series(%d)", int(s))
}

// Color is the stroke and marker color used for the series.
func (s Series) Color() string {
	return seriesColors[s]
}

// Label is the human-readable axis title for the series.
func (s Series) Label() string {
	return seriesLabels[s]
}

// Value returns the series value of the row and whether it is present.
func (s Series) Value(row TimeSeriesRow) (float64, bool) {
	var m Measure
	switch s {
	case SeriesInbound:
		m = row.Inbound
	case SeriesOutbound:
		m = row.Outbound
	case SeriesGDP:
		m = row.GDP
	case SeriesUSDJPY:
		m = row.USDJPY
	}
	return m.Value, m.Present
}

// ParseSeries resolves a column name (case-insensitive) to a Series.
func ParseSeries(name string) (Series, error) {
	for s, n := range seriesNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown series %q", name)
}
