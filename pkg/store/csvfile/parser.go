package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/de-tools/tourism-atlas/pkg/models/domain"
)

// DateLayout is MM/DD/YYYY with optional leading zeros.
const DateLayout = "1/2/2006"

const dateColumn = "Date"

var ErrMissingDateColumn = errors.New("csv header has no Date column")

// Parse reads a header row followed by one row per line. Columns are located
// by header name, so ordering and extra columns do not matter.
func Parse(r io.Reader) ([]domain.TimeSeriesRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	columns := indexColumns(header)
	dateIdx, ok := columns[dateColumn]
	if !ok {
		return nil, ErrMissingDateColumn
	}

	var rows []domain.TimeSeriesRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}
		line, _ := reader.FieldPos(0)

		date, err := ParseDate(field(record, dateIdx))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		row := domain.TimeSeriesRow{Date: date}
		for _, s := range domain.AllSeries {
			idx, ok := columns[s.String()]
			if !ok {
				continue
			}
			m := ParseMeasure(field(record, idx))
			switch s {
			case domain.SeriesInbound:
				row.Inbound = m
			case domain.SeriesOutbound:
				row.Outbound = m
			case domain.SeriesGDP:
				row.GDP = m
			case domain.SeriesUSDJPY:
				row.USDJPY = m
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// ParseDate parses a MM/DD/YYYY date into a UTC calendar date.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return t, nil
}

// ParseMeasure maps empty or non-numeric text to an absent measure.
func ParseMeasure(value string) domain.Measure {
	value = strings.TrimSpace(value)
	if value == "" {
		return domain.Measure{}
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(value, ",", ""), 64)
	if err != nil {
		return domain.Measure{}
	}
	return domain.Present(v)
}

func indexColumns(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, dup := columns[name]; !dup {
			columns[name] = i
		}
	}
	return columns
}

func field(record []string, idx int) string {
	if idx < len(record) {
		return record[idx]
	}
	return ""
}
