package store

import (
	"database/sql"
	"time"
)

// RowRecord is the persisted form of a TimeSeriesRow.
type RowRecord struct {
	Source   string
	Position int
	Date     time.Time
	Inbound  sql.NullFloat64
	Outbound sql.NullFloat64
	GDP      sql.NullFloat64
	USDJPY   sql.NullFloat64
}

// ImportState records the last successful import of a source.
type ImportState struct {
	Source     string
	Rows       int
	ImportedAt time.Time
}
