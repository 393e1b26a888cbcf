package adapters

import (
	"database/sql"

	"github.com/de-tools/tourism-atlas/pkg/models/domain"
	"github.com/de-tools/tourism-atlas/pkg/models/store"
)

func MapDomainRowToStoreRecord(source string, position int, row domain.TimeSeriesRow) store.RowRecord {
	return store.RowRecord{
		Source:   source,
		Position: position,
		Date:     row.Date,
		Inbound:  toNullFloat(row.Inbound),
		Outbound: toNullFloat(row.Outbound),
		GDP:      toNullFloat(row.GDP),
		USDJPY:   toNullFloat(row.USDJPY),
	}
}

func MapStoreRecordToDomainRow(record store.RowRecord) domain.TimeSeriesRow {
	return domain.TimeSeriesRow{
		Date:     record.Date.UTC(),
		Inbound:  fromNullFloat(record.Inbound),
		Outbound: fromNullFloat(record.Outbound),
		GDP:      fromNullFloat(record.GDP),
		USDJPY:   fromNullFloat(record.USDJPY),
	}
}

func toNullFloat(m domain.Measure) sql.NullFloat64 {
	return sql.NullFloat64{Float64: m.Value, Valid: m.Present}
}

func fromNullFloat(n sql.NullFloat64) domain.Measure {
	if !n.Valid {
		return domain.Measure{}
	}
	return domain.Present(n.Float64)
}
