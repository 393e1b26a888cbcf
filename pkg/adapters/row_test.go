package adapters

import (
	"database/sql"
	"testing"
	"time"

	"github.com/de-tools/tourism-atlas/pkg/models/domain"
	"github.com/de-tools/tourism-atlas/pkg/models/store"
	"github.com/stretchr/testify/assert"
)

func TestMapStoreRecordToDomainRow_AbsentColumns(t *testing.T) {
	record := store.RowRecord{
		Source:   "data.csv",
		Position: 3,
		Date:     time.Date(2007, 6, 1, 0, 0, 0, 0, time.UTC),
		Inbound:  sql.NullFloat64{Float64: 8347, Valid: true},
		GDP:      sql.NullFloat64{Float64: 0, Valid: false},
	}

	row := MapStoreRecordToDomainRow(record)

	assert.Equal(t, domain.Measure{Value: 8347, Present: true}, row.Inbound)
	assert.False(t, row.GDP.Present)
	assert.False(t, row.Outbound.Present)
	assert.False(t, row.USDJPY.Present)
}

func TestMapDomainRowToStoreRecord_KeepsPosition(t *testing.T) {
	row := domain.TimeSeriesRow{
		Date:   time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC),
		USDJPY: domain.Present(91.2),
	}

	record := MapDomainRowToStoreRecord("s3://bucket/data.csv", 7, row)

	assert.Equal(t, 7, record.Position)
	assert.Equal(t, "s3://bucket/data.csv", record.Source)
	assert.True(t, record.USDJPY.Valid)
	assert.InDelta(t, 91.2, record.USDJPY.Float64, 1e-9)
	assert.False(t, record.Inbound.Valid)
}
