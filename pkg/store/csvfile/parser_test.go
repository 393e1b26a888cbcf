package csvfile

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `Date,Inbound,Outbound,GDP,USDJPY
6/1/2007,8347,,4515.26,122.64
07/01/2007,,1561,,121.56
8/1/2007,9012,1720,4530.1,
`

func TestParse_RowsInFileOrder(t *testing.T) {
	rows, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, time.Date(2007, time.June, 1, 0, 0, 0, 0, time.UTC), rows[0].Date)
	assert.Equal(t, time.Date(2007, time.July, 1, 0, 0, 0, 0, time.UTC), rows[1].Date)
	assert.Equal(t, time.Date(2007, time.August, 1, 0, 0, 0, 0, time.UTC), rows[2].Date)
}

func TestParse_EmptyFieldsAreAbsent(t *testing.T) {
	rows, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)

	assert.True(t, rows[0].Inbound.Present)
	assert.Equal(t, 8347.0, rows[0].Inbound.Value)
	assert.False(t, rows[0].Outbound.Present)

	assert.False(t, rows[1].Inbound.Present)
	assert.False(t, rows[1].GDP.Present)
	assert.Equal(t, 1561.0, rows[1].Outbound.Value)

	assert.False(t, rows[2].USDJPY.Present)
}

func TestParse_ColumnOrderAndExtraColumns(t *testing.T) {
	input := "USDJPY,Note,Date,GDP\n110.5,hello,1/1/2015,5000\n"
	rows, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, 110.5, rows[0].USDJPY.Value)
	assert.Equal(t, 5000.0, rows[0].GDP.Value)
	assert.False(t, rows[0].Inbound.Present)
	assert.False(t, rows[0].Outbound.Present)
}

func TestParse_ShortRecordsTolerated(t *testing.T) {
	input := "Date,Inbound,Outbound,GDP,USDJPY\n1/1/2015,100\n"
	rows, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Inbound.Present)
	assert.False(t, rows[0].USDJPY.Present)
}

func TestParse_InvalidDateReportsLine(t *testing.T) {
	input := "Date,Inbound\n1/1/2015,1\n2015-02-01,2\n"
	_, err := Parse(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
}

func TestParse_MissingDateColumn(t *testing.T) {
	_, err := Parse(strings.NewReader("Inbound,GDP\n1,2\n"))
	assert.ErrorIs(t, err, ErrMissingDateColumn)
}

func TestParse_EmptyInput(t *testing.T) {
	rows, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestParseMeasure(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		present bool
		value   float64
	}{
		{name: "integer", input: "8347", present: true, value: 8347},
		{name: "padded", input: "  12.5 ", present: true, value: 12.5},
		{name: "thousands separator", input: "1,234", present: true, value: 1234},
		{name: "empty", input: "", present: false},
		{name: "malformed", input: "n/a", present: false},
		{name: "not finite", input: "NaN", present: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := ParseMeasure(tt.input)
			assert.Equal(t, tt.present, m.Present)
			if tt.present {
				assert.Equal(t, tt.value, m.Value)
			}
		})
	}
}
