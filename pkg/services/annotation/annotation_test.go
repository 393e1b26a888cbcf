package annotation

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/de-tools/tourism-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pageZero = `pages:
  0:
    - label: Tourism boom begins
      wrap: 150
      align: left
      x: 500
      y: 500
      dx: -50
      dy: -50
    - label: Financial crisis
      connector: arrow
      date: 2007-06-01
      series: GDP
      dx: -400
      dy: -400
`

func TestParse(t *testing.T) {
	set, err := Parse([]byte(pageZero))
	require.NoError(t, err)

	specs := set.For(0)
	require.Len(t, specs, 2)

	assert.Equal(t, "Tourism boom begins", specs[0].Note.Label)
	assert.Equal(t, 500, specs[0].X)
	assert.Equal(t, -50, specs[0].DY)
	assert.Nil(t, specs[0].Date)

	require.NotNil(t, specs[1].Date)
	require.NotNil(t, specs[1].Series)
	assert.Equal(t, time.Date(2007, 6, 1, 0, 0, 0, 0, time.UTC), *specs[1].Date)
	assert.Equal(t, domain.SeriesGDP, *specs[1].Series)
	assert.Equal(t, "arrow", specs[1].Connector)
	assert.Equal(t, 150, specs[1].Note.Wrap)
	assert.Equal(t, "left", specs[1].Note.Align)

	assert.Empty(t, set.For(3))
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "date without series", data: "pages:\n  0:\n    - label: x\n      date: 2007-06-01\n"},
		{name: "bad date", data: "pages:\n  0:\n    - label: x\n      date: 06/01/2007\n      series: GDP\n"},
		{name: "unknown series", data: "pages:\n  0:\n    - label: x\n      date: 2007-06-01\n      series: CPI\n"},
		{name: "not yaml", data: "pages: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	set, err := Load("")
	require.NoError(t, err)
	assert.Empty(t, set)

	path := filepath.Join(t.TempDir(), "annotations.yaml")
	require.NoError(t, os.WriteFile(path, []byte(pageZero), 0o644))
	set, err = Load(path)
	require.NoError(t, err)
	assert.Len(t, set.For(0), 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestCallouts(t *testing.T) {
	points := []domain.Point{
		{Series: domain.SeriesInbound, Date: time.Date(2007, 6, 1, 0, 0, 0, 0, time.UTC), Value: 8347, X: 10, Y: 20},
	}

	callouts := Callouts(points)
	require.Len(t, callouts, 1)

	c := callouts[0]
	assert.Equal(t, domain.AnnotationCallout, c.Kind)
	assert.Equal(t, "Value: 8347", c.Note.Title)
	assert.Equal(t, "2007-06-01", c.Note.Label)
	assert.Equal(t, 10, c.X)
	assert.Equal(t, 20, c.Y)
	assert.Equal(t, -142, c.DX)
	assert.Equal(t, 37, c.DY)
	assert.Equal(t, 4, c.Radius)
	assert.True(t, c.Hidden)
}
