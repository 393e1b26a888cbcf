package domain

import (
	"math"
	"time"
)

// Measure is an optional numeric observation. The zero value is absent.
type Measure struct {
	Value   float64
	Present bool
}

// Present wraps v as a present measure. Non-finite values are treated as absent.
func Present(v float64) Measure {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Measure{}
	}
	return Measure{Value: v, Present: true}
}

// TimeSeriesRow is one parsed CSV line.
type TimeSeriesRow struct {
	Date     time.Time
	Inbound  Measure
	Outbound Measure
	GDP      Measure
	USDJPY   Measure
}
