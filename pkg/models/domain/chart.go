package domain

import "time"

type AxisSide string

const (
	AxisLeft  AxisSide = "left"
	AxisRight AxisSide = "right"
)

type Margin struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

type Extent struct {
	Min float64
	Max float64
}

type Tick struct {
	Value    float64
	Label    string
	Position int
}

// Point is one drawn marker.
type Point struct {
	Series  Series
	Date    time.Time
	Value   float64
	X       int
	Y       int
	Tooltip []string
}

// SeriesPlot holds everything drawn for one side of a dual-axis chart.
type SeriesPlot struct {
	Series Series
	Side   AxisSide
	Label  string
	Color  string
	Domain Extent
	Ticks  []Tick
	Path   string
	Points []Point
	Empty  bool
}

// Chart is the fully computed render model of one page.
type Chart struct {
	Page        PageConfig
	Width       int
	Height      int
	Margin      Margin
	PlotWidth   int
	PlotHeight  int
	TimeDomain  [2]time.Time
	TimeTicks   []Tick
	Primary     SeriesPlot
	Secondary   SeriesPlot
	Annotations []Annotation
}
