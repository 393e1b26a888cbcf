package api

import "time"

type Page struct {
	Index          int    `json:"index"`
	Primary        string `json:"primary"`
	Secondary      string `json:"secondary"`
	PrimaryLabel   string `json:"primary_label"`
	SecondaryLabel string `json:"secondary_label"`
}

type Tick struct {
	Value    float64 `json:"value"`
	Label    string  `json:"label"`
	Position int     `json:"position"`
}

type Point struct {
	Date    string   `json:"date"`
	Value   float64  `json:"value"`
	X       int      `json:"x"`
	Y       int      `json:"y"`
	Tooltip []string `json:"tooltip"`
}

type SeriesPlot struct {
	Series string     `json:"series"`
	Side   string     `json:"side"`
	Label  string     `json:"label"`
	Color  string     `json:"color"`
	Domain [2]float64 `json:"domain"`
	Ticks  []Tick     `json:"ticks"`
	Path   string     `json:"path"`
	Points []Point    `json:"points"`
	Empty  bool       `json:"empty,omitempty"`
}

type Annotation struct {
	Kind      string `json:"kind"`
	Title     string `json:"title,omitempty"`
	Label     string `json:"label"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
	DX        int    `json:"dx"`
	DY        int    `json:"dy"`
	Connector string `json:"connector,omitempty"`
	Hidden    bool   `json:"hidden"`
}

type Chart struct {
	Page        Page         `json:"page"`
	Width       int          `json:"width"`
	Height      int          `json:"height"`
	TimeDomain  [2]time.Time `json:"time_domain"`
	TimeTicks   []Tick       `json:"time_ticks"`
	Primary     SeriesPlot   `json:"primary"`
	Secondary   SeriesPlot   `json:"secondary"`
	Annotations []Annotation `json:"annotations"`
}

type Tab struct {
	Name      string `json:"name"`
	Button    string `json:"button"`
	Visible   bool   `json:"visible"`
	Highlight string `json:"highlight,omitempty"`
}

type TabView struct {
	Active string `json:"active"`
	Tabs   []Tab  `json:"tabs"`
	Chart  *Chart `json:"chart,omitempty"`
	Error  string `json:"error,omitempty"`
}

type Error struct {
	Error string `json:"error"`
}
