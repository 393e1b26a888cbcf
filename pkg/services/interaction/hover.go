package interaction

import (
	"fmt"
	"html"
	"strconv"
	"strings"
	"time"

	"github.com/de-tools/tourism-atlas/pkg/models/domain"
)

const (
	DateLayout      = "2006-01-02"
	narrativeLayout = "January 02, 2006"

	// IdleNarrative is shown when no point is hovered.
	IdleNarrative = "Hover over the points to see more details."
)

// Behavior describes where and how the floating label is shown.
type Behavior struct {
	OffsetX     int
	OffsetY     int
	ShowOpacity float64
	ShowFade    time.Duration
	HideFade    time.Duration
}

var DefaultBehavior = Behavior{
	OffsetX:     10,
	OffsetY:     -10,
	ShowOpacity: 0.9,
	ShowFade:    200 * time.Millisecond,
	HideFade:    500 * time.Millisecond,
}

type EventKind int

const (
	EventEnter EventKind = iota
	EventMove
	EventLeave
)

// Event is a discrete pointer input over a marker.
type Event struct {
	Kind  EventKind
	Point domain.Point
	PageX int
	PageY int
}

func Enter(p domain.Point, pageX, pageY int) Event {
	return Event{Kind: EventEnter, Point: p, PageX: pageX, PageY: pageY}
}

func Move(pageX, pageY int) Event {
	return Event{Kind: EventMove, PageX: pageX, PageY: pageY}
}

func Leave() Event {
	return Event{Kind: EventLeave}
}

// Tooltip is the floating label state after an event.
type Tooltip struct {
	Visible            bool
	Lines              []string
	Left               int
	Top                int
	Opacity            float64
	Transition         time.Duration
	AnnotationsVisible bool
}

// HTML joins the escaped lines with <br>.
func (t Tooltip) HTML() string {
	escaped := make([]string, len(t.Lines))
	for i, l := range t.Lines {
		escaped[i] = html.EscapeString(l)
	}
	return strings.Join(escaped, "<br>")
}

// Tracker holds the currently hovered point. The zero value is idle.
type Tracker struct {
	behavior Behavior
	hovered  *domain.Point
	tooltip  Tooltip
}

func NewTracker(behavior Behavior) *Tracker {
	return &Tracker{behavior: behavior}
}

// Handle applies an event and returns the resulting tooltip.
func (t *Tracker) Handle(ev Event) Tooltip {
	switch ev.Kind {
	case EventEnter:
		p := ev.Point
		t.hovered = &p
		t.tooltip = Tooltip{
			Visible:            true,
			Lines:              TooltipLines(p.Series, p.Date, p.Value),
			Opacity:            t.behavior.ShowOpacity,
			Transition:         t.behavior.ShowFade,
			AnnotationsVisible: true,
		}
		t.place(ev.PageX, ev.PageY)
	case EventMove:
		if t.hovered == nil {
			break
		}
		t.tooltip.Transition = 0
		t.place(ev.PageX, ev.PageY)
	case EventLeave:
		t.hovered = nil
		t.tooltip.Visible = false
		t.tooltip.Opacity = 0
		t.tooltip.Transition = t.behavior.HideFade
		t.tooltip.AnnotationsVisible = false
	}
	return t.tooltip
}

// Hovered returns the point under the pointer, if any.
func (t *Tracker) Hovered() (domain.Point, bool) {
	if t.hovered == nil {
		return domain.Point{}, false
	}
	return *t.hovered, true
}

func (t *Tracker) place(pageX, pageY int) {
	t.tooltip.Left = pageX + t.behavior.OffsetX
	t.tooltip.Top = pageY + t.behavior.OffsetY
}

// TooltipLines formats the date and value lines shown for a marker.
func TooltipLines(series domain.Series, date time.Time, value float64) []string {
	return []string{
		"Date: " + date.Format(DateLayout),
		fmt.Sprintf("%s: %s", series, FormatValue(value)),
	}
}

// FormatValue prints the shortest decimal form of v.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Narrative is the sentence shown for a hovered point in the single-chart view.
func Narrative(p domain.Point) string {
	return fmt.Sprintf("On %s, the value was %s.", p.Date.Format(narrativeLayout), FormatValue(p.Value))
}
