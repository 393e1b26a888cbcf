package interaction

import "github.com/de-tools/tourism-atlas/pkg/models/domain"

// ClientConfig is the hover behavior handed to the browser. It is read off
// a Tracker so the page and the state machine stay in step.
type ClientConfig struct {
	OffsetX      int     `json:"offsetX"`
	OffsetY      int     `json:"offsetY"`
	ShowOpacity  float64 `json:"showOpacity"`
	HideOpacity  float64 `json:"hideOpacity"`
	ShowMs       int64   `json:"showMs"`
	HideMs       int64   `json:"hideMs"`
	ShowCallouts string  `json:"showCallouts"`
	HideCallouts string  `json:"hideCallouts"`
	Idle         string  `json:"idle"`
}

func NewClientConfig(behavior Behavior) ClientConfig {
	tracker := NewTracker(behavior)
	shown := tracker.Handle(Enter(domain.Point{}, 0, 0))
	hidden := tracker.Handle(Leave())

	return ClientConfig{
		OffsetX:      shown.Left,
		OffsetY:      shown.Top,
		ShowOpacity:  shown.Opacity,
		HideOpacity:  hidden.Opacity,
		ShowMs:       shown.Transition.Milliseconds(),
		HideMs:       hidden.Transition.Milliseconds(),
		ShowCallouts: visibility(shown.AnnotationsVisible),
		HideCallouts: visibility(hidden.AnnotationsVisible),
		Idle:         IdleNarrative,
	}
}

func visibility(visible bool) string {
	if visible {
		return "visible"
	}
	return "hidden"
}
