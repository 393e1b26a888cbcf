package domain

import "time"

type AnnotationKind string

const (
	AnnotationLabel   AnnotationKind = "label"
	AnnotationCallout AnnotationKind = "callout"
)

// Note is the text block of an annotation.
type Note struct {
	Title string
	Label string
	Wrap  int
	Align string
}

// Annotation is a positioned note, either a static page label or a
// per-marker callout that is revealed on hover.
type Annotation struct {
	Kind      AnnotationKind
	Note      Note
	X         int
	Y         int
	DX        int
	DY        int
	Connector string
	Radius    int
	Hidden    bool
}

// AnnotationSpec is a page label annotation as configured, before layout.
// Either X/Y are absolute plot coordinates or Date/Series anchor it on a
// data point.
type AnnotationSpec struct {
	Note      Note
	X         int
	Y         int
	Date      *time.Time
	Series    *Series
	DX        int
	DY        int
	Connector string
}
