package annotation

import (
	"fmt"
	"os"
	"time"

	"github.com/de-tools/tourism-atlas/pkg/models/domain"
	"github.com/de-tools/tourism-atlas/pkg/services/interaction"
	"gopkg.in/yaml.v3"
)

const (
	calloutDX     = -142
	calloutDY     = 37
	calloutRadius = 4
	dateLayout    = "2006-01-02"
)

// Set holds the label annotations configured per page index.
type Set map[int][]domain.AnnotationSpec

func (s Set) For(page int) []domain.AnnotationSpec {
	if s == nil {
		return nil
	}
	return s[page]
}

type fileSpec struct {
	Pages map[int][]entry `yaml:"pages"`
}

type entry struct {
	Title     string `yaml:"title"`
	Label     string `yaml:"label"`
	Wrap      int    `yaml:"wrap"`
	Align     string `yaml:"align"`
	X         int    `yaml:"x"`
	Y         int    `yaml:"y"`
	Date      string `yaml:"date"`
	Series    string `yaml:"series"`
	DX        int    `yaml:"dx"`
	DY        int    `yaml:"dy"`
	Connector string `yaml:"connector"`
}

// Load reads page annotations from a YAML file. An empty path yields an
// empty set.
func Load(path string) (Set, error) {
	if path == "" {
		return Set{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read annotations: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (Set, error) {
	var spec fileSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parse annotations: %w", err)
	}

	set := make(Set, len(spec.Pages))
	for page, entries := range spec.Pages {
		for i, e := range entries {
			a, err := e.toSpec()
			if err != nil {
				return nil, fmt.Errorf("page %d annotation %d: %w", page, i, err)
			}
			set[page] = append(set[page], a)
		}
	}
	return set, nil
}

func (e entry) toSpec() (domain.AnnotationSpec, error) {
	wrap := e.Wrap
	if wrap == 0 {
		wrap = 150
	}
	align := e.Align
	if align == "" {
		align = "left"
	}
	a := domain.AnnotationSpec{
		Note:      domain.Note{Title: e.Title, Label: e.Label, Wrap: wrap, Align: align},
		X:         e.X,
		Y:         e.Y,
		DX:        e.DX,
		DY:        e.DY,
		Connector: e.Connector,
	}

	if (e.Date == "") != (e.Series == "") {
		return a, fmt.Errorf("date and series must be set together")
	}
	if e.Date != "" {
		d, err := time.Parse(dateLayout, e.Date)
		if err != nil {
			return a, fmt.Errorf("invalid date %q: %w", e.Date, err)
		}
		s, err := domain.ParseSeries(e.Series)
		if err != nil {
			return a, err
		}
		a.Date = &d
		a.Series = &s
	}
	return a, nil
}

// Callouts builds one hidden callout per marker, revealed on hover.
func Callouts(points []domain.Point) []domain.Annotation {
	out := make([]domain.Annotation, 0, len(points))
	for _, p := range points {
		out = append(out, domain.Annotation{
			Kind: domain.AnnotationCallout,
			Note: domain.Note{
				Title: "Value: " + interaction.FormatValue(p.Value),
				Label: p.Date.Format(dateLayout),
			},
			X:      p.X,
			Y:      p.Y,
			DX:     calloutDX,
			DY:     calloutDY,
			Radius: calloutRadius,
			Hidden: true,
		})
	}
	return out
}
