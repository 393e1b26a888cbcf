package chart

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/de-tools/tourism-atlas/pkg/models/domain"
	"github.com/de-tools/tourism-atlas/pkg/services/interaction"
)

var svgFuncs = template.FuncMap{
	"lower": strings.ToLower,
	"tooltip": func(p domain.Point) string {
		return interaction.Tooltip{Lines: p.Tooltip}.HTML()
	},
	"narrative": interaction.Narrative,
	"labels": func(as []domain.Annotation) []domain.Annotation {
		return filterAnnotations(as, domain.AnnotationLabel)
	},
	"callouts": func(as []domain.Annotation) []domain.Annotation {
		return filterAnnotations(as, domain.AnnotationCallout)
	},
	"arrow": func(a domain.Annotation) bool { return a.Connector == "arrow" },
}

const svgTemplate = `<svg xmlns="http://www.w3.org/2000/svg" class="chart" width="{{.Width}}" height="{{.Height}}" data-page="{{.Page.Index}}">
<defs><marker id="arrow-{{.Page.Index}}" viewBox="0 0 10 10" refX="5" refY="5" markerWidth="6" markerHeight="6" orient="auto-start-reverse"><path d="M0,0L10,5L0,10z"/></marker></defs>
<g transform="translate({{.Margin.Left}},{{.Margin.Top}})">
<g class="axis axis-x" transform="translate(0,{{.PlotHeight}})" font-size="10" text-anchor="middle">
<path class="domain" stroke="#000" d="M0,0H{{.PlotWidth}}"/>
{{- range .TimeTicks}}
<g class="tick" transform="translate({{.Position}},0)"><line stroke="#000" y2="6"/><text fill="#000" y="9" dy="0.71em">{{.Label}}</text></g>
{{- end}}
</g>
{{- with .Primary}}
<g class="axis axis-left" font-size="10" text-anchor="end">
<path class="domain" stroke="#000" d="M0,0V{{$.PlotHeight}}"/>
{{- range .Ticks}}
<g class="tick" transform="translate(0,{{.Position}})"><line stroke="#000" x2="-6"/><text fill="#000" x="-9" dy="0.32em">{{.Label}}</text></g>
{{- end}}
<text class="axis-label" fill="#000" transform="rotate(-90)" y="6" dy="0.71em" text-anchor="end" font-size="24px">{{.Label}}</text>
</g>
{{- end}}
{{- with .Secondary}}
<g class="axis axis-right" transform="translate({{$.PlotWidth}},0)" font-size="10" text-anchor="start">
<path class="domain" stroke="#000" d="M0,0V{{$.PlotHeight}}"/>
{{- range .Ticks}}
<g class="tick" transform="translate(0,{{.Position}})"><line stroke="#000" x2="6"/><text fill="#000" x="9" dy="0.32em">{{.Label}}</text></g>
{{- end}}
<text class="axis-label" fill="#000" transform="rotate(-90)" y="-12" dy="0.71em" text-anchor="end" font-size="24px">{{.Label}}</text>
</g>
{{- end}}
{{- with .Primary}}{{if not .Empty}}
<path class="line line-{{lower .Series.String}}" fill="none" stroke="{{.Color}}" stroke-width="1.5" d="{{.Path}}"/>
{{- end}}{{end}}
{{- with .Secondary}}{{if not .Empty}}
<path class="line line-{{lower .Series.String}}" fill="none" stroke="{{.Color}}" stroke-width="1.5" d="{{.Path}}"/>
{{- end}}{{end}}
<g class="annotation-group">
{{- range labels .Annotations}}
<g class="annotation label" transform="translate({{.X}},{{.Y}})">
<path class="annotation-connector" stroke="#000" fill="none" d="M0,0L{{.DX}},{{.DY}}"{{if arrow .}} marker-end="url(#arrow-{{$.Page.Index}})"{{end}}/>
<g class="annotation-note" transform="translate({{.DX}},{{.DY}})" data-wrap="{{.Note.Wrap}}" text-anchor="{{if eq .Note.Align "right"}}end{{else if eq .Note.Align "middle"}}middle{{else}}start{{end}}">
{{- if .Note.Title}}<text class="annotation-note-title" font-weight="bold">{{.Note.Title}}</text>{{end}}
<text class="annotation-note-label" dy="{{if .Note.Title}}1.2em{{else}}0{{end}}">{{.Note.Label}}</text>
</g>
</g>
{{- end}}
</g>
<g class="annotation-group-callouts" visibility="hidden">
{{- range callouts .Annotations}}
<g class="annotation callout" transform="translate({{.X}},{{.Y}})">
<circle class="annotation-subject" r="{{.Radius}}" fill="none" stroke="#000"/>
<path class="annotation-connector" stroke="#000" d="M0,0L{{.DX}},{{.DY}}"/>
<g class="annotation-note" transform="translate({{.DX}},{{.DY}})"><text class="annotation-note-title">{{.Note.Title}}</text><text class="annotation-note-label" dy="1.2em">{{.Note.Label}}</text></g>
</g>
{{- end}}
</g>
{{- range .Primary.Points}}
<circle class="dot dot-primary" cx="{{.X}}" cy="{{.Y}}" r="{{radius}}" fill="{{$.Primary.Color}}" data-tooltip="{{tooltip .}}" data-narrative="{{narrative .}}"/>
{{- end}}
{{- range .Secondary.Points}}
<circle class="dot dot-secondary" cx="{{.X}}" cy="{{.Y}}" r="{{radius}}" fill="{{$.Secondary.Color}}" data-tooltip="{{tooltip .}}" data-narrative="{{narrative .}}"/>
{{- end}}
</g>
</svg>
`

var svgTmpl = template.Must(template.New("chart").
	Funcs(svgFuncs).
	Funcs(template.FuncMap{"radius": func() int { return MarkerRadius }}).
	Parse(svgTemplate))

// WriteSVG writes the chart as a standalone SVG element. Markers carry their
// tooltip markup in data-tooltip; the callout group starts hidden.
func WriteSVG(w io.Writer, c *domain.Chart) error {
	if c == nil {
		return fmt.Errorf("nil chart")
	}
	return svgTmpl.Execute(w, c)
}

// SVG returns the chart markup for embedding in an HTML page.
func SVG(c *domain.Chart) (template.HTML, error) {
	var buf bytes.Buffer
	if err := WriteSVG(&buf, c); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

func filterAnnotations(as []domain.Annotation, kind domain.AnnotationKind) []domain.Annotation {
	out := make([]domain.Annotation, 0, len(as))
	for _, a := range as {
		if a.Kind == kind {
			out = append(out, a)
		}
	}
	return out
}
