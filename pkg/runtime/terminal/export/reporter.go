package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/tourism-atlas/pkg/models/domain"
)

type TableConfig struct {
	NameWidth        int
	ValueWidth       int
	UnitWidth        int
	DescriptionWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		NameWidth:        20,
		ValueWidth:       20,
		UnitWidth:        8,
		DescriptionWidth: 20,
	}
}

// Reporter prints page summaries as text tables.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

const tableTemplate = `
{{.Title}} ({{.Period.Duration}} days)

Period: {{.Period.Start.Format "2006-01-02"}} to {{.Period.End.Format "2006-01-02"}}
Rows: {{.Rows}}
{{range .Sections}}
=== {{.Title}} ===
{{range $key, $value := .Summary}}{{$key}}: {{$value}}
{{end}}
{{- if .Details}}
{{separator}}
{{formatRow "Name" "Value" "Unit" "Date"}}
{{separator}}
{{range .Details}}{{formatRow .Name .Value .Unit .Description}}
{{end}}{{separator}}
{{end}}
{{- end}}`

const plainTemplate = `{{.Title}}
{{range .Sections}}{{.Title}}:{{range $key, $value := .Summary}} {{$key}}={{$value}}{{end}}
{{end}}`

func (c *Reporter) funcs() template.FuncMap {
	return template.FuncMap{
		"formatRow": func(name string, value interface{}, unit string, desc string) string {
			unitStr := unit
			if unit == "" {
				unitStr = strings.Repeat(" ", c.config.UnitWidth)
			}
			return fmt.Sprintf("| %-*s | %-*v | %-*s | %-*s |",
				c.config.NameWidth, name,
				c.config.ValueWidth, value,
				c.config.UnitWidth, unitStr,
				c.config.DescriptionWidth, desc)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+%s+",
				strings.Repeat("-", c.config.NameWidth+2),
				strings.Repeat("-", c.config.ValueWidth+2),
				strings.Repeat("-", c.config.UnitWidth+2),
				strings.Repeat("-", c.config.DescriptionWidth+2))
		},
	}
}

// Handle writes the report as a table per section.
func (c *Reporter) Handle(report *domain.Report) error {
	return c.execute(tableTemplate, report)
}

// HandlePlain writes one line per section.
func (c *Reporter) HandlePlain(report *domain.Report) error {
	return c.execute(plainTemplate, report)
}

func (c *Reporter) execute(text string, report *domain.Report) error {
	t, err := template.New("report").Funcs(c.funcs()).Parse(text)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	return t.Execute(c.writer, report)
}
