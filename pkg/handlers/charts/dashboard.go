package charts

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/de-tools/tourism-atlas/pkg/models/domain"
	"github.com/de-tools/tourism-atlas/pkg/services/chart"
	"github.com/de-tools/tourism-atlas/pkg/services/interaction"
	"github.com/rs/zerolog"
)

const dashboardTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Japan tourism atlas</title>
<style>
body { font-family: sans-serif; margin: 16px; }
.tablink { border: none; padding: 10px 16px; cursor: pointer; font-size: 14px; }
.tabcontent { display: none; }
.tabcontent.visible { display: block; }
.tooltip { position: absolute; pointer-events: none; background: #fff; border: 1px solid #999; padding: 6px; font-size: 12px; opacity: 0; }
.error { color: #b00; }
</style>
</head>
<body>
<div class="tabs">
{{- range .Tabs}}
<button class="tablink" id="{{.Button}}" data-tab="{{.Name}}"{{if .Highlight}} style="background-color: {{.Highlight}}"{{end}}>{{.Name}}</button>
{{- end}}
</div>
{{- range .Tabs}}
<div class="tabcontent{{if .Visible}} visible{{end}}" id="{{.Name}}">
{{- if .Visible}}
{{- if $.Chart}}
{{$.Chart}}
{{- else}}
<p class="error">Chart unavailable{{if $.Error}}: {{$.Error}}{{end}}</p>
{{- end}}
{{- end}}
</div>
{{- end}}
<p id="narrative">{{.Idle}}</p>
<div class="tooltip" id="tooltip"></div>
<script>
(function () {
  var cfg = {{.Hover}};
  var highlight = {{.Highlight}};
  var tooltip = document.getElementById("tooltip");
  var narrative = document.getElementById("narrative");

  function place(ev) {
    tooltip.style.left = (ev.pageX + cfg.offsetX) + "px";
    tooltip.style.top = (ev.pageY + cfg.offsetY) + "px";
  }
  function callouts(visibility) {
    document.querySelectorAll(".annotation-group-callouts").forEach(function (g) {
      g.setAttribute("visibility", visibility);
    });
  }

  document.querySelectorAll("circle.dot").forEach(function (dot) {
    dot.addEventListener("mouseover", function (ev) {
      tooltip.style.transition = "opacity " + cfg.showMs + "ms";
      tooltip.style.opacity = cfg.showOpacity;
      tooltip.innerHTML = dot.dataset.tooltip;
      place(ev);
      narrative.textContent = dot.dataset.narrative;
      callouts(cfg.showCallouts);
    });
    dot.addEventListener("mousemove", place);
    dot.addEventListener("mouseout", function () {
      tooltip.style.transition = "opacity " + cfg.hideMs + "ms";
      tooltip.style.opacity = cfg.hideOpacity;
      narrative.textContent = cfg.idle;
      callouts(cfg.hideCallouts);
    });
  });

  document.querySelectorAll(".tablink").forEach(function (btn) {
    btn.addEventListener("click", function () {
      var q = new URLSearchParams({tab: btn.dataset.tab, button: btn.id, color: highlight});
      window.location.search = q.toString();
    });
  });
{{- if .Watch}}

  new EventSource("/api/v1/events").addEventListener("reload", function () {
    window.location.reload();
  });
{{- end}}
})();
</script>
</body>
</html>
`

var dashboardTmpl = template.Must(template.New("dashboard").Parse(dashboardTemplate))

type dashboardData struct {
	Tabs      []domain.TabState
	Chart     template.HTML
	Error     string
	Idle      string
	Hover     interaction.ClientConfig
	Highlight string
	Watch     bool
}

type DashboardOptions struct {
	Highlight string
	Watch     bool
}

// Dashboard serves the tabbed page. ?tab= opens a tab, otherwise the
// current tab is shown, opening the default one on first use.
func (h *Handler) Dashboard(opts DashboardOptions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger := zerolog.Ctx(ctx)
		query := r.URL.Query()

		var (
			view domain.TabView
			err  error
		)
		switch {
		case query.Get("tab") != "":
			view, err = h.tabs.Open(ctx, query.Get("tab"), query.Get("button"), query.Get("color"))
		case h.tabs.View().Active == "":
			view, err = h.tabs.Init(ctx)
		default:
			view = h.tabs.View()
		}
		if err != nil {
			writeError(ctx, w, http.StatusNotFound, err)
			return
		}

		data := dashboardData{
			Tabs:      view.Tabs,
			Idle:      interaction.IdleNarrative,
			Hover:     interaction.NewClientConfig(interaction.DefaultBehavior),
			Highlight: opts.Highlight,
			Watch:     opts.Watch,
		}
		if view.Err != nil {
			data.Error = view.Err.Error()
		}
		if view.Chart != nil {
			svg, err := chart.SVG(view.Chart)
			if err != nil {
				writeError(ctx, w, http.StatusInternalServerError, err)
				return
			}
			data.Chart = svg
		}

		var buf bytes.Buffer
		if err := dashboardTmpl.Execute(&buf, data); err != nil {
			logger.Error().Err(err).Msg("failed to render dashboard")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(buf.Bytes())
	}
}
