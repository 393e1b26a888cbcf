package charts

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/de-tools/tourism-atlas/pkg/adapters"
	"github.com/de-tools/tourism-atlas/pkg/models/api"
	"github.com/de-tools/tourism-atlas/pkg/models/domain"
	"github.com/de-tools/tourism-atlas/pkg/services/chart"
	"github.com/de-tools/tourism-atlas/pkg/services/page"
	"github.com/de-tools/tourism-atlas/pkg/services/tabs"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type PageService interface {
	LoadPage(ctx context.Context, index int) (*domain.Chart, error)
}

type TabController interface {
	Init(ctx context.Context) (domain.TabView, error)
	Open(ctx context.Context, name, button, color string) (domain.TabView, error)
	View() domain.TabView
}

type Handler struct {
	pages PageService
	tabs  TabController
}

func NewHandler(pages PageService, tabCtrl TabController) *Handler {
	return &Handler{
		pages: pages,
		tabs:  tabCtrl,
	}
}

func (h *Handler) ListPages(w http.ResponseWriter, r *http.Request) {
	configs := page.Pages()
	response := make([]api.Page, 0, len(configs))
	for _, cfg := range configs {
		response = append(response, adapters.MapDomainPageToAPI(cfg))
	}
	writeJSON(r.Context(), w, http.StatusOK, response)
}

func (h *Handler) GetChart(w http.ResponseWriter, r *http.Request) {
	c, ok := h.loadChart(w, r)
	if !ok {
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, adapters.MapDomainChartToAPI(c))
}

func (h *Handler) GetChartSVG(w http.ResponseWriter, r *http.Request) {
	c, ok := h.loadChart(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := chart.WriteSVG(&buf, c); err != nil {
		writeError(r.Context(), w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(buf.Bytes())
}

func (h *Handler) GetChartPNG(w http.ResponseWriter, r *http.Request) {
	c, ok := h.loadChart(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := chart.Export(&buf, c, chart.FormatPNG); err != nil {
		writeError(r.Context(), w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(buf.Bytes())
}

// OpenTab switches the dashboard to a tab. The optional button and color
// query parameters name the clicked button and its highlight.
func (h *Handler) OpenTab(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := chi.URLParam(r, "tab")
	query := r.URL.Query()

	view, err := h.tabs.Open(ctx, name, query.Get("button"), query.Get("color"))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, tabs.ErrUnknownTab) {
			status = http.StatusNotFound
		}
		writeError(ctx, w, status, err)
		return
	}

	status := http.StatusOK
	if view.Err != nil {
		status = http.StatusBadGateway
	}
	writeJSON(ctx, w, status, adapters.MapDomainTabViewToAPI(view))
}

func (h *Handler) loadChart(w http.ResponseWriter, r *http.Request) (*domain.Chart, bool) {
	ctx := r.Context()
	raw := chi.URLParam(r, "page")

	index, err := strconv.Atoi(raw)
	if err != nil {
		writeError(ctx, w, http.StatusBadRequest, fmt.Errorf("%w: %q", page.ErrInvalidPage, raw))
		return nil, false
	}

	c, err := h.pages.LoadPage(ctx, index)
	switch {
	case errors.Is(err, page.ErrInvalidPage):
		writeError(ctx, w, http.StatusBadRequest, err)
		return nil, false
	case err != nil:
		writeError(ctx, w, http.StatusBadGateway, err)
		return nil, false
	}
	return c, true
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v interface{}) {
	data, err := sonic.Marshal(v)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to encode response")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func writeError(ctx context.Context, w http.ResponseWriter, status int, err error) {
	event := zerolog.Ctx(ctx).Warn()
	if status >= http.StatusInternalServerError {
		event = zerolog.Ctx(ctx).Error()
	}
	event.Err(err).Int("status", status).Msg("request failed")
	writeJSON(ctx, w, status, api.Error{Error: err.Error()})
}
