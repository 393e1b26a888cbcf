package tabs

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/de-tools/tourism-atlas/pkg/models/domain"
	"github.com/de-tools/tourism-atlas/pkg/services/page"
	"github.com/rs/zerolog"
)

const DefaultHighlight = "#ccc"

var ErrUnknownTab = errors.New("unknown tab")

// PageLoader loads and renders one chart page.
type PageLoader interface {
	LoadPage(ctx context.Context, index int) (*domain.Chart, error)
}

// DefaultTabs returns one tab per chart page.
func DefaultTabs() []domain.Tab {
	pages := page.Pages()
	tabs := make([]domain.Tab, 0, len(pages))
	for _, cfg := range pages {
		name := fmt.Sprintf("%s-%s", cfg.Primary, cfg.Secondary)
		tabs = append(tabs, domain.Tab{
			Name:   name,
			Button: name + "-button",
			Page:   cfg.Index,
		})
	}
	return tabs
}

type Config struct {
	Tabs       []domain.Tab
	DefaultTab string
	Highlight  string
}

// Controller owns the tab state of one dashboard.
type Controller struct {
	loader     PageLoader
	tabs       []domain.Tab
	defaultTab string
	highlight  string

	mu         sync.Mutex
	generation uint64
	active     string
	visible    map[string]bool
	highlights map[string]string
	chart      *domain.Chart
	err        error
}

func NewController(loader PageLoader, cfg Config) *Controller {
	tabs := cfg.Tabs
	if len(tabs) == 0 {
		tabs = DefaultTabs()
	}
	defaultTab := cfg.DefaultTab
	if defaultTab == "" {
		defaultTab = tabs[0].Name
	}
	highlight := cfg.Highlight
	if highlight == "" {
		highlight = DefaultHighlight
	}

	return &Controller{
		loader:     loader,
		tabs:       tabs,
		defaultTab: defaultTab,
		highlight:  highlight,
		visible:    make(map[string]bool, len(tabs)),
		highlights: make(map[string]string, len(tabs)),
	}
}

func (c *Controller) Tabs() []domain.Tab {
	out := make([]domain.Tab, len(c.tabs))
	copy(out, c.tabs)
	return out
}

// Init opens the default tab as if its button had been clicked.
func (c *Controller) Init(ctx context.Context) (domain.TabView, error) {
	tab, err := c.lookup(c.defaultTab)
	if err != nil {
		return domain.TabView{}, err
	}
	return c.Open(ctx, tab.Name, tab.Button, c.highlight)
}

// Next opens the tab of the page after the active one, wrapping around.
func (c *Controller) Next(ctx context.Context) (domain.TabView, error) {
	c.mu.Lock()
	active := c.active
	c.mu.Unlock()

	if active == "" {
		return c.Init(ctx)
	}
	current, err := c.lookup(active)
	if err != nil {
		return domain.TabView{}, err
	}

	target := (current.Page + 1) % page.Count
	for _, tab := range c.tabs {
		if tab.Page == target {
			return c.Open(ctx, tab.Name, tab.Button, c.highlight)
		}
	}
	return domain.TabView{}, fmt.Errorf("%w: no tab for page %d", ErrUnknownTab, target)
}

// Open hides every container and clears every highlight, then shows the
// named tab, highlights the clicked button and renders the tab's page.
// A button that belongs to no tab is replaced by the tab's own button.
// When clicks overlap, the most recent one wins.
func (c *Controller) Open(ctx context.Context, name, button, color string) (domain.TabView, error) {
	tab, err := c.lookup(name)
	if err != nil {
		return domain.TabView{}, err
	}
	if !c.isButton(button) {
		button = tab.Button
	}
	if color == "" {
		color = c.highlight
	}

	c.mu.Lock()
	c.generation++
	gen := c.generation
	for _, t := range c.tabs {
		c.visible[t.Name] = false
		c.highlights[t.Button] = ""
	}
	c.visible[tab.Name] = true
	c.highlights[button] = color
	c.active = tab.Name
	c.chart, c.err = nil, nil
	c.mu.Unlock()

	logger := zerolog.Ctx(ctx).With().Str("tab", tab.Name).Int("page", tab.Page).Logger()

	chart, err := c.loader.LoadPage(ctx, tab.Page)
	if err != nil {
		logger.Error().Err(err).Msg("failed to load chart page")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		logger.Debug().Msg("discarding superseded page load")
		return c.snapshot(), nil
	}
	c.chart, c.err = chart, err
	return c.snapshot(), nil
}

func (c *Controller) isButton(name string) bool {
	for _, t := range c.tabs {
		if t.Button == name {
			return true
		}
	}
	return false
}

// View returns the current state without loading anything.
func (c *Controller) View() domain.TabView {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

func (c *Controller) snapshot() domain.TabView {
	states := make([]domain.TabState, 0, len(c.tabs))
	for _, t := range c.tabs {
		states = append(states, domain.TabState{
			Tab:       t,
			Visible:   c.visible[t.Name],
			Highlight: c.highlights[t.Button],
		})
	}
	return domain.TabView{
		Active: c.active,
		Tabs:   states,
		Chart:  c.chart,
		Err:    c.err,
	}
}

func (c *Controller) lookup(name string) (domain.Tab, error) {
	for _, t := range c.tabs {
		if t.Name == name {
			return t, nil
		}
	}
	return domain.Tab{}, fmt.Errorf("%w: %q", ErrUnknownTab, name)
}
