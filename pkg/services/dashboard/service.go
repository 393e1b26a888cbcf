package dashboard

import (
	"context"
	"fmt"

	"github.com/de-tools/tourism-atlas/pkg/models/domain"
	"github.com/de-tools/tourism-atlas/pkg/services/annotation"
	"github.com/de-tools/tourism-atlas/pkg/services/chart"
	"github.com/de-tools/tourism-atlas/pkg/services/page"
	"github.com/de-tools/tourism-atlas/pkg/store/source"
	"github.com/rs/zerolog"
)

type Service struct {
	loader      source.Loader
	renderer    *chart.Renderer
	annotations annotation.Set
}

func NewService(loader source.Loader, renderer *chart.Renderer, annotations annotation.Set) *Service {
	if renderer == nil {
		renderer = chart.NewRenderer(0, 0)
	}
	return &Service{
		loader:      loader,
		renderer:    renderer,
		annotations: annotations,
	}
}

// LoadPage reloads the data and renders one page from scratch.
func (s *Service) LoadPage(ctx context.Context, index int) (*domain.Chart, error) {
	sel, err := s.selection(ctx, index)
	if err != nil {
		return nil, err
	}

	c, err := s.renderer.Render(ctx, sel, s.annotations.For(index))
	if err != nil {
		return nil, fmt.Errorf("render page %d: %w", index, err)
	}

	zerolog.Ctx(ctx).Debug().
		Int("page", index).
		Int("primary_points", len(c.Primary.Points)).
		Int("secondary_points", len(c.Secondary.Points)).
		Msg("page rendered")
	return c, nil
}

func (s *Service) selection(ctx context.Context, index int) (page.Selection, error) {
	cfg, err := page.Configure(index)
	if err != nil {
		return page.Selection{}, err
	}

	rows, err := s.loader.Load(ctx)
	if err != nil {
		return page.Selection{}, fmt.Errorf("load rows: %w", err)
	}
	return page.Select(rows, cfg), nil
}
