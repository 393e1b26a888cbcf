package workflow

import (
	"context"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Scheduler re-runs an import on a cron schedule. Schedules use the
// six-field form with a leading seconds field.
type Scheduler struct {
	cron   *cron.Cron
	runner *Runner

	mu      sync.Mutex
	results chan RunResult
	running bool
}

func NewScheduler(runner *Runner) *Scheduler {
	return &Scheduler{
		cron:    cron.New(cron.WithSeconds()),
		runner:  runner,
		results: make(chan RunResult, 16),
	}
}

// Register adds the import job. Overlapping runs are skipped.
func (s *Scheduler) Register(ctx context.Context, spec string) error {
	if _, err := s.cron.AddFunc(spec, func() { s.runOnce(ctx) }); err != nil {
		return fmt.Errorf("register import schedule %q: %w", spec, err)
	}
	return nil
}

func (s *Scheduler) runOnce(ctx context.Context) {
	logger := zerolog.Ctx(ctx)

	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		logger.Warn().Msg("previous import still running, skipping")
		return
	}
	s.running = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	res, err := s.runner.Run(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("scheduled import failed")
		return
	}
	select {
	case s.results <- res:
	default:
	}
}

// Results reports successful scheduled runs.
func (s *Scheduler) Results() <-chan RunResult {
	return s.results
}

func (s *Scheduler) Start(ctx context.Context) {
	s.cron.Start()
	zerolog.Ctx(ctx).Info().Int("jobs", len(s.cron.Entries())).Msg("import scheduler started")
}

// Stop halts the schedule and waits for a running import to return.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
