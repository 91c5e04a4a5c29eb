package scheduler

import (
	"context"
	"log/slog"
	"time"

	"mercado_fetcher/internal/domain"
)

// Extractor defines the interface for a full extraction pass.
type Extractor interface {
	ExtractAll(ctx context.Context, filters domain.Filters) ([]*domain.ExtractStats, error)
}

type Scheduler struct {
	extractor Extractor
	filters   domain.Filters
	interval  time.Duration
	logger    *slog.Logger
}

func NewScheduler(extractor Extractor, filters domain.Filters, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		extractor: extractor,
		filters:   filters,
		interval:  interval,
		logger:    logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runExtraction(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runExtraction(ctx)
		}
	}
}

func (s *Scheduler) runExtraction(ctx context.Context) {
	runCtx, cancel := context.WithTimeout(ctx, 10*time.Minute)
	defer cancel()

	if _, err := s.extractor.ExtractAll(runCtx, s.filters); err != nil {
		s.logger.Error("extraction failed", "error", err)
	}
}
