package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type calendarSyncer interface {
	SyncFromProvider(ctx context.Context) (bool, error)
}

// Scheduler periodically pulls the provider's data so changes made by
// another session show up without a restart. Divergence resolves as
// last-write-wins.
type Scheduler struct {
	syncer   calendarSyncer
	interval time.Duration
	logger   logger.Logger
}

func New(syncer calendarSyncer, interval time.Duration, logger logger.Logger) *Scheduler {
	return &Scheduler{
		syncer:   syncer,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("sync scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("sync scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	changed, err := s.syncer.SyncFromProvider(ctx)
	if err != nil {
		s.logger.Error("calendar sync failed",
			logger.String("error", err.Error()),
		)
		return
	}

	if changed {
		s.logger.Info("calendar updated from provider")
	}
}
