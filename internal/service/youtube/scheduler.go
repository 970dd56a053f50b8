package youtube

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Scheduler runs periodic collection over the configured channels.
type Scheduler struct {
	collector  *Collector
	channelIDs []string
	interval   time.Duration
	logger     *zap.Logger
	ticker     *time.Ticker
	stopCh     chan struct{}
	runMu      sync.Mutex
}

func NewScheduler(collector *Collector, channelIDs []string, interval time.Duration, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		collector:  collector,
		channelIDs: channelIDs,
		interval:   interval,
		logger:     logger,
		stopCh:     make(chan struct{}),
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	s.ticker = time.NewTicker(s.interval)

	s.logger.Info("Collection scheduler started",
		zap.Duration("interval", s.interval),
		zap.Int("channels", len(s.channelIDs)))

	go s.runOnce(ctx)

	go func() {
		for {
			select {
			case <-s.ticker.C:
				s.runOnce(ctx)
			case <-s.stopCh:
				s.logger.Info("Collection scheduler stopped")
				return
			case <-ctx.Done():
				s.logger.Info("Collection scheduler context cancelled")
				return
			}
		}
	}()
}

func (s *Scheduler) Stop() {
	if s.ticker != nil {
		s.ticker.Stop()
	}
	close(s.stopCh)
}

// runOnce is serialized so a slow run never overlaps the next tick.
func (s *Scheduler) runOnce(ctx context.Context) {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	start := time.Now()
	reports := s.collector.CollectAll(ctx, s.channelIDs)

	totalOutliers := 0
	for _, report := range reports {
		totalOutliers += len(report.Outliers)
	}

	s.logger.Info("Collection run completed",
		zap.Int("channels_ok", len(reports)),
		zap.Int("channels_total", len(s.channelIDs)),
		zap.Int("outliers", totalOutliers),
		zap.Duration("elapsed", time.Since(start)))
}
