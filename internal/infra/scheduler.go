package infra

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"botdesk/internal/service"
)

// Scheduler manages the periodic background refresh jobs
type Scheduler struct {
	cron   *cron.Cron
	bots   *service.BotService
	market *service.MarketDataService
	logger *slog.Logger
	spec   string
}

// NewScheduler creates a new scheduler
// spec defaults to every five minutes if empty
func NewScheduler(bots *service.BotService, market *service.MarketDataService, spec string, logger *slog.Logger) *Scheduler {
	if spec == "" {
		spec = "*/5 * * * *"
	}
	return &Scheduler{
		cron:   cron.New(),
		bots:   bots,
		market: market,
		logger: logger,
		spec:   spec,
	}
}

// Start registers the refresh jobs and starts the scheduler
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.bots.Refresh(context.Background())
		s.market.RefreshSnapshot()
		s.logger.Debug("background refresh completed", "bots", s.bots.Count())
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("scheduler started", "spec", s.spec)
	return nil
}

// Stop stops the scheduler gracefully
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.logger.Info("scheduler stopped")
}
