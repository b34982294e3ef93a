package jobs

import (
	"context"
	"log/slog"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// DefaultSweepSchedule is used when no schedule is configured.
const DefaultSweepSchedule = "@every 12h"

// TokenSweeper removes expired allow-list rows and reports how many went.
type TokenSweeper interface {
	Handle(ctx context.Context, cmd commands.SweepExpiredTokensCommand) (int64, error)
}

// TokenSweepJob periodically purges expired tokens from the session store.
// Expired tokens are already rejected by their own expiry, so a missed run
// only costs storage.
type TokenSweepJob struct {
	sweeper  TokenSweeper
	schedule string
	now      func() time.Time
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewTokenSweepJob creates the job. schedule is any robfig/cron expression,
// including descriptors such as "@every 1h"; empty means DefaultSweepSchedule.
func NewTokenSweepJob(sweeper TokenSweeper, schedule string, logger *slog.Logger) *TokenSweepJob {
	if schedule == "" {
		schedule = DefaultSweepSchedule
	}
	return &TokenSweepJob{
		sweeper:  sweeper,
		schedule: schedule,
		now:      time.Now,
		cron:     cron.New(),
		logger:   logger.With("component", "token_sweep_job"),
	}
}

// Start registers the sweep on the schedule and starts the scheduler.
func (j *TokenSweepJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		_, _ = j.RunOnce(context.Background())
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Token sweep job started", slog.String("schedule", j.schedule))
	return nil
}

// RunOnce sweeps everything that expired before now.
func (j *TokenSweepJob) RunOnce(ctx context.Context) (int64, error) {
	cmd, err := commands.NewSweepExpiredTokensCommand(j.now())
	if err != nil {
		return 0, err
	}

	removed, err := j.sweeper.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Token sweep failed", slog.Any("error", err))
		return 0, err
	}

	metrics.SweptTokens.Add(float64(removed))
	if removed > 0 {
		j.logger.InfoContext(ctx, "Expired tokens removed", slog.Int64("count", removed))
	}
	return removed, nil
}

// Stop stops scheduling and waits for a running sweep to finish.
func (j *TokenSweepJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Token sweep job stopped")
}
