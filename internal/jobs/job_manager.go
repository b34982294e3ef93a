package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	tokenSweepJob *TokenSweepJob
}

// NewJobManager wires every background job to its use case.
func NewJobManager(sweeper TokenSweeper, sweepSchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		tokenSweepJob: NewTokenSweepJob(sweeper, sweepSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.tokenSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start token sweep job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.tokenSweepJob.Stop()
}
