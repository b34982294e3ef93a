// Package jobs provides scheduled background tasks for the delivery system.
//
// Jobs are built on github.com/robfig/cron/v3 and run use cases from the
// commands package on a schedule.
//
// # Available Jobs
//
//   - TokenSweepJob removes allow-list rows whose expiry has passed. It runs
//     on TOKEN_SWEEP_SCHEDULE, every 12 hours by default.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(&sweepHandler, cfg.TokenSweepSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed sweep is logged and retried on the next tick. An invalid schedule
// fails StartAll.
package jobs
