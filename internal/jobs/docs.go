// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the food-court service.
//
// # Available Jobs
//
// 1. StaleOrderJob - Runs every minute to flag orders pending past the
// configured threshold and notify their customers
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(uowFactory, notifier, staleAfter, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Sweep failures are logged and retried on the next tick
// - Notification delivery is fire-and-forget; it never blocks the sweep
// - Failed job starts surface immediately so the process can abort startup
package jobs
