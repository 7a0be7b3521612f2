// Package jobs provides scheduled background tasks for the docflow service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the document workflow engine.
//
// # Available Jobs
//
// 1. PermitExpiryJob - Runs hourly to close active work permits whose validity window has ended
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(closeExpiredPermitsHandler, logger)
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
// The expiry sweep treats lost races as expected: a permit closed by a human
// between the sweep's read and write is skipped silently. All other failures
// are logged and retried on the next scheduled run.
package jobs
