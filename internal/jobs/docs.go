// Package jobs provides scheduled background tasks for the fabrication system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the fabrication service.
//
// # Available Jobs
//
// 1. StatusRepairJob - Runs every minute to re-derive the aggregate status of
// every unfinished order from its item gate states
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(repairStatusesHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The repair job uses the cron expression "0 * * * * *" which means it runs
// at the start of every minute. The scan is idempotent, so overlapping or
// repeated runs converge on the same statuses.
//
// # Error Handling
//
// - Per-order repair failures are logged and the scan continues
// - A failed scan run is logged and retried on the next tick
package jobs
