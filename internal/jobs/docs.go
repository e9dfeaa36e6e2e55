// Package jobs provides scheduled background tasks for the order manager.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. EventRelayJob - Drains the transactional outbox and hands domain events
// to external subscribers in log order.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with the outbox reader
//	jobManager := jobs.NewJobManager(eventLog, "*/5 * * * * *", logger)
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
// Schedules use cron syntax with a seconds field. The relay interval bounds
// how stale a subscriber's view can be; events themselves are already durable
// by the time the job sees them.
//
// # Error Handling
//
// A failed tick is logged and retried on the next tick. Fetch and mark are
// idempotent, so a crash between them at worst re-delivers a batch.
package jobs
