// Package jobs provides scheduled background tasks for the cafe.
//
// Jobs are built on github.com/robfig/cron/v3.
//
// # Available Jobs
//
// BacklogReportJob logs how many orders are waiting for staff, split by
// derived status, and how long the oldest one has been waiting.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(getBacklogHandler, "@every 1m", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use the cron syntax with an optional leading seconds field,
// or descriptors such as "@every 30s". An empty schedule disables the job.
package jobs
