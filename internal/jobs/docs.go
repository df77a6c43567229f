// Package jobs provides scheduled background tasks for the order system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. ServiceTimeRefreshJob - Periodically recomputes every restaurant's
// average service time from its delivered orders.
//
// The refresh is a repair mechanism: the delivery command already updates
// the average in the same transaction as the delivery, so under normal
// operation the job confirms the stored value rather than changing it. It
// exists to heal drift after manual data fixes or missed updates.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(uowFactory, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
package jobs
