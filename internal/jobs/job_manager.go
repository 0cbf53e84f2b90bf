package jobs

import (
	"fmt"
	"log/slog"

	"cafe/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	backlogReportJob *BacklogReportJob
}

// NewJobManager creates the job manager. An empty backlogSchedule leaves
// the backlog report disabled.
func NewJobManager(
	getBacklogHandler queries.GetBacklogQueryHandler,
	backlogSchedule string,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{}
	if backlogSchedule != "" {
		jm.backlogReportJob = NewBacklogReportJob(getBacklogHandler, backlogSchedule, logger)
	}
	return jm
}

// StartAll starts all enabled jobs.
func (jm *JobManager) StartAll() error {
	if jm.backlogReportJob != nil {
		if err := jm.backlogReportJob.Start(); err != nil {
			return fmt.Errorf("failed to start backlog report job: %w", err)
		}
	}

	return nil
}

// StopAll stops all enabled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.backlogReportJob != nil {
		jm.backlogReportJob.Stop()
	}
}
