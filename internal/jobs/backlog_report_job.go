package jobs

import (
	"context"
	"log/slog"

	"cafe/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// BacklogReportJob periodically logs the orders staff still have to prepare.
type BacklogReportJob struct {
	handler  queries.GetBacklogQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewBacklogReportJob creates the job; it does not run until Start.
func NewBacklogReportJob(handler queries.GetBacklogQueryHandler, schedule string, logger *slog.Logger) *BacklogReportJob {
	return &BacklogReportJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "backlog_report_job"),
	}
}

// Start schedules the report. It fails on an invalid schedule.
func (j *BacklogReportJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Backlog report job started", "schedule", j.schedule)
	return nil
}

// Run produces one report.
func (j *BacklogReportJob) Run(ctx context.Context) {
	backlog, err := j.handler.Handle(ctx, queries.NewGetBacklogQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Backlog report job failed", "error", err)
		return
	}

	if backlog.Pending == 0 {
		j.logger.InfoContext(ctx, "No orders waiting")
		return
	}

	j.logger.InfoContext(ctx, "Orders waiting",
		"pending", backlog.Pending,
		"received", backlog.Received,
		"preparing", backlog.Preparing,
		"almost_ready", backlog.AlmostReady,
		"oldest_order_id", backlog.OldestID,
		"oldest_age", backlog.OldestAge.String(),
	)
}

// Stop stops scheduling and waits for a report in progress.
func (j *BacklogReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Backlog report job stopped")
}
