package jobs

import (
	"context"
	"log/slog"

	"fabrication/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StatusRepairJob manages the scheduled bulk repair of order statuses.
// Runs every minute to re-derive the aggregate status of every unfinished
// order from its items, catching drift left behind by failed reconciliations
// or out-of-band item changes.
type StatusRepairJob struct {
	handler commands.RepairStatusesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStatusRepairJob creates a new job for repairing order statuses.
// Uses RepairStatusesCommandHandler to scan all unfinished orders every minute.
func NewStatusRepairJob(handler commands.RepairStatusesCommandHandler, logger *slog.Logger) *StatusRepairJob {
	return &StatusRepairJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "status_repair_job"),
	}
}

// Start begins the status repair job to run every minute.
func (j *StatusRepairJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewRepairStatusesCommand()
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Status repair job failed to build command", "error", cmdErr)
			return
		}

		report, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Status repair job failed", "error", handleErr)
			return
		}

		// Per-order failures do not abort the scan; surface them here.
		for _, repairErr := range report.Errors {
			j.logger.WarnContext(ctx, "Status repair skipped an order", "error", repairErr)
		}

		if report.Repaired > 0 {
			j.logger.InfoContext(ctx, "Status repair fixed drifted orders",
				"scanned", report.Scanned, "repaired", report.Repaired)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Status repair job started (running every minute)")
	return nil
}

// Stop stops the status repair job.
func (j *StatusRepairJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Status repair job stopped")
}
