package jobs

import (
	"context"
	"log/slog"

	"docflow/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PermitExpiryJob manages the scheduled closure of expired work permits.
// Runs hourly to close active permits whose validity window has ended.
type PermitExpiryJob struct {
	handler commands.CloseExpiredPermitsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPermitExpiryJob creates a new job for closing expired work permits.
// Uses CloseExpiredPermitsCommandHandler to sweep overdue permits every hour.
func NewPermitExpiryJob(handler commands.CloseExpiredPermitsCommandHandler, logger *slog.Logger) *PermitExpiryJob {
	return &PermitExpiryJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "permit_expiry_job"),
	}
}

// Start begins the permit expiry job to run at the top of every hour.
func (j *PermitExpiryJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewCloseExpiredPermitsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Permit expiry sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Permit expiry job started (running hourly)")
	return nil
}

// Stop stops the permit expiry job.
func (j *PermitExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Permit expiry job stopped")
}
