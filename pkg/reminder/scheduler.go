package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler runs a job on a cron schedule.
type Scheduler struct {
	logger *slog.Logger
	cron   *cron.Cron
}

// NewScheduler registers job with the given schedule. Both standard cron expressions and
// descriptors such as "@every 5m" are accepted. Runs are skipped while a previous run is still
// in progress.
func NewScheduler(logger *slog.Logger, schedule string, location *time.Location, job cron.Job) (*Scheduler, error) {
	cronLogger := cronLogger{logger: logger}
	c := cron.New(
		cron.WithLocation(location),
		cron.WithLogger(cronLogger),
		cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
	)

	if _, err := c.AddJob(schedule, job); err != nil {
		return nil, fmt.Errorf("invalid schedule %q: %v", schedule, err)
	}

	return &Scheduler{logger: logger, cron: c}, nil
}

// Run starts the scheduler and blocks until ctx is done. It then waits for running jobs to finish.
func (s *Scheduler) Run(ctx context.Context) error {
	s.cron.Start()
	s.logger.InfoContext(ctx, "Reminder scheduler started")

	<-ctx.Done()

	<-s.cron.Stop().Done()
	s.logger.Info("Reminder scheduler stopped")
	return nil
}

type cronLogger struct {
	logger *slog.Logger
}

func (c cronLogger) Info(msg string, keysAndValues ...any) {
	c.logger.Debug(msg, keysAndValues...)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...any) {
	c.logger.Error(msg, append(keysAndValues, "error", err)...)
}
