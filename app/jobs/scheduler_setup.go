package jobs

import (
	"context"

	"scout/core/app/search"
	"scout/core/logger"
	"scout/core/scheduler"
)

// SetupScheduler registers all scheduled jobs with the cron scheduler
func SetupScheduler(searchService *search.SearchService, log logger.Logger) *scheduler.CronScheduler {
	cronScheduler := scheduler.NewCronScheduler(log)

	// Re-introspect searchable columns nightly so schema migrations made
	// during the day show up in search without a restart
	columnRefreshTask := &scheduler.CronTask{
		Name:        "search_column_refresh",
		Description: "Refresh the cached text-column lists used by global search",
		CronExpr:    "0 3 * * *", // Daily at 3:00 AM
		Handler: func(ctx context.Context) error {
			return searchService.RefreshColumns(ctx)
		},
		Enabled: true,
	}

	if err := cronScheduler.RegisterTask(columnRefreshTask); err != nil {
		log.Error("failed to register search column refresh job",
			logger.String("error", err.Error()))
	} else {
		log.Info("registered search column refresh job")
	}

	return cronScheduler
}
