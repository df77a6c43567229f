package jobs

import (
	"context"
	"log/slog"

	"foodorders/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// serviceTimeRefreshSchedule recomputes the averages every ten minutes.
const serviceTimeRefreshSchedule = "@every 10m"

// ServiceTimeRefreshJob periodically recomputes each restaurant's average
// service time from its delivered orders. The computation is a full
// recompute, so a run always converges on the correct value regardless of
// what the stored one was.
type ServiceTimeRefreshJob struct {
	uowFactory ports.UnitOfWorkFactory
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewServiceTimeRefreshJob creates the refresh job.
func NewServiceTimeRefreshJob(uowFactory ports.UnitOfWorkFactory, logger *slog.Logger) *ServiceTimeRefreshJob {
	return &ServiceTimeRefreshJob{
		uowFactory: uowFactory,
		cron:       cron.New(),
		logger:     logger.With("component", "service_time_refresh_job"),
	}
}

// Start schedules the refresh to run periodically.
func (j *ServiceTimeRefreshJob) Start() error {
	_, err := j.cron.AddFunc(serviceTimeRefreshSchedule, func() {
		ctx := context.Background()
		if err := j.refreshAll(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Service time refresh failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Service time refresh job started")
	return nil
}

// Stop stops the refresh job.
func (j *ServiceTimeRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Service time refresh job stopped")
}

// refreshAll walks every restaurant and rewrites its average when at least
// one order has been delivered. A failing restaurant is logged and skipped
// so one bad row cannot stall the rest of the sweep.
func (j *ServiceTimeRefreshJob) refreshAll(ctx context.Context) error {
	uow := j.uowFactory.Create()

	restaurantIDs, err := uow.RestaurantRepository().GetAllIDs(ctx)
	if err != nil {
		return err
	}

	for _, restaurantID := range restaurantIDs {
		minutes, ok, avgErr := uow.OrderRepository().AverageServiceMinutes(ctx, restaurantID)
		if avgErr != nil {
			j.logger.ErrorContext(ctx, "Average computation failed",
				"restaurant_id", restaurantID.String(), "error", avgErr)
			continue
		}
		if !ok {
			continue
		}

		if updErr := uow.RestaurantRepository().UpdateAverageServiceMinutes(ctx, restaurantID, minutes); updErr != nil {
			j.logger.ErrorContext(ctx, "Average update failed",
				"restaurant_id", restaurantID.String(), "error", updErr)
		}
	}

	return nil
}
