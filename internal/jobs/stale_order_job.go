package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"foodcourt/internal/core/application/usecases/commands"
	"foodcourt/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// StaleOrderJob periodically sweeps for orders that stayed pending past the
// configured threshold. Flagged orders are logged and their customers get a
// courtesy notification. The sweep is read-only; orders are never modified.
type StaleOrderJob struct {
	uowFactory commands.OrderUoWFactory
	notifier   commands.Notifier
	staleAfter time.Duration
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewStaleOrderJob creates the stale-order sweep.
// staleAfter is how long an order may stay pending before it is flagged.
func NewStaleOrderJob(
	uowFactory commands.OrderUoWFactory,
	notifier commands.Notifier,
	staleAfter time.Duration,
	logger *slog.Logger,
) *StaleOrderJob {
	return &StaleOrderJob{
		uowFactory: uowFactory,
		notifier:   notifier,
		staleAfter: staleAfter,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "stale_order_job"),
	}
}

// Start begins the stale-order sweep to run every minute.
func (j *StaleOrderJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		if err := j.sweep(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Stale order sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order job started (running every minute)",
		"staleAfter", j.staleAfter.String())
	return nil
}

// Stop stops the stale-order sweep.
func (j *StaleOrderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order job stopped")
}

// sweep finds pending orders older than the threshold and notifies their
// customers. Runs outside any transaction since it only reads.
func (j *StaleOrderJob) sweep(ctx context.Context) error {
	now := time.Now().UTC()
	cutoff := now.Add(-j.staleAfter)

	uow := j.uowFactory.Create()
	staleOrders, err := uow.OrderRepository().GetAllPendingSince(ctx, cutoff)
	if err != nil {
		return err
	}

	for _, staleOrder := range staleOrders {
		waiting := now.Sub(staleOrder.CreatedAt()).Round(time.Minute)
		j.logger.WarnContext(ctx, "Order pending past threshold",
			"orderId", staleOrder.ID().String(),
			"waiting", waiting.String())

		j.notifier.Notify(ctx, services.Event{
			OrderID:    staleOrder.ID(),
			Status:     staleOrder.Status(),
			OccurredAt: now,
			CustomerID: staleOrder.CustomerID(),
			StaffID:    staleOrder.StaffID(),
			Message: fmt.Sprintf(
				"Your order is taking longer than expected (%s). Thanks for your patience!",
				waiting),
		})
	}

	return nil
}
