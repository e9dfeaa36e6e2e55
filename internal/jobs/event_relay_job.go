package jobs

import (
	"context"
	"log/slog"

	"github.com/sTingley/ProcurementOrderManager/internal/adapters/out/postgres/eventlog"

	"github.com/robfig/cron/v3"
)

// relayBatchSize caps how many events one relay tick hands over.
const relayBatchSize = 100

// EventLog is the slice of the outbox the relay needs: reading pending rows
// and flagging them once delivered.
type EventLog interface {
	FetchUndispatched(ctx context.Context, limit int) ([]eventlog.EventDTO, error)
	MarkDispatched(ctx context.Context, ids []uint64) error
}

// EventRelayJob drains the transactional outbox on a schedule. Events are
// appended to the log in the same transaction as the state change that
// produced them; this job is the boundary where external subscribers (the
// invoicing system among them) receive what happened, in log order.
type EventRelayJob struct {
	log      EventLog
	cron     *cron.Cron
	schedule string
	logger   *slog.Logger
}

// NewEventRelayJob creates a relay over the given outbox reader. The schedule
// uses cron syntax with a seconds field, e.g. "*/5 * * * * *".
func NewEventRelayJob(log EventLog, schedule string, logger *slog.Logger) *EventRelayJob {
	return &EventRelayJob{
		log:      log,
		cron:     cron.New(cron.WithSeconds()),
		schedule: schedule,
		logger:   logger.With("component", "event_relay_job"),
	}
}

// Start begins draining the outbox on the configured schedule.
func (j *EventRelayJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.relay(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Event relay tick failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Event relay job started", "schedule", j.schedule)
	return nil
}

// Stop stops the event relay job.
func (j *EventRelayJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Event relay job stopped")
}

// relay hands one batch of pending events to subscribers and marks them
// dispatched. Delivery here is the log line; a transport to a real broker
// plugs in at this point without touching the write side.
func (j *EventRelayJob) relay(ctx context.Context) error {
	pending, err := j.log.FetchUndispatched(ctx, relayBatchSize)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		return nil
	}

	ids := make([]uint64, 0, len(pending))
	for _, event := range pending {
		j.logger.InfoContext(ctx, "Dispatching domain event",
			"eventId", event.ID,
			"name", event.Name,
			"aggregateId", event.AggregateID,
			"payload", string(event.Payload),
		)
		ids = append(ids, event.ID)
	}

	return j.log.MarkDispatched(ctx, ids)
}
