package eventlog

import (
	"context"
	"encoding/json"

	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/events"

	"gorm.io/gorm"
)

// GormEventPublisher implements EventPublisher by appending rows to the
// events table. Bound to a transaction, the append commits atomically with
// the state change.
type GormEventPublisher struct {
	db *gorm.DB
}

// NewGormEventPublisher creates a publisher writing to the given connection.
func NewGormEventPublisher(db *gorm.DB) *GormEventPublisher {
	return &GormEventPublisher{db: db}
}

// Publish appends the given events in order.
func (p *GormEventPublisher) Publish(ctx context.Context, evts ...events.DomainEvent) error {
	if len(evts) == 0 {
		return nil
	}

	dtos := make([]EventDTO, 0, len(evts))
	for _, evt := range evts {
		payload, err := json.Marshal(evt)
		if err != nil {
			return err
		}
		dtos = append(dtos, EventDTO{
			Name:        evt.EventName(),
			AggregateID: evt.AggregateID(),
			Payload:     payload,
		})
	}

	return p.db.WithContext(ctx).Create(&dtos).Error
}

// GormEventLog reads the outbox on behalf of the relay job.
type GormEventLog struct {
	db *gorm.DB
}

// NewGormEventLog creates a reader over the events table.
func NewGormEventLog(db *gorm.DB) *GormEventLog {
	return &GormEventLog{db: db}
}

// FetchUndispatched returns up to limit undispatched events in log order.
func (l *GormEventLog) FetchUndispatched(ctx context.Context, limit int) ([]EventDTO, error) {
	var dtos []EventDTO
	err := l.db.WithContext(ctx).
		Where("dispatched = ?", false).
		Order("id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}
	return dtos, nil
}

// MarkDispatched flags the given events as delivered.
func (l *GormEventLog) MarkDispatched(ctx context.Context, ids []uint64) error {
	if len(ids) == 0 {
		return nil
	}
	return l.db.WithContext(ctx).Model(&EventDTO{}).
		Where("id IN ?", ids).
		Update("dispatched", true).Error
}
