// Package eventlog persists domain events as an append-only outbox table.
// Events are written in the same transaction as the state change that
// produced them and relayed to subscribers afterwards, so the log never shows
// an event for a transition that rolled back.
package eventlog

import (
	"time"
)

// EventDTO is one row of the ordered event log. The id doubles as the global
// event order.
type EventDTO struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"index"`
	AggregateID uint64 `gorm:"index"`
	Payload     []byte `gorm:"type:jsonb"`
	Dispatched  bool   `gorm:"index"`
	CreatedAt   time.Time
}

// TableName overrides GORM's default naming to use "events".
func (EventDTO) TableName() string {
	return "events"
}
