package disputerepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/dispute"
	"github.com/sTingley/ProcurementOrderManager/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDisputeRepository implements DisputeRepository using GORM.
type GormDisputeRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id uint64, aggregate any)
}

// NewGormDisputeRepository creates a new GORM dispute repository.
func NewGormDisputeRepository(db *gorm.DB, tracker aggregateTracker) *GormDisputeRepository {
	return &GormDisputeRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a newly raised dispute. The primary key on order_id rejects a
// second dispute for the same order.
func (r *GormDisputeRepository) Add(ctx context.Context, aggregate *dispute.Dispute) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(dto.OrderID, aggregate)
	return nil
}

// Update saves the resolution state and appends any arguments filed since the
// dispute was loaded. The argument log is append-only, so rows already stored
// are never touched.
func (r *GormDisputeRepository) Update(ctx context.Context, aggregate *dispute.Dispute) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DisputeDTO{}).
		Where("order_id = ?", dto.OrderID).
		Updates(map[string]any{"resolution": dto.Resolution, "resolved": dto.Resolved})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", fmt.Sprint(dto.OrderID))
	}

	var stored int64
	err := r.db.WithContext(ctx).Model(&ArgumentDTO{}).
		Where("order_id = ?", dto.OrderID).
		Count(&stored).Error
	if err != nil {
		return err
	}

	if int(stored) < len(dto.Arguments) {
		fresh := dto.Arguments[stored:]
		if err = r.db.WithContext(ctx).Create(&fresh).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(dto.OrderID, aggregate)
	return nil
}

// Get retrieves the dispute attached to the given order, including its
// argument log in submission order.
func (r *GormDisputeRepository) Get(ctx context.Context, orderID uint64) (*dispute.Dispute, error) {
	var dto DisputeDTO
	err := r.db.WithContext(ctx).
		Preload("Arguments", func(db *gorm.DB) *gorm.DB {
			return db.Order("dispute_arguments.id")
		}).
		First(&dto, "order_id = ?", orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", fmt.Sprint(orderID))
		}
		return nil, err
	}

	return toDomain(dto)
}
