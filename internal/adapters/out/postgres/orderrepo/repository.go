package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/order"
	"github.com/sTingley/ProcurementOrderManager/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id uint64, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its line items and returns the assigned id.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) (uint64, error) {
	if err := aggregate.Validate(); err != nil {
		return 0, err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return 0, err
	}

	r.tracker.TrackAggregate(dto.ID, aggregate)
	return dto.ID, nil
}

// Update saves an existing order. The status column and the quantities of the
// line items are the only mutable parts of a persisted order.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Update("status", dto.Status)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", fmt.Sprint(dto.ID))
	}

	for _, item := range dto.Items {
		err := r.db.WithContext(ctx).Model(&OrderItemDTO{}).
			Where("order_id = ? AND product_id = ?", dto.ID, item.ProductID).
			Update("quantity", item.Quantity).Error
		if err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(dto.ID, aggregate)
	return nil
}

// Get retrieves an order by id with its line items in insertion order.
func (r *GormOrderRepository) Get(ctx context.Context, id uint64) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_items.id")
		}).
		First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", fmt.Sprint(id))
		}
		return nil, err
	}

	return toDomain(dto)
}
