// Package orderrepo persists order aggregates. An order row owns its line
// item rows; items are loaded in insertion order so the aggregate sees them
// exactly as they were submitted.
package orderrepo

import (
	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/kernel"
	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order
// aggregates. The id is assigned by the database sequence on insert.
type OrderDTO struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	Buyer         uuid.UUID `gorm:"type:uuid;index"`
	Seller        uuid.UUID `gorm:"type:uuid;index"`
	DeliveryTerms string
	Status        int
	Items         []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one line item row of an order.
type OrderItemDTO struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	OrderID   uint64 `gorm:"index"`
	ProductID uint64
	Quantity  uint64
}

// TableName overrides GORM's default naming to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	items := aggregate.Items()
	itemDTOs := make([]OrderItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, OrderItemDTO{
			OrderID:   aggregate.ID(),
			ProductID: item.ProductID(),
			Quantity:  item.Quantity(),
		})
	}

	return OrderDTO{
		ID:            aggregate.ID(),
		Buyer:         aggregate.Buyer().Bytes(),
		Seller:        aggregate.Seller().Bytes(),
		DeliveryTerms: aggregate.DeliveryTerms(),
		Status:        int(aggregate.Status()),
		Items:         itemDTOs,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	buyer, err := kernel.PrincipalIDFromBytes(dto.Buyer[:])
	if err != nil {
		return nil, err
	}

	seller, err := kernel.PrincipalIDFromBytes(dto.Seller[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewLineItem(itemDTO.ProductID, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(dto.ID, buyer, seller, items, dto.DeliveryTerms, order.Status(dto.Status))
}
