package order

import (
	"errors"
	"fmt"

	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/kernel"
	"github.com/sTingley/ProcurementOrderManager/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root of a buyer/seller trade. It owns its line items
// and its lifecycle status; who may drive which transition is decided by the
// application layer, the aggregate only enforces which transitions are legal.
//
// Invariants:
//   - buyer and seller are valid principals
//   - the item list is non-empty and its length matched the declared count
//     at creation time
//   - deliveryTerms is non-empty
//   - status only ever advances along the defined transition graph
type Order struct {
	id            uint64
	buyer         kernel.PrincipalID
	seller        kernel.PrincipalID
	items         []LineItem
	deliveryTerms string
	status        Status

	isConstructed bool
}

// NewOrder creates an order in Created status, awaiting persistence (id 0
// until stored). declaredItemCount must equal the length of items; the
// mismatch check guards against truncated submissions where the caller
// intended more positions than arrived.
func NewOrder(
	buyer kernel.PrincipalID,
	seller kernel.PrincipalID,
	items []LineItem,
	declaredItemCount uint64,
	deliveryTerms string,
) (*Order, error) {
	o := &Order{
		status:        Created,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setParties(buyer, seller),
		o.setItems(items, declaredItemCount),
		o.setDeliveryTerms(deliveryTerms),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rehydrates a persisted order with its assigned identifier and
// current status. Used by the persistence layer only.
func RestoreOrder(
	id uint64,
	buyer kernel.PrincipalID,
	seller kernel.PrincipalID,
	items []LineItem,
	deliveryTerms string,
	status Status,
) (*Order, error) {
	if id == 0 {
		return nil, errs.NewValueIsRequiredError("order id")
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	o, err := NewOrder(buyer, seller, items, uint64(len(items)), deliveryTerms)
	if err != nil {
		return nil, err
	}
	o.id = id
	o.status = status
	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order's assigned identifier, or 0 when not yet persisted.
func (o *Order) ID() uint64 {
	return o.id
}

// Buyer returns the principal buying under this order.
func (o *Order) Buyer() kernel.PrincipalID {
	return o.buyer
}

// Seller returns the principal selling under this order.
func (o *Order) Seller() kernel.PrincipalID {
	return o.seller
}

// Items returns a copy of the order's line items in insertion order.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// DeliveryTerms returns the free-form delivery terms agreed at creation.
func (o *Order) DeliveryTerms() string {
	return o.deliveryTerms
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// IsBuyer reports whether the given principal is this order's buyer.
func (o *Order) IsBuyer(p kernel.PrincipalID) bool {
	return o.buyer.IsEqual(p)
}

// IsSeller reports whether the given principal is this order's seller.
func (o *Order) IsSeller(p kernel.PrincipalID) bool {
	return o.seller.IsEqual(p)
}

// IsParty reports whether the given principal is the buyer or the seller.
func (o *Order) IsParty(p kernel.PrincipalID) bool {
	return o.IsBuyer(p) || o.IsSeller(p)
}

// UpdateQuantity overwrites the quantity of the line item referencing the
// given product. Only legal while the order is in Created status.
func (o *Order) UpdateQuantity(productID, quantity uint64) error {
	if o.status != Created {
		return errs.NewInvalidStateError("update product quantity", o.status)
	}

	for i, item := range o.items {
		if item.ProductID() == productID {
			o.items[i] = item.withQuantity(quantity)
			return nil
		}
	}

	return errs.NewObjectNotFoundError("productId", fmt.Sprint(productID))
}

// Confirm transitions the order from Created to Confirmed.
func (o *Order) Confirm() error {
	return o.transition(o.status.Confirm())
}

// Ship transitions the order from Confirmed to Shipped.
func (o *Order) Ship() error {
	return o.transition(o.status.Ship())
}

// Complete transitions the order from Shipped to Completed.
func (o *Order) Complete() error {
	return o.transition(o.status.Complete())
}

// Dispute transitions the order from Shipped to Disputed.
func (o *Order) Dispute() error {
	return o.transition(o.status.Dispute())
}

// Close leaves Disputed through arbitration: Completed when favorBuyer is
// true, Cancelled otherwise.
func (o *Order) Close(favorBuyer bool) error {
	return o.transition(o.status.Close(favorBuyer))
}

func (o *Order) transition(next Status, err error) error {
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

func (o *Order) setParties(buyer, seller kernel.PrincipalID) error {
	if err := buyer.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("buyer", err)
	}
	if err := seller.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("seller", err)
	}
	o.buyer = buyer
	o.seller = seller
	return nil
}

func (o *Order) setItems(items []LineItem, declaredItemCount uint64) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	if declaredItemCount != uint64(len(items)) {
		return errs.NewValueIsInvalidErrorWithCause(
			"declaredItemCount",
			fmt.Errorf("declared %d items but received %d", declaredItemCount, len(items)),
		)
	}
	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setDeliveryTerms(terms string) error {
	if terms == "" {
		return errs.NewValueIsRequiredError("deliveryTerms")
	}
	o.deliveryTerms = terms
	return nil
}
