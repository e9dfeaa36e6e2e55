package order_test

import (
	"testing"

	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/kernel"
	"github.com/sTingley/ProcurementOrderManager/internal/core/domain/model/order"
	"github.com/sTingley/ProcurementOrderManager/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItems(t *testing.T, pairs ...[2]uint64) []order.LineItem {
	t.Helper()
	items := make([]order.LineItem, 0, len(pairs))
	for _, p := range pairs {
		item, err := order.NewLineItem(p[0], p[1])
		require.NoError(t, err)
		items = append(items, item)
	}
	return items
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	items := mustItems(t, [2]uint64{1, 1}, [2]uint64{2, 2}, [2]uint64{3, 4})
	o, err := order.NewOrder(kernel.NewPrincipalID(), kernel.NewPrincipalID(), items, 3, "standard")
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	buyer := kernel.NewPrincipalID()
	seller := kernel.NewPrincipalID()
	items := mustItems(t, [2]uint64{1, 1}, [2]uint64{2, 2}, [2]uint64{3, 4})

	t.Run("creates_order_in_created_status", func(t *testing.T) {
		o, err := order.NewOrder(buyer, seller, items, 3, "standard")

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, uint64(0), o.ID())
		assert.Equal(t, order.Created, o.Status())
		assert.Equal(t, "standard", o.DeliveryTerms())
		assert.Len(t, o.Items(), 3)
		assert.True(t, o.IsBuyer(buyer))
		assert.True(t, o.IsSeller(seller))
		assert.False(t, o.IsParty(kernel.NewPrincipalID()))
	})

	t.Run("declared_count_mismatch_fails", func(t *testing.T) {
		_, err := order.NewOrder(buyer, seller, items, 2, "standard")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("empty_items_fail", func(t *testing.T) {
		_, err := order.NewOrder(buyer, seller, nil, 0, "standard")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("empty_delivery_terms_fail", func(t *testing.T) {
		_, err := order.NewOrder(buyer, seller, items, 3, "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unconstructed_principals_fail", func(t *testing.T) {
		_, err := order.NewOrder(kernel.PrincipalID{}, seller, items, 3, "standard")

		require.Error(t, err)
	})
}

func TestRestoreOrder(t *testing.T) {
	buyer := kernel.NewPrincipalID()
	seller := kernel.NewPrincipalID()
	items := mustItems(t, [2]uint64{1, 5}, [2]uint64{2, 6})

	o, err := order.RestoreOrder(2, buyer, seller, items, "standard", order.Shipped)

	require.NoError(t, err)
	assert.Equal(t, uint64(2), o.ID())
	assert.Equal(t, order.Shipped, o.Status())

	_, err = order.RestoreOrder(0, buyer, seller, items, "standard", order.Shipped)
	require.Error(t, err)

	_, err = order.RestoreOrder(2, buyer, seller, items, "standard", order.Status(42))
	require.Error(t, err)
}

func TestOrder_UpdateQuantity(t *testing.T) {
	t.Run("overwrites_matching_line_item", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.UpdateQuantity(2, 20))

		items := o.Items()
		assert.Equal(t, uint64(2), items[1].ProductID())
		assert.Equal(t, uint64(20), items[1].Quantity())
		assert.Equal(t, order.Created, o.Status())
	})

	t.Run("unknown_product_fails_not_found", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.UpdateQuantity(99, 20)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("rejected_after_confirmation", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Confirm())

		err := o.UpdateQuantity(2, 10)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestOrder_Lifecycle(t *testing.T) {
	t.Run("happy_path", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Confirm())
		assert.Equal(t, order.Confirmed, o.Status())

		require.NoError(t, o.Ship())
		assert.Equal(t, order.Shipped, o.Status())

		require.NoError(t, o.Complete())
		assert.Equal(t, order.Completed, o.Status())

		require.Error(t, o.Dispute())
	})

	t.Run("dispute_path_buyer_wins", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Confirm())
		require.NoError(t, o.Ship())

		require.NoError(t, o.Dispute())
		assert.Equal(t, order.Disputed, o.Status())

		require.NoError(t, o.Close(true))
		assert.Equal(t, order.Completed, o.Status())
	})

	t.Run("dispute_path_seller_wins", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Confirm())
		require.NoError(t, o.Ship())
		require.NoError(t, o.Dispute())

		require.NoError(t, o.Close(false))
		assert.Equal(t, order.Cancelled, o.Status())

		// Terminal: nothing leaves Cancelled.
		require.Error(t, o.Confirm())
		require.Error(t, o.Close(true))
	})

	t.Run("cannot_skip_states", func(t *testing.T) {
		o := newTestOrder(t)

		require.Error(t, o.Ship())
		require.Error(t, o.Complete())
		require.Error(t, o.Dispute())
		assert.Equal(t, order.Created, o.Status())
	})
}

func TestOrder_Validate(t *testing.T) {
	var o order.Order

	err := o.Validate()

	require.Error(t, err)
	assert.Equal(t, order.ErrOrderIsNotConstructed, err)
}

func TestNewLineItem(t *testing.T) {
	_, err := order.NewLineItem(0, 5)
	require.Error(t, err)

	item, err := order.NewLineItem(1, 5)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), item.ProductID())
	assert.Equal(t, uint64(5), item.Quantity())
}
