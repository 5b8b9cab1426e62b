package trade

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestOrder(t *testing.T) *PurchaseOrder {
	t.Helper()
	order, err := NewPurchaseOrder("PO-2026-0001", uuid.New(), "Test Supplier")
	require.NoError(t, err)
	return order
}

func createSentOrder(t *testing.T) *PurchaseOrder {
	t.Helper()
	order := createTestOrder(t)
	_, err := order.AddItem(uuid.New(), "WIDGET-01", "Widget", decimal.NewFromInt(100), decimal.NewFromFloat(2.5))
	require.NoError(t, err)
	require.NoError(t, order.Send())
	return order
}

func TestPurchaseOrderStatus(t *testing.T) {
	t.Run("IsValid returns true for valid statuses", func(t *testing.T) {
		for _, status := range []PurchaseOrderStatus{
			PurchaseOrderStatusDraft,
			PurchaseOrderStatusSent,
			PurchaseOrderStatusConfirmed,
			PurchaseOrderStatusDelivered,
			PurchaseOrderStatusCancelled,
		} {
			assert.True(t, status.IsValid(), "Expected %s to be valid", status)
		}
	})

	t.Run("IsValid returns false for invalid status", func(t *testing.T) {
		assert.False(t, PurchaseOrderStatus("pending").IsValid())
	})

	t.Run("IsLive for draft, sent and confirmed only", func(t *testing.T) {
		assert.True(t, PurchaseOrderStatusDraft.IsLive())
		assert.True(t, PurchaseOrderStatusSent.IsLive())
		assert.True(t, PurchaseOrderStatusConfirmed.IsLive())
		assert.False(t, PurchaseOrderStatusDelivered.IsLive())
		assert.False(t, PurchaseOrderStatusCancelled.IsLive())
	})

	t.Run("terminal statuses cannot transition", func(t *testing.T) {
		assert.False(t, PurchaseOrderStatusDelivered.CanTransitionTo(PurchaseOrderStatusCancelled))
		assert.False(t, PurchaseOrderStatusCancelled.CanTransitionTo(PurchaseOrderStatusDraft))
	})
}

func TestNewPurchaseOrder(t *testing.T) {
	t.Run("creates order with valid input", func(t *testing.T) {
		supplierID := uuid.New()
		order, err := NewPurchaseOrder("PO-2026-0001", supplierID, "Test Supplier")
		require.NoError(t, err)
		require.NotNil(t, order)

		assert.Equal(t, "PO-2026-0001", order.OrderNumber)
		assert.Equal(t, supplierID, order.SupplierID)
		assert.Equal(t, PurchaseOrderStatusDraft, order.Status)
		assert.True(t, order.TotalAmount.IsZero())
		assert.Empty(t, order.Items)

		events := order.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypePurchaseOrderCreated, events[0].EventType())
	})

	t.Run("fails with empty order number", func(t *testing.T) {
		order, err := NewPurchaseOrder("", uuid.New(), "Test Supplier")
		assert.Nil(t, order)
		assert.Error(t, err)
	})

	t.Run("fails with nil supplier", func(t *testing.T) {
		order, err := NewPurchaseOrder("PO-2026-0001", uuid.Nil, "Test Supplier")
		assert.Nil(t, order)
		assert.Error(t, err)
	})
}

func TestPurchaseOrder_AddItem(t *testing.T) {
	order := createTestOrder(t)
	productID := uuid.New()

	t.Run("adds item and recalculates total", func(t *testing.T) {
		item, err := order.AddItem(productID, "WIDGET-01", "Widget", decimal.NewFromInt(100), decimal.NewFromFloat(2.5))
		require.NoError(t, err)
		require.NotNil(t, item)
		assert.True(t, item.Amount.Equal(decimal.NewFromInt(250)))
		assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(250)))
		assert.True(t, order.ContainsProduct(productID))
	})

	t.Run("rejects duplicate product", func(t *testing.T) {
		_, err := order.AddItem(productID, "WIDGET-01", "Widget", decimal.NewFromInt(10), decimal.Zero)
		assert.Error(t, err)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := order.AddItem(uuid.New(), "GADGET-01", "Gadget", decimal.Zero, decimal.Zero)
		assert.Error(t, err)
	})

	t.Run("updates item quantity", func(t *testing.T) {
		itemID := order.Items[0].ID
		require.NoError(t, order.UpdateItemQuantity(itemID, decimal.NewFromInt(200)))
		assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(500)))
	})

	t.Run("removes item", func(t *testing.T) {
		itemID := order.Items[0].ID
		require.NoError(t, order.RemoveItem(itemID))
		assert.Empty(t, order.Items)
		assert.True(t, order.TotalAmount.IsZero())
	})
}

func TestPurchaseOrder_Lifecycle(t *testing.T) {
	t.Run("draft to sent to confirmed to delivered", func(t *testing.T) {
		order := createSentOrder(t)
		assert.Equal(t, PurchaseOrderStatusSent, order.Status)
		require.NotNil(t, order.SentAt)
		require.NotNil(t, order.OrderDate)

		require.NoError(t, order.Confirm())
		assert.Equal(t, PurchaseOrderStatusConfirmed, order.Status)
		assert.True(t, order.IsLive())

		require.NoError(t, order.MarkDelivered())
		assert.Equal(t, PurchaseOrderStatusDelivered, order.Status)
		assert.False(t, order.IsLive())
		require.NotNil(t, order.DeliveredAt)
	})

	t.Run("cannot send an empty order", func(t *testing.T) {
		order := createTestOrder(t)
		err := order.Send()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "without items")
	})

	t.Run("cannot add items after sending", func(t *testing.T) {
		order := createSentOrder(t)
		_, err := order.AddItem(uuid.New(), "GADGET-01", "Gadget", decimal.NewFromInt(5), decimal.Zero)
		assert.Error(t, err)
	})

	t.Run("cancel records reason", func(t *testing.T) {
		order := createSentOrder(t)
		require.NoError(t, order.Cancel("supplier out of stock"))
		assert.Equal(t, PurchaseOrderStatusCancelled, order.Status)
		assert.Equal(t, "supplier out of stock", order.CancelReason)
		assert.False(t, order.IsLive())
	})

	t.Run("cannot cancel a delivered order", func(t *testing.T) {
		order := createSentOrder(t)
		require.NoError(t, order.Confirm())
		require.NoError(t, order.MarkDelivered())
		assert.Error(t, order.Cancel("too late"))
	})
}
