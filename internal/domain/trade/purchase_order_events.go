package trade

import (
	"github.com/google/uuid"
	"github.com/mrp/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypePurchaseOrder = "PurchaseOrder"

// Event type constants
const (
	EventTypePurchaseOrderCreated       = "PurchaseOrderCreated"
	EventTypePurchaseOrderStatusChanged = "PurchaseOrderStatusChanged"
)

// PurchaseOrderCreatedEvent is published when a new purchase order is created
type PurchaseOrderCreatedEvent struct {
	shared.BaseDomainEvent
	OrderID      uuid.UUID `json:"order_id"`
	OrderNumber  string    `json:"order_number"`
	SupplierID   uuid.UUID `json:"supplier_id"`
	SupplierName string    `json:"supplier_name"`
}

// NewPurchaseOrderCreatedEvent creates a new PurchaseOrderCreatedEvent
func NewPurchaseOrderCreatedEvent(order *PurchaseOrder) *PurchaseOrderCreatedEvent {
	return &PurchaseOrderCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePurchaseOrderCreated, AggregateTypePurchaseOrder, order.ID),
		OrderID:         order.ID,
		OrderNumber:     order.OrderNumber,
		SupplierID:      order.SupplierID,
		SupplierName:    order.SupplierName,
	}
}

// PurchaseOrderStatusChangedEvent is published when an order's status changes
type PurchaseOrderStatusChangedEvent struct {
	shared.BaseDomainEvent
	OrderID     uuid.UUID           `json:"order_id"`
	OrderNumber string              `json:"order_number"`
	OldStatus   PurchaseOrderStatus `json:"old_status"`
	NewStatus   PurchaseOrderStatus `json:"new_status"`
}

// NewPurchaseOrderStatusChangedEvent creates a new PurchaseOrderStatusChangedEvent
func NewPurchaseOrderStatusChangedEvent(order *PurchaseOrder, oldStatus, newStatus PurchaseOrderStatus) *PurchaseOrderStatusChangedEvent {
	return &PurchaseOrderStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePurchaseOrderStatusChanged, AggregateTypePurchaseOrder, order.ID),
		OrderID:         order.ID,
		OrderNumber:     order.OrderNumber,
		OldStatus:       oldStatus,
		NewStatus:       newStatus,
	}
}
