package trade

import (
	"context"

	"github.com/google/uuid"
	"github.com/mrp/backend/internal/domain/shared"
)

// PurchaseOrderRepository defines the interface for purchase order persistence
type PurchaseOrderRepository interface {
	// FindByID finds an order by its ID, items included
	FindByID(ctx context.Context, id uuid.UUID) (*PurchaseOrder, error)

	// FindByOrderNumber finds an order by its number
	FindByOrderNumber(ctx context.Context, orderNumber string) (*PurchaseOrder, error)

	// FindAll finds all orders matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]PurchaseOrder, error)

	// FindByStatus finds orders by status
	FindByStatus(ctx context.Context, status PurchaseOrderStatus, filter shared.Filter) ([]PurchaseOrder, error)

	// FindBySupplier finds orders for a supplier
	FindBySupplier(ctx context.Context, supplierID uuid.UUID, filter shared.Filter) ([]PurchaseOrder, error)

	// FindLive finds all draft, sent and confirmed orders, items included
	FindLive(ctx context.Context) ([]PurchaseOrder, error)

	// Save creates or updates an order together with its items
	Save(ctx context.Context, order *PurchaseOrder) error

	// Delete deletes an order by ID
	Delete(ctx context.Context, id uuid.UUID) error

	// NextOrderNumber generates the next sequential order number
	NextOrderNumber(ctx context.Context) (string, error)

	// Count counts orders matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// CountByStatus counts orders in a status
	CountByStatus(ctx context.Context, status PurchaseOrderStatus, filter shared.Filter) (int64, error)

	// CountBySupplier counts orders for a supplier
	CountBySupplier(ctx context.Context, supplierID uuid.UUID, filter shared.Filter) (int64, error)
}
