package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/mrp/backend/internal/domain/shared"
)

// SupplierRepository defines the interface for supplier persistence
type SupplierRepository interface {
	// FindByID finds a supplier by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Supplier, error)

	// FindByCode finds a supplier by its code
	FindByCode(ctx context.Context, code string) (*Supplier, error)

	// FindAll finds all suppliers matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Supplier, error)

	// FindByIDs finds multiple suppliers by their IDs
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Supplier, error)

	// FindByStatus finds suppliers by status
	FindByStatus(ctx context.Context, status SupplierStatus, filter shared.Filter) ([]Supplier, error)

	// Save creates or updates a supplier
	Save(ctx context.Context, supplier *Supplier) error

	// Delete deletes a supplier by ID
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByCode checks whether a supplier with the code exists
	ExistsByCode(ctx context.Context, code string) (bool, error)

	// Count counts suppliers matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// CountByStatus counts suppliers in a status
	CountByStatus(ctx context.Context, status SupplierStatus, filter shared.Filter) (int64, error)
}
