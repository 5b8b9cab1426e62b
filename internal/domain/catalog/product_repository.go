package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/mrp/backend/internal/domain/shared"
)

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindByID finds a product by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindByCode finds a product by its code
	FindByCode(ctx context.Context, code string) (*Product, error)

	// FindAll finds all products matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Product, error)

	// FindByIDs finds multiple products by their IDs
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Product, error)

	// FindBySupplier finds all products sourced from a supplier
	FindBySupplier(ctx context.Context, supplierID uuid.UUID, filter shared.Filter) ([]Product, error)

	// FindActive finds all active products
	FindActive(ctx context.Context, filter shared.Filter) ([]Product, error)

	// Save creates or updates a product
	Save(ctx context.Context, product *Product) error

	// SaveBatch creates or updates multiple products
	SaveBatch(ctx context.Context, products []*Product) error

	// Delete deletes a product by ID
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByCode checks whether a product with the code exists
	ExistsByCode(ctx context.Context, code string) (bool, error)

	// Count counts products matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// CountBySupplier counts products sourced from a supplier
	CountBySupplier(ctx context.Context, supplierID uuid.UUID, filter shared.Filter) (int64, error)

	// CountActive counts active products matching the filter
	CountActive(ctx context.Context, filter shared.Filter) (int64, error)
}
