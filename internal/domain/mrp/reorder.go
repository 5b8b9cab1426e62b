package mrp

import (
	"github.com/mrp/backend/internal/domain/catalog"
	"github.com/mrp/backend/internal/domain/partner"
	"github.com/shopspring/decimal"
)

// suggestOrderQuantity decides whether and how much to reorder.
// A product needs reordering when available plus incoming stock falls
// below the minimum and no purchase order is already in motion. The
// suggestion covers at least the shortfall and at least the configured
// reorder quantity, rounded up to whole units, and is raised to the
// supplier's minimum order size when one is set.
func suggestOrderQuantity(
	product *catalog.Product,
	supplier *partner.Supplier,
	available decimal.Decimal,
	poInMotion bool,
) decimal.Decimal {
	if poInMotion {
		return decimal.Zero
	}

	projected := available.Add(product.IncomingStock)
	if projected.GreaterThanOrEqual(product.MinStockQuantity) {
		return decimal.Zero
	}

	shortfall := product.MinStockQuantity.Sub(projected)
	suggested := decimal.Max(product.ReorderQuantity, shortfall).Ceil()

	if supplier != nil && supplier.HasOrderThreshold() && suggested.LessThan(supplier.OrderThreshold) {
		suggested = supplier.OrderThreshold.Ceil()
	}

	return suggested
}
