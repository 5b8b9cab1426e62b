package mrp

import (
	"github.com/google/uuid"
	"github.com/mrp/backend/internal/domain/catalog"
	"github.com/mrp/backend/internal/domain/planning"
	"github.com/shopspring/decimal"
)

// resolveAvailableStock derives a product's effective available stock:
// the sellable on-hand figure net of open production commitments and of
// expired and rejected quantities, floored at zero. Incoming stock is a
// future-supply signal and deliberately excluded.
func resolveAvailableStock(
	product *catalog.Product,
	commitments []planning.ProductCommitment,
	jobs map[uuid.UUID]*planning.ProductionJob,
) (decimal.Decimal, error) {
	for _, q := range []struct {
		name  string
		value decimal.Decimal
	}{
		{"stock_available", product.StockAvailable},
		{"incoming_stock", product.IncomingStock},
		{"expired", product.Expired},
		{"rejected", product.Rejected},
		{"min_stock_quantity", product.MinStockQuantity},
		{"reorder_quantity", product.ReorderQuantity},
	} {
		if q.value.IsNegative() {
			return decimal.Zero, newValidationError("product %s has negative %s", product.Code, q.name)
		}
	}

	committed := decimal.Zero
	for _, c := range commitments {
		if c.QuantityCommitted.IsNegative() {
			return decimal.Zero, newValidationError("commitment %s on product %s has negative quantity", c.ID, product.Code)
		}
		job, ok := jobs[c.JobID]
		if !ok {
			return decimal.Zero, newReferentialIntegrityError("commitment %s references missing production job %s", c.ID, c.JobID)
		}
		if job.IsOpen() {
			committed = committed.Add(c.QuantityCommitted)
		}
	}

	available := product.StockAvailable.Sub(committed).Sub(product.Expired).Sub(product.Rejected)
	if available.IsNegative() {
		return decimal.Zero, nil
	}
	return available, nil
}
